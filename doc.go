/*
Package buildtools is a set of libraries for reading WildFly feature pack
build descriptors.

A feature pack descriptor names the feature packs a build depends on,
pins the versions of the artifacts it assembles, and configures the
generated server configuration, artifact copies and file permissions.
Package featurepack streams a descriptor into a model.FeaturePackDescription,
substituting ${name} properties from a property.Resolver as it goes.

	props, err := property.LoadPropertiesFile("build.properties")
	if err != nil {
		return err
	}
	fpd, err := featurepack.LoadFile("feature-pack-build.xml", props)
	if err != nil {
		if e, ok := fperr.As(err); ok {
			log.Printf("%s: %s", e.Kind, e.Location)
		}
		return err
	}

Errors are *fperr.Error values, typically wrapped with
github.com/pkg/errors.
*/
package buildtools
