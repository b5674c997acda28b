// Package featurepack parses WildFly feature pack descriptors.
//
// A descriptor is a single feature-pack element in one of the namespaces
// returned by Namespaces. Its content is a sequence of regions, each of
// which may repeat and appear in any order:
//
//	<feature-pack xmlns="urn:wildfly:feature-pack:1.1">
//	  <dependencies>
//	    <artifact name="org.wildfly.core:wildfly-core-feature-pack"/>
//	  </dependencies>
//	  <artifact-versions>
//	    <artifact groupId="org.wildfly" artifactId="wildfly-ee" version="${version.wildfly}"/>
//	  </artifact-versions>
//	  <config>...</config>
//	  <copy-artifacts>...</copy-artifacts>
//	  <file-permissions>...</file-permissions>
//	</feature-pack>
//
// Parser reads the dependencies and artifact-versions regions itself and
// hands config, copy-artifacts and file-permissions to SubParsers, by
// default those of package parsers. Attribute values have ${name}
// placeholders substituted from a property.Resolver as they are read.
//
// Load selects the Parser from the namespace of the document's root
// element.
//
// Parsing stops at the first error, which carries an *fperr.Error.
package featurepack
