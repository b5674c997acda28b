package model

import (
	"sort"

	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/artifact"
)

// FeaturePackDescription is the content of a feature pack build
// descriptor.
//
// A description is created empty by the caller and populated in place by
// a parser. Once the parser returns without error the description is
// complete. After a parse error its content is unspecified.
type FeaturePackDescription struct {
	// Dependencies holds the names of the feature packs this one depends on.
	Dependencies map[string]struct{}
	// ArtifactVersions holds the artifact version overrides, one per identity.
	ArtifactVersions *artifact.Set

	Config          *Config
	CopyArtifacts   *CopyArtifacts
	FilePermissions *FilePermissions
}

// NewFeaturePackDescription returns an empty description.
func NewFeaturePackDescription() *FeaturePackDescription {
	return &FeaturePackDescription{
		Dependencies:     map[string]struct{}{},
		ArtifactVersions: artifact.NewSet(),
		Config:           &Config{},
		CopyArtifacts:    &CopyArtifacts{},
		FilePermissions:  &FilePermissions{},
	}
}

// AddDependency adds name to the dependency set.
func (d *FeaturePackDescription) AddDependency(name string) {
	if d.Dependencies == nil {
		d.Dependencies = map[string]struct{}{}
	}
	d.Dependencies[name] = struct{}{}
}

func (d *FeaturePackDescription) HasDependency(name string) bool {
	_, ok := d.Dependencies[name]
	return ok
}

// DependencyNames returns the dependency names, sorted.
func (d *FeaturePackDescription) DependencyNames() []string {
	names := make([]string, 0, len(d.Dependencies))
	for name := range d.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
