package model

import (
	"os"
	"path/filepath"

	"github.com/moby/patternmatcher"
)

// FileFilter includes or excludes the paths matching Pattern.
//
// Patterns use the .dockerignore syntax: '*' and '?' do not cross path
// separators, "**" matches any number of directories, and a pattern
// matching a directory matches everything below it.
type FileFilter struct {
	Pattern string
	Include bool
}

// Matches reports whether path matches the filter's pattern.
// A malformed pattern matches nothing.
func (f FileFilter) Matches(path string) bool {
	pm, err := patternmatcher.New([]string{f.Pattern})
	if err != nil {
		return false
	}
	ok, err := pm.MatchesOrParentMatches(filepath.FromSlash(path))
	return err == nil && ok
}

// Filters is an ordered list of file filters.
type Filters []FileFilter

// Includes reports whether path is included: the first filter matching
// path decides, and a path no filter matches is excluded.
func (fs Filters) Includes(path string) bool {
	for _, f := range fs {
		if f.Matches(path) {
			return f.Include
		}
	}
	return false
}

// CopyArtifact copies an artifact, or the filtered content of an
// extracted artifact, into the feature pack.
type CopyArtifact struct {
	// Artifact references the artifact, as groupId:artifactId[:classifier].
	Artifact     string
	ToLocation   string
	FromLocation string
	Extract      bool
	Filters      Filters
}

// Includes reports whether an extracted entry at path is copied.
// Without filters every entry is copied.
func (c CopyArtifact) Includes(path string) bool {
	if len(c.Filters) == 0 {
		return true
	}
	return c.Filters.Includes(path)
}

type CopyArtifacts []CopyArtifact

// FilePermission sets the mode Value on the files its filters include.
type FilePermission struct {
	Value   os.FileMode
	Filters Filters
}

type FilePermissions []FilePermission

// PermissionFor returns the mode of the first permission including path.
func (ps FilePermissions) PermissionFor(path string) (os.FileMode, bool) {
	for _, p := range ps {
		if p.Filters.Includes(path) {
			return p.Value, true
		}
	}
	return 0, false
}
