package artifact

import (
	"sort"
	"strings"

	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/fperr"
	"github.com/pkg/errors"
)

// Optional is a string which may be absent. An absent value differs from
// a present empty string.
type Optional struct {
	Value string
	Valid bool
}

// Some returns a present Optional holding s.
func Some(s string) Optional { return Optional{Value: s, Valid: true} }

// None is the absent Optional.
var None = Optional{}

func (o Optional) String() string { return o.Value }

// Artifact is a Maven style artifact coordinate.
type Artifact struct {
	GroupID    string
	ArtifactID string
	Extension  Optional
	Classifier Optional
	Version    Optional
}

// GACE is an artifact's identity: group, artifact, classifier and
// extension, without the version. GACE values are comparable and may be
// used as map keys.
type GACE struct {
	GroupID    string
	ArtifactID string
	Extension  Optional
	Classifier Optional
}

// GACE returns the identity of a.
func (a Artifact) GACE() GACE {
	return GACE{GroupID: a.GroupID, ArtifactID: a.ArtifactID, Extension: a.Extension, Classifier: a.Classifier}
}

// WithVersion returns a copy of a at version v.
func (a Artifact) WithVersion(v Optional) Artifact {
	a.Version = v
	return a
}

// SameIdentity reports whether a and b have equal identities, whatever their versions.
func SameIdentity(a, b Artifact) bool { return a.GACE() == b.GACE() }

// String returns group:artifact:extension:classifier, or with a version,
// group:artifact:extension:classifier:version. Absent fields are empty.
func (a Artifact) String() string {
	s := a.GACE().String()
	if a.Version.Valid {
		s += ":" + a.Version.Value
	}
	return s
}

func (g GACE) String() string {
	return strings.Join([]string{g.GroupID, g.ArtifactID, g.Extension.Value, g.Classifier.Value}, ":")
}

// Artifact returns the unversioned artifact with identity g.
func (g GACE) Artifact() Artifact {
	return Artifact{GroupID: g.GroupID, ArtifactID: g.ArtifactID, Extension: g.Extension, Classifier: g.Classifier}
}

// Resolver finds the concrete artifact for an identity.
type Resolver interface {
	Artifact(gace GACE) (Artifact, bool)
}

// Set is a set of artifacts holding at most one artifact per identity,
// such as a feature pack's artifact version overrides.
type Set struct {
	m map[GACE]Artifact
}

// NewSet returns an empty Set.
func NewSet() *Set { return &Set{m: map[GACE]Artifact{}} }

// Add inserts a. An artifact with a's identity already in the set is an
// fperr duplicate-artifact-version error and leaves the set unchanged.
func (s *Set) Add(a Artifact) error {
	if s.m == nil {
		s.m = map[GACE]Artifact{}
	}
	gace := a.GACE()
	if _, ok := s.m[gace]; ok {
		var opts []fperr.Option
		if empty := gace.emptySegments(); len(empty) > 0 {
			opts = append(opts, fperr.WithMessage("empty "+strings.Join(empty, ", ")))
		}
		return errors.WithStack(fperr.DuplicateArtifactVersion(gace.String(), opts...))
	}
	s.m[gace] = a
	return nil
}

// Artifact returns the artifact in the set with identity gace.
func (s *Set) Artifact(gace GACE) (Artifact, bool) {
	a, ok := s.m[gace]
	return a, ok
}

// Len returns the number of artifacts in the set.
func (s *Set) Len() int { return len(s.m) }

// Artifacts returns the set's artifacts ordered by their string form.
// An absent extension or classifier sorts before a present empty one.
func (s *Set) Artifacts() []Artifact {
	out := make([]Artifact, 0, len(s.m))
	for _, a := range s.m {
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func less(a, b Artifact) bool {
	if sa, sb := a.String(), b.String(); sa != sb {
		return sa < sb
	}
	for _, o := range [][2]Optional{{a.Extension, b.Extension}, {a.Classifier, b.Classifier}, {a.Version, b.Version}} {
		if o[0].Valid != o[1].Valid {
			return !o[0].Valid
		}
	}
	return false
}

// emptySegments names the optional segments of g present with an empty
// value, which String renders like absent ones.
func (g GACE) emptySegments() (names []string) {
	if g.Extension.Valid && g.Extension.Value == "" {
		names = append(names, "extension")
	}
	if g.Classifier.Valid && g.Classifier.Value == "" {
		names = append(names, "classifier")
	}
	return names
}

// Index is a Resolver over a collection of resolved artifacts, for
// example a build's dependency graph. Later artifacts replace earlier
// ones with the same identity.
type Index map[GACE]Artifact

// NewIndex returns an Index over artifacts.
func NewIndex(artifacts ...Artifact) Index {
	idx := make(Index, len(artifacts))
	for _, a := range artifacts {
		idx[a.GACE()] = a
	}
	return idx
}

func (idx Index) Artifact(gace GACE) (Artifact, bool) {
	a, ok := idx[gace]
	return a, ok
}
