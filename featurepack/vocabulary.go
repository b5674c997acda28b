package featurepack

import (
	"encoding/xml"
	"sort"

	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/parsers"
	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/xmlutil"
)

const (
	Namespace10 = "urn:wildfly:feature-pack:1.0"
	Namespace11 = "urn:wildfly:feature-pack:1.1"

	// DefaultNamespace is the schema version assumed for documents
	// whose root element declares no namespace.
	DefaultNamespace = Namespace11
)

// Element is a feature pack descriptor element.
type Element int

const (
	// ElementUnknown is any element the schema does not define
	ElementUnknown Element = iota
	ElementFeaturePack
	ElementDependencies
	ElementArtifact
	ElementArtifactVersions
	ElementConfig
	ElementCopyArtifacts
	ElementFilter
	ElementFilePermissions
)

var elementNames = [...]string{
	ElementUnknown:          "",
	ElementFeaturePack:      "feature-pack",
	ElementDependencies:     "dependencies",
	ElementArtifact:         "artifact",
	ElementArtifactVersions: "artifact-versions",
	ElementConfig:           parsers.ConfigElement,
	ElementCopyArtifacts:    parsers.CopyArtifactsElement,
	ElementFilter:           parsers.FilterElement,
	ElementFilePermissions:  parsers.FilePermissionsElement,
}

// LocalName returns the element's local name, empty for ElementUnknown.
func (e Element) LocalName() string {
	if e > ElementUnknown && int(e) < len(elementNames) {
		return elementNames[e]
	}
	return ""
}

func (e Element) String() string {
	if name := e.LocalName(); name != "" {
		return name
	}
	return "unknown"
}

// Attribute is a feature pack descriptor attribute.
type Attribute int

const (
	// AttributeUnknown is any attribute the schema does not define
	AttributeUnknown Attribute = iota
	AttributeGroupID
	AttributeArtifactID
	AttributeClassifier
	AttributeExtension
	AttributeVersion
	AttributeName
)

var attributeNames = [...]string{
	AttributeUnknown:    "",
	AttributeGroupID:    "groupId",
	AttributeArtifactID: "artifactId",
	AttributeClassifier: "classifier",
	AttributeExtension:  "extension",
	AttributeVersion:    "version",
	AttributeName:       "name",
}

// attributes maps local names to attributes. Attributes are not
// namespaced, so one table serves every schema version.
var attributes = func() map[string]Attribute {
	m := make(map[string]Attribute, len(attributeNames))
	for a := AttributeGroupID; int(a) < len(attributeNames); a++ {
		m[attributeNames[a]] = a
	}
	return m
}()

func (a Attribute) LocalName() string {
	if a > AttributeUnknown && int(a) < len(attributeNames) {
		return attributeNames[a]
	}
	return ""
}

func (a Attribute) String() string {
	if name := a.LocalName(); name != "" {
		return name
	}
	return "unknown"
}

// Vocabulary maps the element names of one schema version to Elements.
// Vocabularies are immutable and shared by all parsers.
type Vocabulary struct {
	namespace string
	elements  map[xml.Name]Element
}

func newVocabulary(ns string) *Vocabulary {
	v := &Vocabulary{namespace: ns, elements: make(map[xml.Name]Element, len(elementNames))}
	for e := ElementFeaturePack; int(e) < len(elementNames); e++ {
		v.elements[xmlutil.XMLName(e.LocalName(), ns)] = e
	}
	return v
}

var vocabularies = map[string]*Vocabulary{
	Namespace10: newVocabulary(Namespace10),
	Namespace11: newVocabulary(Namespace11),
}

// VocabularyFor returns the vocabulary of the schema version with namespace ns.
func VocabularyFor(ns string) (*Vocabulary, bool) {
	v, ok := vocabularies[ns]
	return v, ok
}

// Namespaces returns the namespaces of the supported schema versions, sorted.
func Namespaces() []string {
	out := make([]string, 0, len(vocabularies))
	for ns := range vocabularies {
		out = append(out, ns)
	}
	sort.Strings(out)
	return out
}

// Namespace returns the vocabulary's schema namespace.
func (v *Vocabulary) Namespace() string { return v.namespace }

// Element returns the element named n. Names without a namespace are
// looked up in the vocabulary's namespace.
func (v *Vocabulary) Element(n xml.Name) Element {
	if e, ok := v.elements[xmlutil.Qualify(n, v.namespace)]; ok {
		return e
	}
	return ElementUnknown
}

// Attribute returns the attribute named n. Only unqualified names are
// recognized.
func (v *Vocabulary) Attribute(n xml.Name) Attribute {
	if n.Space != "" {
		return AttributeUnknown
	}
	if a, ok := attributes[n.Local]; ok {
		return a
	}
	return AttributeUnknown
}
