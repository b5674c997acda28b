package featurepack

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/artifact"
	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/fperr"
	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/model"
	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/parsers"
	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/property"
	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/xmlutil"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// SubParser reads one element subtree into a target model.
//
// Parse is called with the element's start tag already consumed and must
// consume everything up to and including the matching end tag.
type SubParser[T any] interface {
	Parse(r *xmlutil.Reader, start xml.StartElement, target T) error
}

// Parser is a feature pack descriptor parser bound to one schema version.
//
// A Parser holds the property replacer it shares with its sub-parsers and
// must only be used by one goroutine at a time.
type Parser struct {
	vocab    *Vocabulary
	replacer *property.Replacer

	config          SubParser[*model.Config]
	copyArtifacts   SubParser[*model.CopyArtifacts]
	filePermissions SubParser[*model.FilePermissions]
}

// Option is a Parser option function
type Option func(*Parser)

// WithConfigParser sets the parser of <config> regions.
func WithConfigParser(sp SubParser[*model.Config]) Option {
	return func(p *Parser) { p.config = sp }
}

// WithCopyArtifactsParser sets the parser of <copy-artifacts> regions.
func WithCopyArtifactsParser(sp SubParser[*model.CopyArtifacts]) Option {
	return func(p *Parser) { p.copyArtifacts = sp }
}

// WithFilePermissionsParser sets the parser of <file-permissions> regions.
func WithFilePermissionsParser(sp SubParser[*model.FilePermissions]) Option {
	return func(p *Parser) { p.filePermissions = sp }
}

// NewParser returns a Parser for the schema version with namespace ns,
// substituting properties known to resolver.
func NewParser(ns string, resolver property.Resolver, opts ...Option) (*Parser, error) {
	vocab, ok := VocabularyFor(ns)
	if !ok {
		return nil, errors.WithStack(fperr.UnknownNamespace(ElementFeaturePack.LocalName(), ns,
			fperr.WithMessage("supported: "+strings.Join(Namespaces(), " "))))
	}
	replacer := property.NewReplacer(resolver)
	filters := parsers.NewFileFilterParser(ns, replacer)
	p := &Parser{
		vocab:           vocab,
		replacer:        replacer,
		config:          parsers.NewConfigParser(ns, replacer),
		copyArtifacts:   parsers.NewCopyArtifactsParser(ns, replacer, filters),
		filePermissions: parsers.NewFilePermissionsParser(ns, replacer, filters),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Namespace returns the schema namespace the parser is bound to.
func (p *Parser) Namespace() string { return p.vocab.Namespace() }

// Parse reads a complete descriptor document from r into fpd.
//
// The document must consist of a single feature-pack element. On error,
// fpd must be discarded.
func (p *Parser) Parse(r *xmlutil.Reader, fpd *model.FeaturePackDescription) error {
	token, err := r.NextTag()
	if err != nil {
		return err
	}
	se, _ := token.(xml.StartElement)
	if p.vocab.Element(se.Name) != ElementFeaturePack {
		return errors.WithStack(fperr.UnexpectedElement(se.Name, fperr.WithLocation(r.Location())))
	}
	if err := p.ParseElement(r, se, fpd); err != nil {
		return err
	}
	// nothing but comments and whitespace may follow the root element
	token, err = r.Token()
	if err == io.EOF {
		return nil
	} else if err != nil {
		return err
	}
	switch token := token.(type) {
	case xml.StartElement:
		return errors.WithStack(fperr.UnexpectedElement(token.Name, fperr.WithLocation(r.Location())))
	case xml.CharData:
		return errors.WithStack(fperr.UnexpectedText(strings.TrimSpace(string(token)), "", fperr.WithLocation(r.Location())))
	default:
		return errors.WithStack(fperr.MalformedDocument(fperr.WithLocation(r.Location())))
	}
}

// ParseElement reads the content of the feature-pack element started by
// start, up to and including its end tag, into fpd.
func (p *Parser) ParseElement(r *xmlutil.Reader, start xml.StartElement, fpd *model.FeaturePackDescription) error {
	s := &parseState{p: p, r: r, fpd: fpd, depth: r.Depth()}
	if err := s.noAttributes(start); err != nil {
		return err
	}
	prepare(fpd)
	glog.V(2).Infof("feature-pack: parsing %s", xmlutil.ElemString(start.Name))
	for state := stateFn(rootState); state != nil; {
		var err error
		if state, err = state(s); err != nil {
			return err
		}
	}
	glog.V(2).Infof("feature-pack: %d dependencies, %d artifact versions",
		len(fpd.Dependencies), fpd.ArtifactVersions.Len())
	return nil
}

func prepare(fpd *model.FeaturePackDescription) {
	if fpd.Dependencies == nil {
		fpd.Dependencies = map[string]struct{}{}
	}
	if fpd.ArtifactVersions == nil {
		fpd.ArtifactVersions = artifact.NewSet()
	}
	if fpd.Config == nil {
		fpd.Config = &model.Config{}
	}
	if fpd.CopyArtifacts == nil {
		fpd.CopyArtifacts = &model.CopyArtifacts{}
	}
	if fpd.FilePermissions == nil {
		fpd.FilePermissions = &model.FilePermissions{}
	}
}

// stateFn consumes the next tag within one region of the descriptor and
// returns the state consuming the tag after it. A nil state ends the
// parse; it is returned once the root element's end tag is consumed.
type stateFn func(s *parseState) (stateFn, error)

type parseState struct {
	p   *Parser
	r   *xmlutil.Reader
	fpd *model.FeaturePackDescription

	// depth is the reader depth inside the root element
	depth int
}

func rootState(s *parseState) (stateFn, error) {
	token, err := s.r.NextTag()
	if err != nil {
		return nil, err
	}
	se, ok := token.(xml.StartElement)
	if !ok {
		return nil, nil
	}
	switch s.p.vocab.Element(se.Name) {
	case ElementDependencies:
		if err := s.noAttributes(se); err != nil {
			return nil, err
		}
		return dependenciesState, nil
	case ElementArtifactVersions:
		if err := s.noAttributes(se); err != nil {
			return nil, err
		}
		return artifactVersionsState, nil
	case ElementConfig:
		return s.delegate(se, s.p.config.Parse(s.r, se, s.fpd.Config))
	case ElementCopyArtifacts:
		return s.delegate(se, s.p.copyArtifacts.Parse(s.r, se, s.fpd.CopyArtifacts))
	case ElementFilePermissions:
		return s.delegate(se, s.p.filePermissions.Parse(s.r, se, s.fpd.FilePermissions))
	case ElementUnknown, ElementFeaturePack, ElementArtifact, ElementFilter:
		return nil, s.unexpected(se)
	}
	return nil, s.unexpected(se)
}

func dependenciesState(s *parseState) (stateFn, error) {
	token, err := s.r.NextTag()
	if err != nil {
		return nil, err
	}
	se, ok := token.(xml.StartElement)
	if !ok {
		return rootState, nil
	}
	if s.p.vocab.Element(se.Name) != ElementArtifact {
		return nil, s.unexpected(se)
	}
	name, err := s.parseName(se)
	if err != nil {
		return nil, err
	}
	glog.V(2).Infof("feature-pack: dependency %q", name)
	s.fpd.AddDependency(name)
	return dependenciesState, nil
}

func artifactVersionsState(s *parseState) (stateFn, error) {
	token, err := s.r.NextTag()
	if err != nil {
		return nil, err
	}
	se, ok := token.(xml.StartElement)
	if !ok {
		return rootState, nil
	}
	if s.p.vocab.Element(se.Name) != ElementArtifact {
		return nil, s.unexpected(se)
	}
	loc := s.r.Location()
	a, err := s.parseArtifact(se)
	if err != nil {
		return nil, err
	}
	if err := s.fpd.ArtifactVersions.Add(a); err != nil {
		return nil, fperr.At(err, loc)
	}
	glog.V(2).Infof("feature-pack: artifact version %s", a)
	return artifactVersionsState, nil
}

// parseName reads a dependencies/artifact element, returning its name.
func (s *parseState) parseName(se xml.StartElement) (string, error) {
	loc := s.r.Location()
	var name string
	var seen attributeSet
	required := attributeSet(0).with(AttributeName)
	for _, attr := range xmlutil.Attrs(se) {
		a := s.p.vocab.Attribute(attr.Name)
		if a != AttributeName || seen.has(a) {
			return "", s.unexpectedAttribute(attr, se)
		}
		seen = seen.with(a)
		required = required.without(a)
		name = attr.Value
	}
	if !required.empty() {
		return "", s.missing(se, required)
	}
	if err := s.r.ParseNoContent(se); err != nil {
		return "", err
	}
	name, err := s.p.replacer.Replace(name)
	return name, fperr.At(err, loc)
}

// parseArtifact reads an artifact-versions/artifact element.
func (s *parseState) parseArtifact(se xml.StartElement) (artifact.Artifact, error) {
	var a artifact.Artifact
	var seen attributeSet
	loc := s.r.Location()
	required := attributeSet(0).with(AttributeGroupID, AttributeArtifactID, AttributeVersion)
	for _, attr := range xmlutil.Attrs(se) {
		attribute := s.p.vocab.Attribute(attr.Name)
		if attribute == AttributeUnknown || attribute == AttributeName || seen.has(attribute) {
			return a, s.unexpectedAttribute(attr, se)
		}
		seen = seen.with(attribute)
		required = required.without(attribute)
		v, err := s.p.replacer.Replace(attr.Value)
		if err != nil {
			return a, fperr.At(err, loc)
		}
		switch attribute {
		case AttributeGroupID:
			a.GroupID = v
		case AttributeArtifactID:
			a.ArtifactID = v
		case AttributeVersion:
			a.Version = artifact.Some(v)
		case AttributeClassifier:
			a.Classifier = artifact.Some(v)
		case AttributeExtension:
			a.Extension = artifact.Some(v)
		}
	}
	if !required.empty() {
		return a, s.missing(se, required)
	}
	// the identity must survive substitution
	if a.GroupID == "" {
		return a, s.invalid(se, AttributeGroupID, loc)
	}
	if a.ArtifactID == "" {
		return a, s.invalid(se, AttributeArtifactID, loc)
	}
	return a, s.r.ParseNoContent(se)
}

// delegate checks the reader is back in the root element after the
// sub-parser for se returned without error.
func (s *parseState) delegate(se xml.StartElement, err error) (stateFn, error) {
	if err != nil {
		return nil, err
	}
	if depth := s.r.Depth(); depth != s.depth {
		return nil, errors.Errorf("sub-parser of %s returned at depth %d, want %d",
			xmlutil.ElemString(se.Name), depth, s.depth)
	}
	return rootState, nil
}

func (s *parseState) noAttributes(se xml.StartElement) error {
	if attrs := xmlutil.Attrs(se); len(attrs) > 0 {
		return s.unexpectedAttribute(attrs[0], se)
	}
	return nil
}

func (s *parseState) unexpected(se xml.StartElement) error {
	return errors.WithStack(fperr.UnexpectedElement(se.Name, fperr.WithLocation(s.r.Location())))
}

func (s *parseState) unexpectedAttribute(attr xml.Attr, se xml.StartElement) error {
	return errors.WithStack(fperr.UnexpectedAttribute(attr.Name, se.Name.Local, fperr.WithLocation(s.r.Location())))
}

func (s *parseState) invalid(se xml.StartElement, a Attribute, loc fperr.Location) error {
	return errors.WithStack(fperr.InvalidValue(a.LocalName(), se.Name.Local, "", fperr.WithLocation(loc)))
}

func (s *parseState) missing(se xml.StartElement, required attributeSet) error {
	return errors.WithStack(fperr.MissingAttributes(se.Name.Local, required.names(), fperr.WithLocation(s.r.Location())))
}

// attributeSet is a set of Attributes.
type attributeSet uint

func (as attributeSet) with(attrs ...Attribute) attributeSet {
	for _, a := range attrs {
		as |= 1 << uint(a)
	}
	return as
}

func (as attributeSet) has(a Attribute) bool { return as&(1<<uint(a)) != 0 }

func (as attributeSet) without(a Attribute) attributeSet { return as &^ (1 << uint(a)) }

func (as attributeSet) empty() bool { return as == 0 }

func (as attributeSet) names() (names []string) {
	for a := AttributeGroupID; int(a) < len(attributeNames); a++ {
		if as&(1<<uint(a)) != 0 {
			names = append(names, a.LocalName())
		}
	}
	return names
}
