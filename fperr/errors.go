package fperr

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Kind represents the feature pack parse error kind enumerate
type Kind int

const (
	// KindUnexpectedContent is an unknown or misplaced element, attribute or text
	KindUnexpectedContent Kind = iota
	// KindMissingRequiredAttributes is a start tag lacking required attributes
	KindMissingRequiredAttributes
	// KindUnexpectedEndOfDocument is input ending while a region is open
	KindUnexpectedEndOfDocument
	// KindUnresolvedProperty is a ${name} placeholder with no value
	KindUnresolvedProperty
	// KindDuplicateArtifactVersion is a second artifact-versions entry for one GACE
	KindDuplicateArtifactVersion
	// KindUnknownNamespace is a document in a namespace no schema version binds
	KindUnknownNamespace
	// KindInvalidValue is an attribute whose value cannot be interpreted
	KindInvalidValue
	// KindMalformedDocument is input that is not well-formed XML
	KindMalformedDocument
)

var kindNames = [...]string{
	KindUnexpectedContent:         "unexpected-content",
	KindMissingRequiredAttributes: "missing-required-attributes",
	KindUnexpectedEndOfDocument:   "unexpected-end-of-document",
	KindUnresolvedProperty:        "unresolved-property",
	KindDuplicateArtifactVersion:  "duplicate-artifact-version",
	KindUnknownNamespace:          "unknown-namespace",
	KindInvalidValue:              "invalid-value",
	KindMalformedDocument:         "malformed-document",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k *Kind) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	for i, name := range kindNames {
		if string(b) == name {
			*k = Kind(i)
			return nil
		}
	}
	return errors.New("unknown value")
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Location is a position in the descriptor input.
//
// Line and Column are 1-based and zero when the event source carries no
// text positions. Offset is the index of the tag event in the stream.
type Location struct {
	Line   int `json:"line,omitempty"`
	Column int `json:"column,omitempty"`
	Offset int `json:"offset"`
}

func (l Location) String() string {
	if l.Line > 0 {
		return fmt.Sprintf("line %d column %d", l.Line, l.Column)
	}
	return fmt.Sprintf("event %d", l.Offset)
}

// Error represents a feature pack descriptor parse error.
type Error struct {
	Kind       Kind      `json:"kind"`
	Element    string    `json:"element,omitempty"`
	Namespace  string    `json:"namespace,omitempty"`
	Attributes []string  `json:"attributes,omitempty"`
	Property   string    `json:"property,omitempty"`
	Value      string    `json:"value,omitempty"`
	Location   *Location `json:"location,omitempty"`
	Message    string    `json:"message,omitempty"`
}

func (e *Error) Error() string {
	s := e.Kind.String()
	if e.Location != nil {
		s += " at " + e.Location.String()
	}
	if e.Element != "" {
		s += " element:" + e.Element
	}
	if e.Namespace != "" {
		s += " namespace:" + e.Namespace
	}
	if len(e.Attributes) > 0 {
		s += " attributes:" + strings.Join(e.Attributes, ",")
	}
	if e.Property != "" {
		s += " property:" + e.Property
	}
	if e.Value != "" {
		s += fmt.Sprintf(" value:%q", e.Value)
	}
	if e.Message != "" {
		s += " " + e.Message
	}
	return s
}

func newError(kind Kind, opts []Option) *Error {
	e := &Error{Kind: kind}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// UnexpectedElement reports an element unknown to, or misplaced in, the current region.
func UnexpectedElement(name xml.Name, opts ...Option) *Error {
	e := newError(KindUnexpectedContent, opts)
	e.Element, e.Namespace = name.Local, name.Space
	return e
}

// UnexpectedAttribute reports an attribute unknown to, or misplaced on, element.
func UnexpectedAttribute(attribute xml.Name, element string, opts ...Option) *Error {
	e := newError(KindUnexpectedContent, opts)
	e.Element = element
	e.Attributes = []string{attributeName(attribute)}
	return e
}

// UnexpectedText reports non-whitespace character data inside element.
func UnexpectedText(text, element string, opts ...Option) *Error {
	e := newError(KindUnexpectedContent, opts)
	e.Element = element
	e.Value = text
	return e
}

// MissingAttributes reports the required attributes absent from element.
// The attribute names are reported sorted.
func MissingAttributes(element string, attributes []string, opts ...Option) *Error {
	e := newError(KindMissingRequiredAttributes, opts)
	e.Element = element
	e.Attributes = append([]string(nil), attributes...)
	sort.Strings(e.Attributes)
	return e
}

// EndOfDocument reports input ending before the root element is closed.
func EndOfDocument(opts ...Option) *Error {
	return newError(KindUnexpectedEndOfDocument, opts)
}

// UnresolvedProperty reports a placeholder naming a property no resolver knows.
func UnresolvedProperty(name string, opts ...Option) *Error {
	e := newError(KindUnresolvedProperty, opts)
	e.Property = name
	return e
}

// DuplicateArtifactVersion reports a second version override for the artifact identity gace.
func DuplicateArtifactVersion(gace string, opts ...Option) *Error {
	e := newError(KindDuplicateArtifactVersion, opts)
	e.Value = gace
	return e
}

// UnknownNamespace reports element in a namespace no schema version binds.
func UnknownNamespace(element, namespace string, opts ...Option) *Error {
	e := newError(KindUnknownNamespace, opts)
	e.Element, e.Namespace = element, namespace
	return e
}

// InvalidValue reports an attribute value that cannot be interpreted.
func InvalidValue(attribute, element, value string, opts ...Option) *Error {
	e := newError(KindInvalidValue, opts)
	e.Element = element
	e.Attributes = []string{attribute}
	e.Value = value
	return e
}

// MalformedDocument reports input that is not well-formed XML.
func MalformedDocument(opts ...Option) *Error {
	return newError(KindMalformedDocument, opts)
}

// As returns the *Error found in err's chain, if any.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Is returns true if err's chain holds an *Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == kind
}

// At sets the location of the *Error in err's chain unless it already has one.
// err is returned as is.
func At(err error, loc Location) error {
	if e, ok := As(err); ok && e.Location == nil {
		e.Location = &loc
	}
	return err
}

func attributeName(n xml.Name) string {
	if n.Space != "" {
		return n.Space + ":" + n.Local
	}
	return n.Local
}
