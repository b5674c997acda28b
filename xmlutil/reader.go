package xmlutil

import (
	"bytes"
	"encoding/xml"
	"io"

	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/fperr"
	"github.com/pkg/errors"
)

// Reader is a forward-only XML tag event stream.
//
// Reader returns start tags, end tags and non-whitespace character data,
// in document order, with namespace URIs resolved on element names.
// Comments, processing instructions, directives and whitespace-only
// character data are consumed silently. Each returned token is one event;
// events are numbered from zero and the number is reported as the Offset
// of the Reader's Location.
type Reader struct {
	d          *xml.Decoder
	positional bool
	depth      int
	events     int
	loc        fperr.Location
}

// NewReader returns a Reader decoding the XML document read from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{d: xml.NewDecoder(r), positional: true}
}

// NewTokenReader returns a Reader consuming the tokens of tr.
// Locations reported by the Reader carry event offsets only.
func NewTokenReader(tr xml.TokenReader) *Reader {
	return &Reader{d: xml.NewTokenDecoder(tr)}
}

// Token returns the next event. At the end of a well-formed document
// it returns io.EOF; input ending with elements still open is reported
// as an fperr unexpected-end-of-document error.
func (r *Reader) Token() (xml.Token, error) {
	for {
		token, err := r.d.Token()
		if err != nil {
			return nil, r.decodeError(err)
		}
		switch token := token.(type) {
		case xml.StartElement:
			r.event()
			r.depth++
			return token.Copy(), nil
		case xml.EndElement:
			r.event()
			r.depth--
			return token, nil
		case xml.CharData:
			if len(bytes.TrimSpace(token)) == 0 {
				continue
			}
			r.event()
			return token.Copy(), nil
		case xml.Comment, xml.ProcInst, xml.Directive:
			// ignore comments, processing instructions and directives
		}
	}
}

// NextTag returns the next start or end tag. Character data and the end
// of the input are errors, as a tag is required.
func (r *Reader) NextTag() (xml.Token, error) {
	token, err := r.Token()
	if err == io.EOF {
		return nil, errors.WithStack(fperr.EndOfDocument(fperr.WithLocation(r.loc)))
	}
	if err != nil {
		return nil, err
	}
	if cd, ok := token.(xml.CharData); ok {
		return nil, errors.WithStack(fperr.UnexpectedText(
			string(bytes.TrimSpace(cd)), "", fperr.WithLocation(r.loc)))
	}
	return token, nil
}

// ParseNoContent consumes the end tag of the element started by start,
// which must have no child elements and no character data.
func (r *Reader) ParseNoContent(start xml.StartElement) error {
	token, err := r.NextTag()
	if err != nil {
		return err
	}
	if se, ok := token.(xml.StartElement); ok {
		return errors.WithStack(fperr.UnexpectedElement(se.Name,
			fperr.WithLocation(r.loc),
			fperr.WithMessage("element "+ElemString(start.Name)+" must be empty")))
	}
	return nil
}

// Location returns the location of the last event returned.
func (r *Reader) Location() fperr.Location { return r.loc }

// Depth returns the number of elements presently open.
func (r *Reader) Depth() int { return r.depth }

func (r *Reader) event() {
	r.loc = fperr.Location{Offset: r.events}
	if r.positional {
		r.loc.Line, r.loc.Column = r.d.InputPos()
	}
	r.events++
}

func (r *Reader) decodeError(err error) error {
	if err == io.EOF {
		return err
	}
	loc := fperr.Location{Offset: r.events}
	if r.positional {
		loc.Line, loc.Column = r.d.InputPos()
	}
	return DecodeError(err, loc)
}

// DecodeError converts an error returned by an xml.Decoder at loc. Input
// ending inside an element is an unexpected-end-of-document error, any
// other syntax error a malformed-document error.
func DecodeError(err error, loc fperr.Location) error {
	se, ok := err.(*xml.SyntaxError)
	if !ok {
		return errors.Wrap(err, "reading feature pack descriptor")
	}
	if se.Msg == "unexpected EOF" {
		return errors.WithStack(fperr.EndOfDocument(fperr.WithLocation(loc)))
	}
	return errors.WithStack(fperr.MalformedDocument(fperr.WithLocation(loc), fperr.WithMessage(se.Msg)))
}
