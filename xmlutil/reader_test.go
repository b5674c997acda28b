package xmlutil

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/fperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nsTest = "urn:test"

func TestReaderToken(t *testing.T) {
	a := assert.New(t)
	r := NewReader(strings.NewReader(`<?xml version="1.0"?>
<!-- leading comment -->
<root xmlns="urn:test">
  <child a="1"/>
  text
</root>`))

	tok, err := r.Token()
	require.NoError(t, err)
	a.Equal(XMLName("root", nsTest), tok.(xml.StartElement).Name)
	a.Equal(1, r.Depth())
	a.Equal(3, r.Location().Line)
	a.Equal(0, r.Location().Offset)

	tok, err = r.Token()
	require.NoError(t, err)
	se := tok.(xml.StartElement)
	a.Equal(XMLName("child", nsTest), se.Name)
	a.Equal([]xml.Attr{{Name: XMLName("a"), Value: "1"}}, Attrs(se))
	a.Equal(2, r.Depth())

	tok, err = r.Token()
	require.NoError(t, err)
	a.Equal(XMLName("child", nsTest), tok.(xml.EndElement).Name)
	a.Equal(1, r.Depth())

	tok, err = r.Token()
	require.NoError(t, err)
	a.Equal("text", strings.TrimSpace(string(tok.(xml.CharData))))

	tok, err = r.Token()
	require.NoError(t, err)
	a.IsType(xml.EndElement{}, tok)
	a.Equal(0, r.Depth())
	a.Equal(4, r.Location().Offset)

	_, err = r.Token()
	a.Equal(io.EOF, err)
}

func TestReaderNextTag(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    string
		wantKind fperr.Kind
	}{
		{name: "text", input: `<root>text</root>`, wantKind: fperr.KindUnexpectedContent},
		{name: "truncated", input: `<root><child>`, wantKind: fperr.KindUnexpectedEndOfDocument},
		{name: "truncated tag", input: `<root><chi`, wantKind: fperr.KindUnexpectedEndOfDocument},
		{name: "mismatched", input: `<root><a></b></root>`, wantKind: fperr.KindMalformedDocument},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := NewReader(strings.NewReader(tc.input))
			var err error
			for err == nil {
				_, err = r.NextTag()
			}
			assert.True(t, fperr.Is(err, tc.wantKind), "got %v", err)
		})
	}
}

func TestReaderNextTagEOF(t *testing.T) {
	r := NewReader(strings.NewReader(`<root/>`))
	_, err := r.NextTag()
	require.NoError(t, err)
	_, err = r.NextTag()
	require.NoError(t, err)
	_, err = r.NextTag()
	assert.True(t, fperr.Is(err, fperr.KindUnexpectedEndOfDocument))
}

func TestReaderParseNoContent(t *testing.T) {
	a := assert.New(t)

	r := NewReader(strings.NewReader(`<root><a/><b><c/></b></root>`))
	_, err := r.NextTag()
	require.NoError(t, err)

	tok, err := r.NextTag()
	require.NoError(t, err)
	a.NoError(r.ParseNoContent(tok.(xml.StartElement)))

	tok, err = r.NextTag()
	require.NoError(t, err)
	err = r.ParseNoContent(tok.(xml.StartElement))
	if e, ok := fperr.As(err); a.True(ok) {
		a.Equal(fperr.KindUnexpectedContent, e.Kind)
		a.Equal("c", e.Element)
	}
}

func TestTokenReader(t *testing.T) {
	a := assert.New(t)
	root := Start(XMLName("root", nsTest))
	child := Start(XMLName("child", nsTest), "name", "x")
	tokens := Tokens{root, child, child.End(), root.End()}
	r := NewTokenReader(&tokens)

	var got []xml.Token
	for {
		tok, err := r.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, tok)
	}
	a.Len(got, 4)
	a.Equal(child, got[1])
	a.Equal(fperr.Location{Offset: 3}, r.Location())
}

func TestTokenReaderTruncated(t *testing.T) {
	root := Start(XMLName("root", nsTest))
	tokens := Tokens{root, Start(XMLName("child", nsTest))}
	r := NewTokenReader(&tokens)
	var err error
	for err == nil {
		_, err = r.NextTag()
	}
	if e, ok := fperr.As(err); assert.True(t, ok) {
		assert.Equal(t, fperr.KindUnexpectedEndOfDocument, e.Kind)
		assert.Equal(t, 0, e.Location.Line)
		assert.Equal(t, 2, e.Location.Offset)
	}
}
