package xmlutil

import (
	"encoding/xml"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXMLName(t *testing.T) {
	for _, tc := range []struct {
		local  string
		spaces []string
		want   xml.Name
	}{
		{local: "foo", want: xml.Name{Local: "foo"}},
		{local: "foo", spaces: []string{"bar"}, want: xml.Name{Local: "foo", Space: "bar"}},
		{local: "foo", spaces: []string{"bar", "baz"}, want: xml.Name{Local: "foo", Space: "bar"}},
		{want: xml.Name{}},
	} {
		t.Run(fmt.Sprintf("%v", tc.want), func(t *testing.T) { assert.New(t).Equal(tc.want, XMLName(tc.local, tc.spaces...)) })
	}
}

func TestQualify(t *testing.T) {
	a := assert.New(t)
	a.Equal(XMLName("a", "urn:x"), Qualify(XMLName("a"), "urn:x"))
	a.Equal(XMLName("a", "urn:y"), Qualify(XMLName("a", "urn:y"), "urn:x"))
}

func TestAttrs(t *testing.T) {
	se := xml.StartElement{
		Name: XMLName("feature-pack", "urn:x"),
		Attr: []xml.Attr{
			{Name: XMLName("xmlns"), Value: "urn:x"},
			{Name: XMLName("p", "xmlns"), Value: "urn:p"},
			{Name: XMLName("name"), Value: "core"},
			{Name: XMLName("name", "urn:p"), Value: "other"},
		},
	}
	assert.New(t).Equal([]xml.Attr{
		{Name: XMLName("name"), Value: "core"},
		{Name: XMLName("name", "urn:p"), Value: "other"},
	}, Attrs(se))
}

func TestElemString(t *testing.T) {
	a := assert.New(t)
	a.Equal(`<artifact xmlns="urn:x">`, ElemString(XMLName("artifact", "urn:x")))
	a.Equal(`<artifact>`, ElemString(XMLName("artifact")))
	a.Equal(``, ElemString(xml.Name{}))
}
