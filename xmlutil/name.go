package xmlutil

import "encoding/xml"

// XMLName is a shortcut for creating xml.Name, where typically you want at least
// a local name, and perhaps a namespace value as well.
func XMLName(local string, spaces ...string) xml.Name {
	n := xml.Name{Local: local}
	if len(spaces) > 0 {
		n.Space = spaces[0]
	}
	return n
}

// Qualify returns n in namespace ns when n has no namespace of its own.
func Qualify(n xml.Name, ns string) xml.Name {
	if n.Space == "" {
		n.Space = ns
	}
	return n
}

// Attrs returns the attributes of se less any namespace declarations.
func Attrs(se xml.StartElement) []xml.Attr {
	attrs := make([]xml.Attr, 0, len(se.Attr))
	for _, attr := range se.Attr {
		if isNamespaceDecl(attr.Name) {
			continue
		}
		attrs = append(attrs, attr)
	}
	return attrs
}

func isNamespaceDecl(n xml.Name) bool {
	return n.Space == "xmlns" || (n.Space == "" && n.Local == "xmlns")
}

// ElemString returns a start tag rendering of n, e.g. <foo xmlns="urn:bar">.
func ElemString(n xml.Name) string {
	local := n.Local
	if local == "" {
		return ""
	}
	if ns := n.Space; ns != "" {
		return "<" + local + ` xmlns="` + ns + `">`
	}
	return "<" + local + ">"
}
