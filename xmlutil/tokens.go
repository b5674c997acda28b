package xmlutil

import (
	"encoding/xml"
	"io"
)

// Tokens is an in-memory xml.TokenReader replaying its tokens in order,
// then io.EOF. It lets tests and hosts feed a Reader without XML text.
type Tokens []xml.Token

func (t *Tokens) Token() (xml.Token, error) {
	if len(*t) == 0 {
		return nil, io.EOF
	}
	token := (*t)[0]
	*t = (*t)[1:]
	return token, nil
}

// Start returns a start tag named name with attributes given as
// alternating local names and values.
func Start(name xml.Name, attrs ...string) xml.StartElement {
	se := xml.StartElement{Name: name}
	for i := 0; i+1 < len(attrs); i += 2 {
		se.Attr = append(se.Attr, xml.Attr{Name: XMLName(attrs[i]), Value: attrs[i+1]})
	}
	return se
}
