package parsers

import (
	"encoding/xml"

	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/fperr"
	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/property"
	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/xmlutil"
	"github.com/pkg/errors"
)

// grammar is the state shared by the parsers of one schema namespace.
type grammar struct {
	ns       string
	replacer *property.Replacer
}

// local returns the local name of element n, if n is in the grammar's
// namespace. Elements without a namespace are taken to be in it.
func (g grammar) local(n xml.Name) (string, bool) {
	if xmlutil.Qualify(n, g.ns).Space != g.ns {
		return "", false
	}
	return n.Local, true
}

// attrs returns the property substituted values of the attributes of se,
// keyed by local name. Attributes outside required and optional, or in a
// namespace, are unexpected content, as is a repeated attribute; absent
// required ones are reported together.
func (g grammar) attrs(r *xmlutil.Reader, se xml.StartElement, required, optional []string) (map[string]string, error) {
	known := make(map[string]bool, len(required)+len(optional))
	for _, name := range required {
		known[name] = true
	}
	for _, name := range optional {
		known[name] = true
	}
	values := map[string]string{}
	for _, attr := range xmlutil.Attrs(se) {
		_, repeated := values[attr.Name.Local]
		if attr.Name.Space != "" || !known[attr.Name.Local] || repeated {
			return nil, errors.WithStack(fperr.UnexpectedAttribute(attr.Name, se.Name.Local, fperr.WithLocation(r.Location())))
		}
		v, err := g.replacer.Replace(attr.Value)
		if err != nil {
			return nil, fperr.At(err, r.Location())
		}
		values[attr.Name.Local] = v
	}
	var missing []string
	for _, name := range required {
		if _, ok := values[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, errors.WithStack(fperr.MissingAttributes(se.Name.Local, missing, fperr.WithLocation(r.Location())))
	}
	return values, nil
}

func unexpected(r *xmlutil.Reader, se xml.StartElement) error {
	return errors.WithStack(fperr.UnexpectedElement(se.Name, fperr.WithLocation(r.Location())))
}
