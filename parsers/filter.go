package parsers

import (
	"encoding/xml"
	"strconv"

	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/fperr"
	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/model"
	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/property"
	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/xmlutil"
	"github.com/pkg/errors"
)

// FilterElement is the local name of the element FileFilterParser reads.
const FilterElement = "filter"

// FileFilterParser reads a <filter pattern="..." include="true|false"/> element.
type FileFilterParser struct {
	grammar
}

// NewFileFilterParser returns a FileFilterParser for namespace ns.
func NewFileFilterParser(ns string, replacer *property.Replacer) *FileFilterParser {
	return &FileFilterParser{grammar{ns: ns, replacer: replacer}}
}

// Parse reads the <filter> element started by start and appends it to filters.
func (p *FileFilterParser) Parse(r *xmlutil.Reader, start xml.StartElement, filters *model.Filters) error {
	values, err := p.attrs(r, start, []string{"pattern", "include"}, nil)
	if err != nil {
		return err
	}
	include, err := parseBool(r, start, "include", values["include"])
	if err != nil {
		return err
	}
	*filters = append(*filters, model.FileFilter{Pattern: values["pattern"], Include: include})
	return r.ParseNoContent(start)
}

// parseFilters reads <filter> children up to and including the end tag
// of their parent.
func (p *FileFilterParser) parseFilters(r *xmlutil.Reader, filters *model.Filters) error {
	for {
		token, err := r.NextTag()
		if err != nil {
			return err
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			return nil
		}
		if local, _ := p.local(se.Name); local != FilterElement {
			return unexpected(r, se)
		}
		if err := p.Parse(r, se, filters); err != nil {
			return err
		}
	}
}

func parseBool(r *xmlutil.Reader, se xml.StartElement, attr, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, errors.WithStack(fperr.InvalidValue(attr, se.Name.Local, value, fperr.WithLocation(r.Location())))
	}
	return b, nil
}
