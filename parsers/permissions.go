package parsers

import (
	"encoding/xml"
	"os"
	"strconv"

	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/fperr"
	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/model"
	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/property"
	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/xmlutil"
	"github.com/pkg/errors"
)

// FilePermissionsElement is the local name of the element FilePermissionsParser reads.
const FilePermissionsElement = "file-permissions"

// FilePermissionsParser reads a <file-permissions> element:
//
//	<file-permissions>
//	  <permission value="755">
//	    <filter pattern="bin/*.sh" include="true"/>
//	  </permission>
//	</file-permissions>
//
// Permission values are octal file modes.
type FilePermissionsParser struct {
	grammar
	filters *FileFilterParser
}

// NewFilePermissionsParser returns a FilePermissionsParser for namespace ns reading filters with filters.
func NewFilePermissionsParser(ns string, replacer *property.Replacer, filters *FileFilterParser) *FilePermissionsParser {
	return &FilePermissionsParser{grammar: grammar{ns: ns, replacer: replacer}, filters: filters}
}

// Parse reads the content of the <file-permissions> element started by
// start, up to and including its end tag, into perms.
func (p *FilePermissionsParser) Parse(r *xmlutil.Reader, start xml.StartElement, perms *model.FilePermissions) error {
	if _, err := p.attrs(r, start, nil, nil); err != nil {
		return err
	}
	for {
		token, err := r.NextTag()
		if err != nil {
			return err
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			return nil
		}
		if local, _ := p.local(se.Name); local != "permission" {
			return unexpected(r, se)
		}
		values, err := p.attrs(r, se, []string{"value"}, nil)
		if err != nil {
			return err
		}
		mode, perr := strconv.ParseUint(values["value"], 8, 32)
		if perr != nil || mode > 0o7777 {
			return errors.WithStack(fperr.InvalidValue("value", se.Name.Local, values["value"], fperr.WithLocation(r.Location())))
		}
		perm := model.FilePermission{Value: os.FileMode(mode)}
		if err := p.filters.parseFilters(r, &perm.Filters); err != nil {
			return err
		}
		*perms = append(*perms, perm)
	}
}
