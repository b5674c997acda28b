package parsers

import (
	"encoding/xml"

	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/model"
	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/property"
	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/xmlutil"
	"github.com/golang/glog"
)

// ConfigElement is the local name of the element ConfigParser reads.
const ConfigElement = "config"

// ConfigParser reads a <config> element:
//
//	<config>
//	  <standalone template="..." subsystems="..." output-file="...">
//	    <property name="..." value="..."/>
//	  </standalone>
//	  <domain .../>
//	  <host .../>
//	</config>
type ConfigParser struct {
	grammar
}

// NewConfigParser returns a ConfigParser for namespace ns.
func NewConfigParser(ns string, replacer *property.Replacer) *ConfigParser {
	return &ConfigParser{grammar{ns: ns, replacer: replacer}}
}

// Parse reads the content of the <config> element started by start, up
// to and including its end tag, into cfg.
func (p *ConfigParser) Parse(r *xmlutil.Reader, start xml.StartElement, cfg *model.Config) error {
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
		local, _ := p.local(se.Name)
		var files *[]model.ConfigFile
		switch local {
		case "standalone":
			files = &cfg.Standalone
		case "domain":
			files = &cfg.Domain
		case "host":
			files = &cfg.Host
		default:
			return unexpected(r, se)
		}
		file, err := p.parseConfigFile(r, se)
		if err != nil {
			return err
		}
		glog.V(2).Infof("config: %s output %s", local, file.OutputFile)
		*files = append(*files, file)
	}
}

func (p *ConfigParser) parseConfigFile(r *xmlutil.Reader, start xml.StartElement) (model.ConfigFile, error) {
	values, err := p.attrs(r, start, []string{"template", "subsystems", "output-file"}, nil)
	if err != nil {
		return model.ConfigFile{}, err
	}
	file := model.ConfigFile{
		Template:   values["template"],
		Subsystems: values["subsystems"],
		OutputFile: values["output-file"],
		Properties: map[string]string{},
	}
	for {
		token, err := r.NextTag()
		if err != nil {
			return file, err
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			return file, nil
		}
		if local, _ := p.local(se.Name); local != "property" {
			return file, unexpected(r, se)
		}
		prop, err := p.attrs(r, se, []string{"name", "value"}, nil)
		if err != nil {
			return file, err
		}
		if err := r.ParseNoContent(se); err != nil {
			return file, err
		}
		file.Properties[prop["name"]] = prop["value"]
	}
}
