package parsers

import (
	"encoding/xml"

	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/model"
	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/property"
	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/xmlutil"
	"github.com/golang/glog"
)

// CopyArtifactsElement is the local name of the element CopyArtifactsParser reads.
const CopyArtifactsElement = "copy-artifacts"

// CopyArtifactsParser reads a <copy-artifacts> element:
//
//	<copy-artifacts>
//	  <copy-artifact artifact="g:a" to-location="..." from-location="..." extract="true">
//	    <filter pattern="..." include="true"/>
//	  </copy-artifact>
//	</copy-artifacts>
type CopyArtifactsParser struct {
	grammar
	filters *FileFilterParser
}

// NewCopyArtifactsParser returns a CopyArtifactsParser for namespace ns reading filters with filters.
func NewCopyArtifactsParser(ns string, replacer *property.Replacer, filters *FileFilterParser) *CopyArtifactsParser {
	return &CopyArtifactsParser{grammar: grammar{ns: ns, replacer: replacer}, filters: filters}
}

// Parse reads the content of the <copy-artifacts> element started by
// start, up to and including its end tag, into copies.
func (p *CopyArtifactsParser) Parse(r *xmlutil.Reader, start xml.StartElement, copies *model.CopyArtifacts) error {
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
		if local, _ := p.local(se.Name); local != "copy-artifact" {
			return unexpected(r, se)
		}
		c, err := p.parseCopyArtifact(r, se)
		if err != nil {
			return err
		}
		glog.V(2).Infof("copy-artifacts: %s to %s", c.Artifact, c.ToLocation)
		*copies = append(*copies, c)
	}
}

func (p *CopyArtifactsParser) parseCopyArtifact(r *xmlutil.Reader, start xml.StartElement) (model.CopyArtifact, error) {
	values, err := p.attrs(r, start,
		[]string{"artifact", "to-location"},
		[]string{"from-location", "extract"})
	if err != nil {
		return model.CopyArtifact{}, err
	}
	c := model.CopyArtifact{
		Artifact:     values["artifact"],
		ToLocation:   values["to-location"],
		FromLocation: values["from-location"],
	}
	if v, ok := values["extract"]; ok {
		if c.Extract, err = parseBool(r, start, "extract", v); err != nil {
			return c, err
		}
	}
	return c, p.filters.parseFilters(r, &c.Filters)
}
