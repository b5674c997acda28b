package featurepack

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"

	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/fperr"
	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/model"
	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/property"
	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/xmlutil"
	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

var xpFeaturePack = xpath.MustCompile(`/*[local-name()='feature-pack']`)

// DetectNamespace returns the namespace of the feature-pack root element
// of the document read from r. A root element without a namespace
// yields the empty string.
func DetectNamespace(r io.Reader) (string, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return "", xmlutil.DecodeError(err, syntaxErrorLocation(err))
	}
	if root := xmlquery.QuerySelector(doc, xpFeaturePack); root != nil {
		return root.NamespaceURI, nil
	}
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode {
			return "", errors.WithStack(fperr.UnexpectedElement(xml.Name{Space: n.NamespaceURI, Local: n.Data},
				fperr.WithMessage("want root element feature-pack")))
		}
	}
	return "", errors.WithStack(fperr.EndOfDocument(fperr.WithMessage("no root element")))
}

// Load reads a feature pack descriptor from r.
//
// The schema version is selected by the namespace of the root element;
// documents without one are read as DefaultNamespace. opts configure the
// Parser.
func Load(r io.Reader, resolver property.Resolver, opts ...Option) (*model.FeaturePackDescription, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading feature pack descriptor")
	}
	ns, err := DetectNamespace(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	if ns == "" {
		ns = DefaultNamespace
	}
	glog.V(1).Infof("feature-pack: schema %s", ns)

	p, err := NewParser(ns, resolver, opts...)
	if err != nil {
		return nil, err
	}
	fpd := model.NewFeaturePackDescription()
	if err := p.Parse(xmlutil.NewReader(bytes.NewReader(b)), fpd); err != nil {
		return nil, err
	}
	return fpd, nil
}

// LoadFile reads the feature pack descriptor at path.
func LoadFile(path string, resolver property.Resolver, opts ...Option) (*model.FeaturePackDescription, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()
	fpd, err := Load(f, resolver, opts...)
	return fpd, errors.Wrap(err, path)
}

func syntaxErrorLocation(err error) fperr.Location {
	if se, ok := err.(*xml.SyntaxError); ok {
		return fperr.Location{Line: se.Line}
	}
	return fperr.Location{}
}
