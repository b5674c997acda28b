package parsers

import (
	"encoding/xml"
	"os"
	"strings"
	"testing"

	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/fperr"
	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/model"
	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/property"
	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/xmlutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ns = "urn:wildfly:feature-pack:1.1"

// open returns a Reader positioned after the first start tag of input.
func open(t *testing.T, input string) (*xmlutil.Reader, xml.StartElement) {
	t.Helper()
	r := xmlutil.NewReader(strings.NewReader(input))
	token, err := r.NextTag()
	require.NoError(t, err)
	se, ok := token.(xml.StartElement)
	require.True(t, ok)
	return r, se
}

func TestConfigParser(t *testing.T) {
	check := assert.New(t)
	p := NewConfigParser(ns, property.NewReplacer(property.Map{"dir": "configuration"}))
	r, se := open(t, `<config xmlns="urn:wildfly:feature-pack:1.1">
  <standalone template="${dir}/standalone.xml" subsystems="${dir}/subsystems.xml" output-file="standalone.xml">
    <property name="a" value="1"/>
    <property name="b" value="${b:2}"/>
  </standalone>
  <standalone template="t2" subsystems="s2" output-file="o2"/>
  <host template="h" subsystems="hs" output-file="host.xml"/>
</config>`)
	var cfg model.Config
	require.NoError(t, p.Parse(r, se, &cfg))
	check.Equal(0, r.Depth())
	check.Len(cfg.Standalone, 2)
	check.Empty(cfg.Domain)
	check.Equal("configuration/standalone.xml", cfg.Standalone[0].Template)
	check.Equal(map[string]string{"a": "1", "b": "2"}, cfg.Standalone[0].Properties)
	check.Equal([]string{"standalone.xml", "o2", "host.xml"}, outputs(cfg.Files()))
}

func outputs(files []model.ConfigFile) (out []string) {
	for _, f := range files {
		out = append(out, f.OutputFile)
	}
	return out
}

func TestCopyArtifactsParser(t *testing.T) {
	replacer := property.NewReplacer(nil)
	p := NewCopyArtifactsParser(ns, replacer, NewFileFilterParser(ns, replacer))
	r, se := open(t, `<copy-artifacts>
  <copy-artifact artifact="org.wildfly:wildfly-dist" to-location="docs" extract="true">
    <filter pattern="*.txt" include="true"/>
    <filter pattern="*" include="false"/>
  </copy-artifact>
</copy-artifacts>`)
	var copies model.CopyArtifacts
	require.NoError(t, p.Parse(r, se, &copies))
	require.Len(t, copies, 1)
	assert.True(t, copies[0].Extract)
	assert.Equal(t, "", copies[0].FromLocation)
	assert.True(t, copies[0].Includes("README.txt"))
	assert.False(t, copies[0].Includes("LICENSE"))
}

func TestFilePermissionsParser(t *testing.T) {
	replacer := property.NewReplacer(nil)
	p := NewFilePermissionsParser(ns, replacer, NewFileFilterParser(ns, replacer))
	r, se := open(t, `<file-permissions>
  <permission value="0755"><filter pattern="bin/*.sh" include="true"/></permission>
  <permission value="600"><filter pattern="*" include="true"/></permission>
</file-permissions>`)
	var perms model.FilePermissions
	require.NoError(t, p.Parse(r, se, &perms))
	mode, ok := perms.PermissionFor("bin/add-user.sh")
	assert.True(t, ok)
	assert.Equal(t, os.FileMode(0o755), mode)
	mode, ok = perms.PermissionFor("modules/system")
	assert.True(t, ok)
	assert.Equal(t, os.FileMode(0o600), mode)
}

func TestParserErrors(t *testing.T) {
	replacer := property.NewReplacer(nil)
	filters := NewFileFilterParser(ns, replacer)
	parse := map[string]func(r *xmlutil.Reader, se xml.StartElement) error{
		"config": func(r *xmlutil.Reader, se xml.StartElement) error {
			return NewConfigParser(ns, replacer).Parse(r, se, &model.Config{})
		},
		"copy-artifacts": func(r *xmlutil.Reader, se xml.StartElement) error {
			return NewCopyArtifactsParser(ns, replacer, filters).Parse(r, se, &model.CopyArtifacts{})
		},
		"file-permissions": func(r *xmlutil.Reader, se xml.StartElement) error {
			return NewFilePermissionsParser(ns, replacer, filters).Parse(r, se, &model.FilePermissions{})
		},
	}
	for _, tc := range []struct {
		name           string
		input          string
		wantKind       fperr.Kind
		wantElement    string
		wantAttributes []string
	}{
		{
			name:        "foreign namespace child",
			input:       `<config><standalone xmlns="urn:other" template="t" subsystems="s" output-file="o"/></config>`,
			wantKind:    fperr.KindUnexpectedContent,
			wantElement: "standalone",
		},
		{
			name:           "missing config file attributes",
			input:          `<config><domain template="t"/></config>`,
			wantKind:       fperr.KindMissingRequiredAttributes,
			wantElement:    "domain",
			wantAttributes: []string{"output-file", "subsystems"},
		},
		{
			name:           "namespaced attribute",
			input:          `<config xmlns:x="urn:x"><host x:template="t" subsystems="s" output-file="o"/></config>`,
			wantKind:       fperr.KindUnexpectedContent,
			wantElement:    "host",
			wantAttributes: []string{"urn:x:template"},
		},
		{
			name:        "property with content",
			input:       `<config><host template="t" subsystems="s" output-file="o"><property name="a" value="b"><x/></property></host></config>`,
			wantKind:    fperr.KindUnexpectedContent,
			wantElement: "x",
		},
		{
			name:           "repeated attribute",
			input:          `<copy-artifacts><copy-artifact artifact="a" to-location="b" to-location="c"/></copy-artifacts>`,
			wantKind:       fperr.KindUnexpectedContent,
			wantElement:    "copy-artifact",
			wantAttributes: []string{"to-location"},
		},
		{
			name:           "repeated filter include",
			input:          `<file-permissions><permission value="644"><filter pattern="*" include="true" include="false"/></permission></file-permissions>`,
			wantKind:       fperr.KindUnexpectedContent,
			wantElement:    "filter",
			wantAttributes: []string{"include"},
		},
		{
			name:           "extract value",
			input:          `<copy-artifacts><copy-artifact artifact="a" to-location="b" extract="yes"/></copy-artifacts>`,
			wantKind:       fperr.KindInvalidValue,
			wantElement:    "copy-artifact",
			wantAttributes: []string{"extract"},
		},
		{
			name:        "filter child",
			input:       `<copy-artifacts><copy-artifact artifact="a" to-location="b"><filter pattern="*" include="true"><x/></filter></copy-artifact></copy-artifacts>`,
			wantKind:    fperr.KindUnexpectedContent,
			wantElement: "x",
		},
		{
			name:           "permission not octal",
			input:          `<file-permissions><permission value="0x1ff"/></file-permissions>`,
			wantKind:       fperr.KindInvalidValue,
			wantElement:    "permission",
			wantAttributes: []string{"value"},
		},
		{
			name:     "unresolved permission",
			input:    `<file-permissions><permission value="${mode}"/></file-permissions>`,
			wantKind: fperr.KindUnresolvedProperty,
		},
		{
			name:     "truncated",
			input:    `<file-permissions><permission value="644">`,
			wantKind: fperr.KindUnexpectedEndOfDocument,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			check := assert.New(t)
			r, se := open(t, tc.input)
			err := parse[se.Name.Local](r, se)
			e, ok := fperr.As(err)
			if !check.True(ok, "got %v", err) {
				return
			}
			check.Equal(tc.wantKind, e.Kind)
			check.Equal(tc.wantElement, e.Element)
			check.Equal(tc.wantAttributes, e.Attributes)
			check.NotNil(e.Location)
		})
	}
}
