package featurepack

import (
	"testing"

	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/xmlutil"
	"github.com/stretchr/testify/assert"
)

func TestVocabularyElement(t *testing.T) {
	v10, ok := VocabularyFor(Namespace10)
	assert.True(t, ok)
	v11, ok := VocabularyFor(Namespace11)
	assert.True(t, ok)
	_, ok = VocabularyFor("urn:wildfly:feature-pack:1.2")
	assert.False(t, ok)

	for _, tc := range []struct {
		vocab *Vocabulary
		local string
		ns    string
		want  Element
	}{
		{v11, "feature-pack", "", ElementFeaturePack},
		{v11, "feature-pack", Namespace11, ElementFeaturePack},
		{v11, "feature-pack", Namespace10, ElementUnknown},
		{v10, "feature-pack", Namespace10, ElementFeaturePack},
		{v10, "dependencies", "", ElementDependencies},
		{v10, "artifact", Namespace10, ElementArtifact},
		{v10, "artifact-versions", Namespace10, ElementArtifactVersions},
		{v11, "config", Namespace11, ElementConfig},
		{v11, "copy-artifacts", Namespace11, ElementCopyArtifacts},
		{v11, "filter", Namespace11, ElementFilter},
		{v11, "file-permissions", Namespace11, ElementFilePermissions},
		{v11, "plugins", Namespace11, ElementUnknown},
		{v11, "", "", ElementUnknown},
	} {
		got := tc.vocab.Element(xmlutil.XMLName(tc.local, tc.ns))
		assert.Equal(t, tc.want, got, "%s in %s, vocabulary %s", tc.local, tc.ns, tc.vocab.Namespace())
	}
}

func TestVocabularyAttribute(t *testing.T) {
	v, _ := VocabularyFor(DefaultNamespace)
	for _, tc := range []struct {
		local string
		ns    string
		want  Attribute
	}{
		{"groupId", "", AttributeGroupID},
		{"artifactId", "", AttributeArtifactID},
		{"classifier", "", AttributeClassifier},
		{"extension", "", AttributeExtension},
		{"version", "", AttributeVersion},
		{"name", "", AttributeName},
		{"name", Namespace11, AttributeUnknown},
		{"groupid", "", AttributeUnknown},
		{"", "", AttributeUnknown},
	} {
		assert.Equal(t, tc.want, v.Attribute(xmlutil.XMLName(tc.local, tc.ns)), "%s %s", tc.ns, tc.local)
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, "artifact-versions", ElementArtifactVersions.String())
	assert.Equal(t, "unknown", ElementUnknown.String())
	assert.Equal(t, "", Element(100).LocalName())
	assert.Equal(t, "groupId", AttributeGroupID.String())
	assert.Equal(t, "unknown", Attribute(-1).String())
	assert.Equal(t, []string{Namespace10, Namespace11}, Namespaces())
}

func TestAttributeSet(t *testing.T) {
	as := attributeSet(0).with(AttributeVersion, AttributeGroupID, AttributeArtifactID)
	assert.Equal(t, []string{"groupId", "artifactId", "version"}, as.names())
	as = as.without(AttributeGroupID).without(AttributeName)
	assert.Equal(t, []string{"artifactId", "version"}, as.names())
	assert.False(t, as.empty())
	assert.True(t, as.without(AttributeArtifactID).without(AttributeVersion).empty())
}
