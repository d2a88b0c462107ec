package content

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lorenzomilicia.dev/training-kit/internal/training"
	"go.lorenzomilicia.dev/training-kit/internal/util"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "genome-assembly", Slugify("Genome Assembly"))
	assert.Equal(t, "rna-seq-101", Slugify("  RNA-Seq 101! "))
	assert.Equal(t, "", Slugify("???"))
}

func TestCreateAndGetTopic(t *testing.T) {
	m := NewManager(t.TempDir())

	created, err := m.CreateTopic("Genome Assembly", "Assemble genomes")
	require.NoError(t, err)
	assert.Equal(t, "genome-assembly", created.Name)

	got, err := m.GetTopic("genome-assembly")
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = m.CreateTopic("Genome assembly", "")
	assert.ErrorIs(t, err, ErrTopicExists)

	_, err = m.CreateTopic("!!!", "")
	assert.Error(t, err)
}

func TestAddRequirementAndReferences(t *testing.T) {
	m := NewManager(t.TempDir())
	_, err := m.CreateTopic("Assembly", "")
	require.NoError(t, err)

	require.NoError(t, m.AddRequirement("assembly", training.NewInternalRequirement("introduction", "galaxy-intro-101")))
	require.NoError(t, m.AddRequirement("assembly", training.NewExternalRequirement("Linux basics", "https://example.org/linux")))
	require.NoError(t, m.AddReferences("assembly",
		&training.Reference{Authors: "Zerbino", Title: "Velvet", Link: "https://doi.org/10.1101/gr.074492.107"},
	))

	got, err := m.GetTopic("assembly")
	require.NoError(t, err)
	require.Len(t, got.Requirements, 2)
	assert.Equal(t, []string{"galaxy-intro-101"}, got.Requirements[0].Tutorials)
	assert.Equal(t, training.External, got.Requirements[1].Type)
	assert.Empty(t, got.Requirements[1].TopicName)
	require.Len(t, got.References, 1)
	assert.Equal(t, "Velvet", got.References[0].Title)

	data, err := os.ReadFile(m.TopicMetaPath("assembly"))
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, "---\n"))
	assert.Less(t, strings.Index(text, "type: external"), strings.Index(text, "title: Linux basics"))

	raw, err := util.LoadYAML(m.TopicMetaPath("assembly"))
	require.NoError(t, err)
	refs := raw.(map[string]any)["references"].([]any)
	ref, err := training.DecodeReference(refs[0].(map[string]any))
	require.NoError(t, err)
	assert.Equal(t, "Zerbino", ref.Authors)
}

func TestListTopics(t *testing.T) {
	m := NewManager(t.TempDir())

	topics, err := m.ListTopics()
	require.NoError(t, err)
	assert.Empty(t, topics)

	for _, title := range []string{"Transcriptomics", "Assembly", "Variant Analysis"} {
		_, err := m.CreateTopic(title, "")
		require.NoError(t, err)
	}
	require.NoError(t, os.MkdirAll(m.TopicDir("broken"), 0755))
	require.NoError(t, os.WriteFile(m.TopicMetaPath("broken"), []byte("requirements:\n  - type: external\n"), 0644))

	topics, err = m.ListTopics()
	require.NoError(t, err)
	require.Len(t, topics, 3)
	assert.Equal(t, "Assembly", topics[0].Title)
	assert.Equal(t, "Transcriptomics", topics[1].Title)
	assert.Equal(t, "Variant Analysis", topics[2].Title)
}

func TestDeleteTopic(t *testing.T) {
	m := NewManager(t.TempDir())
	_, err := m.CreateTopic("Assembly", "")
	require.NoError(t, err)

	require.NoError(t, m.DeleteTopic("assembly"))
	_, err = m.GetTopic("assembly")
	assert.ErrorIs(t, err, os.ErrNotExist)

	assert.ErrorIs(t, m.DeleteTopic("assembly"), os.ErrNotExist)
}

func TestDeleteTopicRejectsPathSlugs(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)
	for _, title := range []string{"Assembly", "Mapping"} {
		_, err := m.CreateTopic(title, "")
		require.NoError(t, err)
	}

	for _, slug := range []string{"", "..", ".", "../topics", "assembly/..", "Assembly"} {
		assert.ErrorIs(t, m.DeleteTopic(slug), ErrInvalidSlug, "slug %q", slug)
	}

	_, err := os.Stat(m.TopicMetaPath("assembly"))
	assert.NoError(t, err)
	_, err = os.Stat(m.TopicMetaPath("mapping"))
	assert.NoError(t, err)

	_, err = m.GetTopic("..")
	assert.ErrorIs(t, err, ErrInvalidSlug)
	assert.ErrorIs(t, m.SaveTopic(&TopicMetadata{Name: "../escape"}), ErrInvalidSlug)
}

func TestScanTopicsReportsFailures(t *testing.T) {
	m := NewManager(t.TempDir())
	_, err := m.CreateTopic("Assembly", "")
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(m.TopicDir("broken"), 0755))
	require.NoError(t, os.WriteFile(m.TopicMetaPath("broken"), []byte("requirements:\n  - type: external\n    title: t\n"), 0644))

	topics, failures, err := m.ScanTopics()
	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, "assembly", topics[0].Name)
	require.Len(t, failures, 1)
	assert.ErrorIs(t, failures[0], training.ErrMissingKey)
	assert.Contains(t, failures[0].Error(), "broken")
}

func TestCheckTopic(t *testing.T) {
	m := NewManager(t.TempDir())
	_, err := m.CreateTopic("Introduction", "")
	require.NoError(t, err)

	meta := &TopicMetadata{
		Name: "assembly",
		Requirements: []training.Requirement{
			*training.NewInternalRequirement("introduction"),
			*training.NewInternalRequirement("missing-topic"),
			{Type: "video", Title: "Intro"},
			*training.NewTitleOnlyRequirement("Some background"),
		},
	}

	problems := m.CheckTopic(meta)
	require.Len(t, problems, 2)
	assert.Contains(t, problems[0].Error(), "missing-topic")
	assert.ErrorIs(t, problems[1], training.ErrUnknownRequirementType)
}
