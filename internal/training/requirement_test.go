package training

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewRequirementDefaults(t *testing.T) {
	r := NewRequirement()
	assert.Equal(t, Internal, r.Type)
	assert.Equal(t, "introduction", r.TopicName)
	assert.Empty(t, r.Tutorials)
	assert.Empty(t, r.Title)
	assert.Empty(t, r.Link)
}

func TestRequirementRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		req  *Requirement
	}{
		{"internal with tutorials", NewInternalRequirement("assembly", "general-introduction", "chloroplast-assembly")},
		{"internal without tutorials", NewInternalRequirement("assembly")},
		{"external", NewExternalRequirement("Galaxy 101", "https://example.org/galaxy-101")},
		{"title only", NewTitleOnlyRequirement("Basic command line")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			decoded, err := DecodeRequirement(tc.req.Export().Map())
			require.NoError(t, err)
			assert.Equal(t, tc.req, decoded)
		})
	}
}

func TestRequirementExportOrder(t *testing.T) {
	internal := NewInternalRequirement("assembly", "a", "b")
	assert.Equal(t, []string{"type", "topic_name", "tutorials"}, internal.Export().Keys())

	external := NewExternalRequirement("t", "l")
	assert.Equal(t, []string{"type", "title", "link"}, external.Export().Keys())

	titleOnly := NewTitleOnlyRequirement("t")
	assert.Equal(t, []string{"type", "title"}, titleOnly.Export().Keys())
}

func TestRequirementExportOmitsEmptyTutorials(t *testing.T) {
	r := NewRequirement()
	assert.False(t, r.Export().Has("tutorials"))

	r.Tutorials = []string{}
	assert.False(t, r.Export().Has("tutorials"))
}

func TestRequirementExportSkipsOtherBranch(t *testing.T) {
	r := &Requirement{Type: Internal, TopicName: "x", Title: "stale", Link: "stale"}
	m := r.Export()
	assert.False(t, m.Has("title"))
	assert.False(t, m.Has("link"))

	r = &Requirement{Type: External, TopicName: "stale", Tutorials: []string{"stale"}, Title: "t", Link: "l"}
	m = r.Export()
	assert.False(t, m.Has("topic_name"))
	assert.False(t, m.Has("tutorials"))
}

func TestRequirementMissingKeys(t *testing.T) {
	cases := []struct {
		name string
		meta map[string]any
		key  string
	}{
		{"empty", map[string]any{}, "type"},
		{"internal without topic", map[string]any{"type": "internal"}, "topic_name"},
		{"external without link", map[string]any{"type": "external", "title": "t"}, "link"},
		{"external without title", map[string]any{"type": "external", "link": "l"}, "title"},
		{"title only without title", map[string]any{"type": "none"}, "title"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeRequirement(tc.meta)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingKey)

			var missing *MissingKeyError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, tc.key, missing.Key)
			assert.Equal(t, "requirement", missing.Record)
		})
	}
}

func TestRequirementLoadMapKeepsOtherBranch(t *testing.T) {
	r := NewExternalRequirement("Galaxy 101", "https://example.org")
	err := r.LoadMap(map[string]any{"type": "internal", "topic_name": "assembly"})
	require.NoError(t, err)

	assert.Equal(t, Internal, r.Type)
	assert.Equal(t, "assembly", r.TopicName)
	assert.Equal(t, "Galaxy 101", r.Title)
	assert.Equal(t, "https://example.org", r.Link)
}

func TestRequirementLoadMapKeepsTutorialsWhenAbsent(t *testing.T) {
	r := NewInternalRequirement("assembly", "one")
	require.NoError(t, r.LoadMap(map[string]any{"type": "internal", "topic_name": "mapping"}))
	assert.Equal(t, []string{"one"}, r.Tutorials)

	require.NoError(t, r.LoadMap(map[string]any{"type": "internal", "topic_name": "mapping", "tutorials": []any{"two"}}))
	assert.Equal(t, []string{"two"}, r.Tutorials)
}

func TestRequirementLoadMapUnchangedOnError(t *testing.T) {
	r := NewInternalRequirement("assembly")
	err := r.LoadMap(map[string]any{"type": "external", "title": "t"})
	require.ErrorIs(t, err, ErrMissingKey)
	assert.Equal(t, NewInternalRequirement("assembly"), r)
}

func TestDecodeRequirementIsFresh(t *testing.T) {
	r, err := DecodeRequirement(map[string]any{"type": "external", "title": "t", "link": "l"})
	require.NoError(t, err)
	assert.Empty(t, r.TopicName)
	assert.Nil(t, r.Tutorials)
}

func TestRequirementUnknownTypeReadsTitle(t *testing.T) {
	r, err := DecodeRequirement(map[string]any{"type": "video", "title": "Intro video"})
	require.NoError(t, err)
	assert.Equal(t, RequirementType("video"), r.Type)
	assert.Equal(t, "Intro video", r.Title)

	err = r.Validate()
	assert.ErrorIs(t, err, ErrUnknownRequirementType)
	assert.NoError(t, NewExternalRequirement("t", "l").Validate())
}

func TestRequirementInvalidTutorials(t *testing.T) {
	_, err := DecodeRequirement(map[string]any{
		"type":       "internal",
		"topic_name": "assembly",
		"tutorials":  map[string]any{"a": 1},
	})
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestRequirementYAML(t *testing.T) {
	in := []Requirement{
		*NewInternalRequirement("assembly", "velvet"),
		*NewExternalRequirement("Galaxy 101", "https://example.org"),
	}
	data, err := yaml.Marshal(in)
	require.NoError(t, err)

	text := string(data)
	assert.Less(t, strings.Index(text, "type: internal"), strings.Index(text, "topic_name: assembly"))
	assert.Less(t, strings.Index(text, "topic_name: assembly"), strings.Index(text, "- velvet"))
	assert.Less(t, strings.Index(text, "title: Galaxy 101"), strings.Index(text, "link: https://example.org"))

	var out []Requirement
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestRequirementYAMLMissingKey(t *testing.T) {
	var out Requirement
	err := yaml.Unmarshal([]byte("type: external\ntitle: t\n"), &out)
	assert.ErrorIs(t, err, ErrMissingKey)
}
