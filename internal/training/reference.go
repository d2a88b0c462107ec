package training

import (
	"fmt"

	"go.lorenzomilicia.dev/training-kit/internal/util"
	"gopkg.in/yaml.v3"
)

const referenceRecord = "reference"

// Reference describes one citation attached to training material
type Reference struct {
	Authors string
	Title   string
	Link    string
	Summary string
}

// NewReference returns a reference holding placeholder values
func NewReference() *Reference {
	return &Reference{
		Authors: "authors et al",
		Title:   "the title",
		Link:    "link",
	}
}

// DecodeReference builds a fresh Reference from a metadata mapping.
// A missing summary decodes as "".
func DecodeReference(meta map[string]any) (*Reference, error) {
	ref := &Reference{}
	if err := ref.LoadMap(meta); err != nil {
		return nil, err
	}
	return ref, nil
}

// LoadMap updates ref from a mapping produced by Export. authors, title and
// link are required; summary is only overwritten when present.
func (ref *Reference) LoadMap(meta map[string]any) error {
	authors, err := requireString(meta, referenceRecord, "authors")
	if err != nil {
		return err
	}
	title, err := requireString(meta, referenceRecord, "title")
	if err != nil {
		return err
	}
	link, err := requireString(meta, referenceRecord, "link")
	if err != nil {
		return err
	}
	summary, hasSummary, err := lookupString(meta, referenceRecord, "summary")
	if err != nil {
		return err
	}

	ref.Authors = authors
	ref.Title = title
	ref.Link = link
	if hasSummary {
		ref.Summary = summary
	}
	return nil
}

// Export returns the reference as an ordered mapping of all four fields
func (ref *Reference) Export() *util.OrderedMap {
	m := util.NewOrderedMap()
	m.Set("authors", ref.Authors)
	m.Set("title", ref.Title)
	m.Set("link", ref.Link)
	m.Set("summary", ref.Summary)
	return m
}

// MarshalYAML encodes the reference in its exported key order
func (ref Reference) MarshalYAML() (any, error) {
	return ref.Export(), nil
}

// UnmarshalYAML decodes a reference mapping into a fresh value
func (ref *Reference) UnmarshalYAML(node *yaml.Node) error {
	var meta map[string]any
	if err := node.Decode(&meta); err != nil {
		return err
	}
	decoded, err := DecodeReference(meta)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*ref = *decoded
	return nil
}
