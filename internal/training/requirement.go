package training

import (
	"fmt"

	"go.lorenzomilicia.dev/training-kit/internal/util"
	"gopkg.in/yaml.v3"
)

// RequirementType selects which fields a Requirement carries
type RequirementType string

const (
	// Internal points at a topic (and optionally tutorials) of the same material
	Internal RequirementType = "internal"
	// External points at an outside resource by title and link
	External RequirementType = "external"
	// TitleOnly names a prerequisite without linking it
	TitleOnly RequirementType = "none"
)

// IsKnown reports whether t is one of the defined requirement types
func (t RequirementType) IsKnown() bool {
	switch t {
	case Internal, External, TitleOnly:
		return true
	}
	return false
}

const requirementRecord = "requirement"

// Requirement describes one prerequisite for a training topic.
// TopicName and Tutorials apply to internal requirements, Title to the
// others and Link to external ones only.
type Requirement struct {
	Type      RequirementType
	TopicName string
	Tutorials []string
	Title     string
	Link      string
}

// NewRequirement returns an internal requirement on the introduction topic
func NewRequirement() *Requirement {
	return &Requirement{Type: Internal, TopicName: "introduction"}
}

// NewInternalRequirement creates a requirement on another topic of the material
func NewInternalRequirement(topicName string, tutorials ...string) *Requirement {
	return &Requirement{Type: Internal, TopicName: topicName, Tutorials: tutorials}
}

// NewExternalRequirement creates a requirement on an outside resource
func NewExternalRequirement(title, link string) *Requirement {
	return &Requirement{Type: External, Title: title, Link: link}
}

// NewTitleOnlyRequirement creates a requirement described by its title alone
func NewTitleOnlyRequirement(title string) *Requirement {
	return &Requirement{Type: TitleOnly, Title: title}
}

// DecodeRequirement builds a fresh Requirement from a metadata mapping.
// Fields that do not belong to the decoded type are left zero.
func DecodeRequirement(meta map[string]any) (*Requirement, error) {
	r := &Requirement{}
	if err := r.LoadMap(meta); err != nil {
		return nil, err
	}
	return r, nil
}

// LoadMap updates r from a mapping produced by Export. The type decides
// which keys are read; fields belonging to the other types keep their
// current values. Nothing is changed when an error is returned.
func (r *Requirement) LoadMap(meta map[string]any) error {
	typ, err := requireString(meta, requirementRecord, "type")
	if err != nil {
		return err
	}
	reqType := RequirementType(typ)

	if reqType == Internal {
		topicName, err := requireString(meta, requirementRecord, "topic_name")
		if err != nil {
			return err
		}
		tutorials, hasTutorials := meta["tutorials"]
		var list []string
		if hasTutorials {
			if list, err = stringList(requirementRecord, "tutorials", tutorials); err != nil {
				return err
			}
		}

		r.Type = reqType
		r.TopicName = topicName
		if hasTutorials {
			r.Tutorials = list
		}
		return nil
	}

	title, err := requireString(meta, requirementRecord, "title")
	if err != nil {
		return err
	}
	var link string
	if reqType == External {
		if link, err = requireString(meta, requirementRecord, "link"); err != nil {
			return err
		}
	}

	r.Type = reqType
	r.Title = title
	if reqType == External {
		r.Link = link
	}
	return nil
}

// Export returns the requirement as an ordered mapping: type first, then
// topic_name and tutorials for internal requirements, or title and link
// otherwise. Empty tutorials are omitted.
func (r *Requirement) Export() *util.OrderedMap {
	m := util.NewOrderedMap()
	m.Set("type", string(r.Type))
	if r.Type == Internal {
		m.Set("topic_name", r.TopicName)
		if len(r.Tutorials) > 0 {
			tutorials := make([]string, len(r.Tutorials))
			copy(tutorials, r.Tutorials)
			m.Set("tutorials", tutorials)
		}
		return m
	}
	m.Set("title", r.Title)
	if r.Type == External {
		m.Set("link", r.Link)
	}
	return m
}

// Validate checks that the requirement type is a known one
func (r *Requirement) Validate() error {
	if !r.Type.IsKnown() {
		return fmt.Errorf("%w: %q", ErrUnknownRequirementType, r.Type)
	}
	return nil
}

// MarshalYAML encodes the requirement in its exported key order
func (r Requirement) MarshalYAML() (any, error) {
	return r.Export(), nil
}

// UnmarshalYAML decodes a requirement mapping into a fresh value
func (r *Requirement) UnmarshalYAML(node *yaml.Node) error {
	var meta map[string]any
	if err := node.Decode(&meta); err != nil {
		return err
	}
	decoded, err := DecodeRequirement(meta)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*r = *decoded
	return nil
}
