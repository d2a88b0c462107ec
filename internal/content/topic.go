package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"go.lorenzomilicia.dev/training-kit/internal/training"
	"go.lorenzomilicia.dev/training-kit/internal/util"
)

var (
	// ErrTopicExists is returned when creating a topic whose slug is taken
	ErrTopicExists = errors.New("topic already exists")
	// ErrInvalidSlug is returned for slugs that Slugify would not produce
	ErrInvalidSlug = errors.New("invalid topic slug")
)

// TopicMetadata holds a topic's information, its prerequisites and citations
type TopicMetadata struct {
	Name         string                 `yaml:"name"`
	Title        string                 `yaml:"title"`
	Summary      string                 `yaml:"summary"`
	Requirements []training.Requirement `yaml:"requirements,omitempty"`
	References   []training.Reference   `yaml:"references,omitempty"`
}

// Manager handles topic metadata stored under a content directory
type Manager struct {
	contentDir string
}

// NewManager creates a new content manager
func NewManager(contentDir string) *Manager {
	return &Manager{contentDir: contentDir}
}

// ContentDir returns the root content directory
func (m *Manager) ContentDir() string {
	return m.contentDir
}

// TopicsDir returns the topics directory path
func (m *Manager) TopicsDir() string {
	return filepath.Join(m.contentDir, "topics")
}

// TopicDir returns the directory for a specific topic
func (m *Manager) TopicDir(slug string) string {
	return filepath.Join(m.TopicsDir(), slug)
}

// TopicMetaPath returns the metadata file path for a topic
func (m *Manager) TopicMetaPath(slug string) string {
	return filepath.Join(m.TopicDir(slug), "metadata.yaml")
}

// Slugify converts a title to a URL-friendly slug
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = strings.ReplaceAll(slug, " ", "-")
	var result strings.Builder
	for _, r := range slug {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// ValidateSlug rejects empty slugs and anything Slugify would change,
// which keeps slugs from escaping the topics directory.
func ValidateSlug(slug string) error {
	if slug == "" || Slugify(slug) != slug {
		return fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}
	return nil
}

// CreateTopic creates a topic directory and its metadata file
func (m *Manager) CreateTopic(title, summary string) (*TopicMetadata, error) {
	slug := Slugify(title)
	if slug == "" {
		return nil, fmt.Errorf("invalid title: cannot create slug")
	}

	topicDir := m.TopicDir(slug)
	if _, err := os.Stat(topicDir); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrTopicExists, slug)
	}

	if err := os.MkdirAll(topicDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create topic directory: %w", err)
	}

	meta := &TopicMetadata{
		Name:    slug,
		Title:   title,
		Summary: summary,
	}
	if err := m.SaveTopic(meta); err != nil {
		return nil, err
	}

	log.Info().Str("slug", slug).Msg("Created topic")
	return meta, nil
}

// GetTopic retrieves a topic's metadata. The directory name is the topic name.
func (m *Manager) GetTopic(slug string) (*TopicMetadata, error) {
	if err := ValidateSlug(slug); err != nil {
		return nil, err
	}
	var meta TopicMetadata
	if err := util.LoadYAMLInto(m.TopicMetaPath(slug), &meta); err != nil {
		return nil, fmt.Errorf("failed to load topic %s: %w", slug, err)
	}
	meta.Name = slug
	return &meta, nil
}

// SaveTopic writes a topic's metadata, keyed by its name
func (m *Manager) SaveTopic(meta *TopicMetadata) error {
	if err := ValidateSlug(meta.Name); err != nil {
		return err
	}
	if err := util.SaveYAML(m.TopicMetaPath(meta.Name), meta); err != nil {
		return fmt.Errorf("failed to save topic %s: %w", meta.Name, err)
	}
	log.Debug().Str("slug", meta.Name).Msg("Saved topic metadata")
	return nil
}

// DeleteTopic deletes a topic and all its files
func (m *Manager) DeleteTopic(slug string) error {
	if err := ValidateSlug(slug); err != nil {
		return err
	}
	if _, err := os.Stat(m.TopicDir(slug)); err != nil {
		return fmt.Errorf("failed to delete topic %s: %w", slug, err)
	}
	if err := os.RemoveAll(m.TopicDir(slug)); err != nil {
		return fmt.Errorf("failed to remove topic: %w", err)
	}
	return nil
}

// ListTopics returns all loadable topics sorted by title. Topics whose
// metadata fails to load are logged and skipped.
func (m *Manager) ListTopics() ([]*TopicMetadata, error) {
	topics, failures, err := m.ScanTopics()
	if err != nil {
		return nil, err
	}
	for _, failure := range failures {
		log.Warn().Err(failure).Msg("Skipping invalid topic")
	}
	return topics, nil
}

// ScanTopics loads every topic directory. Loaded topics are sorted by title;
// load failures are returned alongside them instead of being skipped.
func (m *Manager) ScanTopics() ([]*TopicMetadata, []error, error) {
	entries, err := os.ReadDir(m.TopicsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return []*TopicMetadata{}, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to read topics directory: %w", err)
	}

	topics := []*TopicMetadata{}
	var failures []error
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := m.GetTopic(entry.Name())
		if err != nil {
			failures = append(failures, err)
			continue
		}
		topics = append(topics, meta)
	}

	sort.Slice(topics, func(i, j int) bool {
		if topics[i].Title != topics[j].Title {
			return topics[i].Title < topics[j].Title
		}
		return topics[i].Name < topics[j].Name
	})
	return topics, failures, nil
}

// AddRequirement appends a requirement to a topic
func (m *Manager) AddRequirement(slug string, req *training.Requirement) error {
	meta, err := m.GetTopic(slug)
	if err != nil {
		return err
	}
	meta.Requirements = append(meta.Requirements, *req)
	return m.SaveTopic(meta)
}

// AddReferences appends references to a topic
func (m *Manager) AddReferences(slug string, refs ...*training.Reference) error {
	meta, err := m.GetTopic(slug)
	if err != nil {
		return err
	}
	for _, ref := range refs {
		meta.References = append(meta.References, *ref)
	}
	return m.SaveTopic(meta)
}

// CheckTopic validates the requirement types of a topic. Internal
// requirements must point at an existing topic.
func (m *Manager) CheckTopic(meta *TopicMetadata) []error {
	var problems []error
	for i := range meta.Requirements {
		req := &meta.Requirements[i]
		if err := req.Validate(); err != nil {
			problems = append(problems, fmt.Errorf("%s: requirement %d: %w", meta.Name, i+1, err))
			continue
		}
		if req.Type == training.Internal {
			if err := ValidateSlug(req.TopicName); err != nil {
				problems = append(problems, fmt.Errorf("%s: requirement %d: %w", meta.Name, i+1, err))
				continue
			}
			if _, err := os.Stat(m.TopicMetaPath(req.TopicName)); err != nil {
				problems = append(problems, fmt.Errorf("%s: requirement %d: unknown topic %q", meta.Name, i+1, req.TopicName))
			}
		}
	}
	return problems
}
