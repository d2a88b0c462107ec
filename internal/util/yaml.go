package util

import (
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const documentStart = "---\n"

// LoadYAML parses a YAML file into generic content: mappings become
// map[string]any, sequences []any, scalars their natural Go type.
// An empty file yields nil content.
func LoadYAML(path string) (any, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var content any
	if err := yaml.NewDecoder(file).Decode(&content); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	log.Debug().Str("path", path).Msg("Loaded YAML")
	return content, nil
}

// LoadYAMLInto loads a YAML file into the provided structure
func LoadYAMLInto(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

// SaveYAML writes content to path as a block-style YAML document with a
// leading "---" marker and two-space indentation. Non-ASCII text is written
// as-is in UTF-8.
func SaveYAML(path string, content any) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	if _, err = io.WriteString(file, documentStart); err != nil {
		return err
	}

	enc := yaml.NewEncoder(file)
	enc.SetIndent(2)
	if err = enc.Encode(content); err != nil {
		return err
	}
	if err = enc.Close(); err != nil {
		return err
	}

	log.Debug().Str("path", path).Msg("Saved YAML")
	return nil
}
