package uploader

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// YAMLContentType is sent with every published metadata file
const YAMLContentType = "application/yaml"

// PublishResult counts what PublishDir did
type PublishResult struct {
	Uploaded []string
	Skipped  []string
	Failed   map[string]error
}

// IsYAML reports whether path has a YAML extension
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Key builds the remote key for a path relative to the published directory
func Key(prefix, relPath string) string {
	key := filepath.ToSlash(relPath)
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return key
	}
	return prefix + "/" + key
}

// PublishDir uploads every YAML file below dir. Per-file failures are
// collected in the result; only a failure to walk dir is returned as error.
func PublishDir(ctx context.Context, ul Uploader, dir string, opts PublishOptions) (*PublishResult, error) {
	result := &PublishResult{Failed: make(map[string]error)}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsYAML(path) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			result.Failed[path] = err
			return nil
		}
		key := Key(opts.Prefix, relPath)

		if opts.DryRun {
			log.Info().Str("key", key).Msg("Would upload")
			result.Uploaded = append(result.Uploaded, key)
			return nil
		}

		if !opts.Force {
			exists, err := ul.Exists(ctx, key)
			if err != nil {
				result.Failed[key] = err
				return nil
			}
			if exists {
				log.Debug().Str("key", key).Msg("Already published")
				result.Skipped = append(result.Skipped, key)
				return nil
			}
		}

		if err := uploadFile(ctx, ul, path, key); err != nil {
			result.Failed[key] = err
			return nil
		}
		log.Info().Str("key", key).Str("url", ul.GetURL(key)).Msg("Published")
		result.Uploaded = append(result.Uploaded, key)
		return nil
	})
	if err != nil {
		return result, fmt.Errorf("failed to walk %s: %w", dir, err)
	}
	return result, nil
}

func uploadFile(ctx context.Context, ul Uploader, path, key string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return ul.Upload(ctx, key, file, YAMLContentType)
}
