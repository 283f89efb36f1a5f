// Package file persists the space tree as a single document on the local
// filesystem.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/alcove/pkg/domain"
)

// DefaultPath is used when no document path is configured.
const DefaultPath = "space.json"

// Store implements ports.TreeStore using one file per store. The codec is
// chosen by extension: .yaml/.yml documents use YAML, everything else JSON.
type Store struct {
	Path string
}

// New creates a new Store for the given document path.
// An empty path falls back to DefaultPath.
func New(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{Path: path}
}

func (s *Store) yamlCodec() bool {
	ext := filepath.Ext(s.Path)
	return ext == ".yaml" || ext == ".yml"
}

// Save persists the tree atomically: it writes to a temp file in the same
// directory, fsyncs, and renames over the destination so a crash mid-write
// never leaves a partial document behind.
func (s *Store) Save(ctx context.Context, tree *domain.Space) error {
	var data []byte
	var err error
	if s.yamlCodec() {
		data, err = yaml.Marshal(tree)
	} else {
		data, err = json.MarshalIndent(tree, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal tree: %w", err)
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to ensure document directory: %w", err)
	}

	// Temp file must live in the same directory so the rename stays on one
	// filesystem.
	tmpFile, err := os.CreateTemp(dir, "tmp-"+filepath.Base(s.Path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// On Windows os.Rename fails if the destination exists, so clear it
	// first. The delete+rename window is acceptable for single-writer CLI
	// usage; what matters is never exposing a partially written document.
	if _, err := os.Stat(s.Path); err == nil {
		if err := os.Remove(s.Path); err != nil {
			return fmt.Errorf("failed to remove existing document for overwrite: %w", err)
		}
	}
	if err := os.Rename(tmpPath, s.Path); err != nil {
		return fmt.Errorf("failed to rename temp file into place: %w", err)
	}
	return nil
}

// Load reads and decodes the document.
// Returns domain.ErrTreeNotFound when the file does not exist and an error
// wrapping domain.ErrInvalidDocument when the content does not parse.
func (s *Store) Load(ctx context.Context) (*domain.Space, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrTreeNotFound
		}
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	var tree domain.Space
	if s.yamlCodec() {
		err = yaml.Unmarshal(data, &tree)
	} else {
		err = json.Unmarshal(data, &tree)
	}
	if err != nil {
		return nil, fmt.Errorf("document %s: %w: %w", s.Path, domain.ErrInvalidDocument, err)
	}
	return &tree, nil
}
