package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/aretw0/fsmd/pkg/domain"
	"github.com/aretw0/fsmd/pkg/schema"
)

// Store implements ports.AutomatonStore using the local filesystem.
// Artifact names are file paths, resolved against BasePath when relative.
// The encoding is chosen from the file extension.
type Store struct {
	BasePath      string
	DefaultFormat schema.Format
}

// Option configures a Store.
type Option func(*Store)

// WithDefaultFormat sets the encoding used for names without a known extension.
func WithDefaultFormat(f schema.Format) Option {
	return func(s *Store) {
		s.DefaultFormat = f
	}
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to the working directory.
func New(basePath string, opts ...Option) *Store {
	if basePath == "" {
		basePath = "."
	}
	s := &Store{BasePath: basePath, DefaultFormat: schema.FormatJSON}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.BasePath, name)
}

// Save encodes the snapshot and writes it atomically.
// It writes to a temporary file first, syncs via fsync, and then renames it to the destination,
// so a failure at any step leaves the previous artifact untouched.
func (s *Store) Save(ctx context.Context, name string, snap *schema.Snapshot) error {
	if name == "" {
		return fmt.Errorf("artifact name cannot be empty")
	}

	data, err := schema.Encode(schema.FormatFor(name, s.DefaultFormat), snap)
	if err != nil {
		return err
	}

	destPath := s.path(name)
	dir := filepath.Dir(destPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to ensure artifact directory: %w", err)
	}

	// 1. Create Temp File
	// Same directory as the destination so the rename stays on one filesystem.
	tmpFile, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(destPath)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	// 2. Write Data
	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	// 3. Fsync
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}

	// 4. Close File (cannot rename open file on Windows)
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// 5. Atomic Rename
	if err := os.Rename(tmpPath, destPath); err != nil {
		// On Windows, os.Rename fails if dest exists. Retry after removing it.
		if _, statErr := os.Stat(destPath); statErr != nil {
			return fmt.Errorf("failed to rename temp file to artifact: %w", err)
		}
		if err := os.Remove(destPath); err != nil {
			return fmt.Errorf("failed to remove existing artifact for overwrite: %w", err)
		}
		if err := os.Rename(tmpPath, destPath); err != nil {
			return fmt.Errorf("failed to rename temp file to artifact: %w", err)
		}
	}

	return nil
}

// Load reads and decodes the artifact. The snapshot is not validated here.
func (s *Store) Load(ctx context.Context, name string) (*schema.Snapshot, error) {
	if name == "" {
		return nil, fmt.Errorf("artifact name cannot be empty")
	}

	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, domain.ErrArtifactNotFound)
		}
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}

	return schema.Decode(schema.FormatFor(name, s.DefaultFormat), data)
}

// Delete removes the artifact file.
func (s *Store) Delete(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("artifact name cannot be empty")
	}

	err := os.Remove(s.path(name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete artifact: %w", err)
	}
	return nil
}

// List returns the artifact files directly under BasePath, recognized by extension.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext == "" {
			continue
		}
		if _, err := schema.ParseFormat(ext[1:]); err == nil {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
