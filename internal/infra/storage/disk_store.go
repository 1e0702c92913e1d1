// Package storage implements durable file storage on the local filesystem.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"chatline/config"
	"chatline/internal/domain/entity"
	"chatline/internal/domain/service"
)

const dirPerm = 0o755

// diskStore implements the FileStore interface on top of a base directory,
// with one subdirectory per media category.
type diskStore struct {
	baseDir string
}

// NewDiskStore is the constructor for diskStore. It creates the category
// directories up front so writes never race directory creation.
func NewDiskStore(cfg *config.Config) (service.FileStore, error) {
	baseDir := cfg.Upload.BaseDir
	if baseDir == "" {
		return nil, errors.New("upload base directory must be provided")
	}

	for _, category := range entity.MediaCategories() {
		if err := os.MkdirAll(filepath.Join(baseDir, string(category)), dirPerm); err != nil {
			return nil, errors.Wrapf(err, "failed to create directory for category %q", category)
		}
	}

	return &diskStore{baseDir: baseDir}, nil
}

// Save writes the payload under a generated, collision-resistant name and
// returns that name. The declared filename only contributes its sanitized
// form as a readable suffix.
func (s *diskStore) Save(_ context.Context, category entity.MediaCategory, declaredName string, payload []byte) (string, error) {
	filename := generateFilename(declaredName)

	if err := writeFile(s.path(category, filename), payload); err != nil {
		return "", err
	}

	return filename, nil
}

// SaveAs writes the payload under an exact filename, replacing any previous
// content at that name.
func (s *diskStore) SaveAs(_ context.Context, category entity.MediaCategory, filename string, payload []byte) error {
	return writeFile(s.path(category, filename), payload)
}

// Remove deletes a stored file. A missing file is treated as already removed.
func (s *diskStore) Remove(_ context.Context, category entity.MediaCategory, filename string) error {
	if err := os.Remove(s.path(category, filename)); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove stored file")
	}

	return nil
}

func (s *diskStore) path(category entity.MediaCategory, filename string) string {
	// filepath.Base guards against traversal in filenames that did not come
	// from generateFilename.
	return filepath.Join(s.baseDir, string(category), filepath.Base(filename))
}

func writeFile(path string, payload []byte) error {
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return errors.Wrap(err, "failed to write file")
	}

	return nil
}

// generateFilename builds a stored name from a millisecond timestamp, a
// random disambiguator and the sanitized declared name. Two uploads of the
// same file in the same millisecond still get distinct names.
func generateFilename(declaredName string) string {
	return fmt.Sprintf("%d_%s_%s",
		time.Now().UnixMilli(),
		uuid.NewString()[:8],
		sanitizeFilename(declaredName),
	)
}

// sanitizeFilename strips every byte outside [A-Za-z0-9.-_] from the
// declared name. Path separators and control characters never survive.
func sanitizeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		}
	}

	if b.Len() == 0 {
		return "file"
	}

	return b.String()
}
