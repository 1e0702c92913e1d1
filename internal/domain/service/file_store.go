package service

import (
	"context"

	"chatline/internal/domain/entity"
)

// FileStore defines the interface for durable binary payload storage.
// Files live under one directory per media category; the store generates
// collision-resistant names and never trusts the declared filename.
type FileStore interface {
	// Save writes the payload under the category's directory and returns the
	// generated filename. The write is complete when Save returns, so callers
	// may record metadata immediately afterwards.
	Save(ctx context.Context, category entity.MediaCategory, declaredName string, payload []byte) (string, error)

	// SaveAs writes the payload under an exact filename, overwriting any
	// previous file. Used for the one-per-account profile image.
	SaveAs(ctx context.Context, category entity.MediaCategory, filename string, payload []byte) error

	// Remove deletes a stored file. Removing a missing file is not an error.
	Remove(ctx context.Context, category entity.MediaCategory, filename string) error
}
