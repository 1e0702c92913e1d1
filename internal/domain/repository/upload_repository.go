package repository

import (
	"context"
	"errors"

	"chatline/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUploadNotFound is returned when an upload record is absent or not owned by the caller.
var ErrUploadNotFound = errors.New("upload not found")

// UploadRepository defines the operations on upload metadata records.
type UploadRepository interface {
	// Create persists a new upload record. The caller writes the file to
	// storage first; a record always points at a fully written file.
	Create(ctx context.Context, upload *entity.Upload) error

	// FindByIDAndAccountID retrieves a record by id, scoped to its owner.
	// A record owned by another account is reported as not found.
	FindByIDAndAccountID(ctx context.Context, id, accountID uuid.UUID) (*entity.Upload, error)

	// Delete removes an upload record by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByAccountID returns all records owned by the account, newest first.
	ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.Upload, error)
}
