package usecase

import (
	"context"

	"chatline/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// StoreUploadInput defines the data required to store one uploaded file.
type StoreUploadInput struct {
	AccountID uuid.UUID
	Category  entity.MediaCategory
	Filename  string // Declared filename, untrusted.
	MimeType  string // Declared content type, untrusted.
	Payload   []byte
}

// StoreProfileImageInput defines the data required to set an account's profile image.
type StoreProfileImageInput struct {
	AccountID uuid.UUID
	Filename  string
	MimeType  string
	Payload   []byte
}

// UploadUsecase defines the interface for upload pipeline business operations.
type UploadUsecase interface {
	// StoreUpload validates, persists and records one file. Validation is
	// fully synchronous; no file is written for a payload that fails it.
	StoreUpload(ctx context.Context, input *StoreUploadInput) (*entity.Upload, error)

	// StoreProfileImage stores the account's avatar under a deterministic
	// name, replacing any previous one, and returns its retrieval path.
	StoreProfileImage(ctx context.Context, input *StoreProfileImageInput) (string, error)

	// DeleteUpload removes an owned upload record and its stored file.
	DeleteUpload(ctx context.Context, accountID, uploadID uuid.UUID) error

	// ListUploads returns the account's uploads, newest first.
	ListUploads(ctx context.Context, accountID uuid.UUID) ([]*entity.Upload, error)
}
