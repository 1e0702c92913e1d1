// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"chatline/internal/domain/entity"
	domainerrors "chatline/internal/domain/errors"
	"chatline/internal/domain/repository"
	"chatline/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// uploadRepository implements the domain.UploadRepository interface.
type uploadRepository struct {
	db *gorm.DB
}

// NewUploadRepository is the constructor for uploadRepository.
func NewUploadRepository(db *gorm.DB) repository.UploadRepository {
	return &uploadRepository{db: db}
}

// Create persists a new upload record.
func (repo *uploadRepository) Create(ctx context.Context, upload *entity.Upload) error {
	uploadM := fromUploadDomain(upload)

	if err := repo.db.WithContext(ctx).Create(uploadM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid account reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create upload record")
	}

	// Update the entity with generated values
	upload.ID = uploadM.ID
	upload.CreatedAt = uploadM.CreatedAt

	return nil
}

// FindByIDAndAccountID retrieves an upload record scoped to its owner.
// A record owned by a different account is indistinguishable from a missing one.
func (repo *uploadRepository) FindByIDAndAccountID(ctx context.Context, id, accountID uuid.UUID) (*entity.Upload, error) {
	var uploadM model.UploadModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		First(&uploadM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUploadNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toUploadDomain(&uploadM), nil
}

// Delete removes an upload record by its ID.
func (repo *uploadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UploadModel{})

	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrUploadNotFound
	}

	return nil
}

// ListByAccountID returns all upload records owned by the account, newest first.
func (repo *uploadRepository) ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.Upload, error) {
	var uploadModels []*model.UploadModel

	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&uploadModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	uploads := make([]*entity.Upload, 0, len(uploadModels))
	for _, uploadM := range uploadModels {
		uploads = append(uploads, toUploadDomain(uploadM))
	}

	return uploads, nil
}

// --- Mapper Functions ---

// toUploadDomain converts a GORM UploadModel to a domain Upload entity.
func toUploadDomain(data *model.UploadModel) *entity.Upload {
	if data == nil {
		return nil
	}

	return &entity.Upload{
		ID:        data.ID,
		Filename:  data.Filename,
		Path:      data.Path,
		MimeType:  data.MimeType,
		Category:  entity.MediaCategory(data.Category),
		AccountID: data.AccountID,
		CreatedAt: data.CreatedAt,
	}
}

// fromUploadDomain converts a domain Upload entity to a GORM UploadModel.
func fromUploadDomain(data *entity.Upload) *model.UploadModel {
	if data == nil {
		return nil
	}

	return &model.UploadModel{
		ID:        data.ID,
		Filename:  data.Filename,
		Path:      data.Path,
		MimeType:  data.MimeType,
		Category:  string(data.Category),
		AccountID: data.AccountID,
		CreatedAt: data.CreatedAt,
	}
}
