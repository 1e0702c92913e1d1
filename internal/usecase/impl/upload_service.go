package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"chatline/config"
	deliverycontext "chatline/internal/delivery/context"
	"chatline/internal/domain/entity"
	domainerrors "chatline/internal/domain/errors"
	"chatline/internal/domain/repository"
	"chatline/internal/domain/service"
	"chatline/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	uploadRepo  repository.UploadRepository
	accountRepo repository.AccountRepository
	fileStore   service.FileStore
	maxBytes    int64
	logger      *slog.Logger
}

// UploadServiceParams holds dependencies for uploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	UploadRepo  repository.UploadRepository
	AccountRepo repository.AccountRepository
	FileStore   service.FileStore
	Config      *config.Config
	Logger      *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	return &uploadService{
		uploadRepo:  params.UploadRepo,
		accountRepo: params.AccountRepo,
		fileStore:   params.FileStore,
		maxBytes:    params.Config.Upload.MaxBytes,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StoreUpload validates the payload, writes the file and records its
// metadata, strictly in that order. A failed validation writes nothing;
// a failed record removes the freshly written file.
func (srv *uploadService) StoreUpload(ctx context.Context, input *usecase.StoreUploadInput) (*entity.Upload, error) {
	if err := srv.checkPayload(input.Payload); err != nil {
		return nil, err
	}
	if err := validateUpload(input.Category, input.Filename, input.MimeType); err != nil {
		return nil, err
	}

	filename, err := srv.fileStore.Save(ctx, input.Category, input.Filename, input.Payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store uploaded file")
	}

	upload := &entity.Upload{
		Filename:  filename,
		Path:      retrievalPath(input.Category, filename),
		MimeType:  input.MimeType,
		Category:  input.Category,
		AccountID: input.AccountID,
	}

	if err := srv.uploadRepo.Create(ctx, upload); err != nil {
		if removeErr := srv.fileStore.Remove(ctx, input.Category, filename); removeErr != nil {
			srv.log(ctx).Warn("Failed to remove orphaned file", slog.String("filename", filename), slog.Any("error", removeErr))
		}

		return nil, errors.Wrap(err, "failed to record upload")
	}

	srv.log(ctx).Info("Stored upload",
		slog.Any("uploadID", upload.ID),
		slog.Any("accountID", input.AccountID),
		slog.String("category", string(input.Category)),
	)

	return upload, nil
}

// StoreProfileImage writes the avatar under a name derived from the account
// ID, so a new avatar silently replaces the previous one with no orphaned
// file left behind.
func (srv *uploadService) StoreProfileImage(ctx context.Context, input *usecase.StoreProfileImageInput) (string, error) {
	if err := srv.checkPayload(input.Payload); err != nil {
		return "", err
	}
	if err := validateUpload(entity.CategoryImage, input.Filename, input.MimeType); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("avatar_%s%s", input.AccountID, strings.ToLower(filepath.Ext(input.Filename)))

	if err := srv.fileStore.SaveAs(ctx, entity.CategoryImage, filename, input.Payload); err != nil {
		return "", errors.Wrap(err, "failed to store profile image")
	}

	imagePath := retrievalPath(entity.CategoryImage, filename)

	if err := srv.accountRepo.UpdateProfileImage(ctx, input.AccountID, imagePath); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return "", domainerrors.ErrNotFound
		}

		return "", errors.Wrap(err, "failed to update profile image reference")
	}

	return imagePath, nil
}

// DeleteUpload removes the metadata record and then the stored file. The
// record is authoritative: once it is gone the delete has succeeded, and a
// failing disk removal is only logged.
func (srv *uploadService) DeleteUpload(ctx context.Context, accountID, uploadID uuid.UUID) error {
	upload, err := srv.uploadRepo.FindByIDAndAccountID(ctx, uploadID, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrUploadNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to load upload for deletion")
	}

	if err := srv.uploadRepo.Delete(ctx, upload.ID); err != nil {
		if errors.Is(err, repository.ErrUploadNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete upload record")
	}

	if err := srv.fileStore.Remove(ctx, upload.Category, upload.Filename); err != nil {
		srv.log(ctx).Warn("Failed to remove stored file after record deletion",
			slog.Any("uploadID", upload.ID),
			slog.String("filename", upload.Filename),
			slog.Any("error", err),
		)
	}

	return nil
}

// ListUploads returns the account's uploads, newest first.
func (srv *uploadService) ListUploads(ctx context.Context, accountID uuid.UUID) ([]*entity.Upload, error) {
	uploads, err := srv.uploadRepo.ListByAccountID(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list uploads")
	}

	return uploads, nil
}

func (srv *uploadService) checkPayload(payload []byte) error {
	if len(payload) == 0 {
		return domainerrors.ErrNoFileProvided
	}
	if srv.maxBytes > 0 && int64(len(payload)) > srv.maxBytes {
		return domainerrors.ErrPayloadTooLarge
	}

	return nil
}

// retrievalPath builds the public path a stored file is served from.
func retrievalPath(category entity.MediaCategory, filename string) string {
	return path.Join("/uploads", string(category), filename)
}
