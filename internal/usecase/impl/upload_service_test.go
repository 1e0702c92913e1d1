package impl

import (
	"context"
	"fmt"
	"testing"

	"chatline/internal/domain/entity"
	domainerrors "chatline/internal/domain/errors"
	"chatline/internal/domain/repository"
	mockRepo "chatline/internal/mocks/repository"
	mockService "chatline/internal/mocks/service"
	"chatline/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type uploadServiceFixture struct {
	uploadRepo  *mockRepo.MockUploadRepository
	accountRepo *mockRepo.MockAccountRepository
	fileStore   *mockService.MockFileStore
	service     usecase.UploadUsecase
}

func newUploadServiceFixture(t *testing.T, maxBytes int64) *uploadServiceFixture {
	t.Helper()

	f := &uploadServiceFixture{
		uploadRepo:  mockRepo.NewMockUploadRepository(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
		fileStore:   mockService.NewMockFileStore(t),
	}
	f.service = NewUploadService(UploadServiceParams{
		UploadRepo:  f.uploadRepo,
		AccountRepo: f.accountRepo,
		FileStore:   f.fileStore,
		Config:      newTestUploadConfig(maxBytes),
		Logger:      newDiscardLogger(),
	})

	return f
}

func TestUploadService_StoreUpload_Success(t *testing.T) {
	f := newUploadServiceFixture(t, 1<<20)
	ctx := context.Background()

	accountID := uuid.New()
	payload := []byte("fake image bytes")
	input := &usecase.StoreUploadInput{
		AccountID: accountID,
		Category:  entity.CategoryImage,
		Filename:  "photo.jpg",
		MimeType:  "image/jpeg",
		Payload:   payload,
	}

	f.fileStore.EXPECT().
		Save(ctx, entity.CategoryImage, "photo.jpg", payload).
		Return("1724900000000_ab12cd34_photo.jpg", nil)
	f.uploadRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Upload")).
		RunAndReturn(func(_ context.Context, upload *entity.Upload) error {
			upload.ID = uuid.New()
			return nil
		})

	upload, err := f.service.StoreUpload(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "1724900000000_ab12cd34_photo.jpg", upload.Filename)
	assert.Equal(t, "/uploads/image/1724900000000_ab12cd34_photo.jpg", upload.Path)
	assert.Equal(t, entity.CategoryImage, upload.Category)
	assert.Equal(t, accountID, upload.AccountID)
}

func TestUploadService_StoreUpload_EmptyPayload(t *testing.T) {
	f := newUploadServiceFixture(t, 1<<20)

	upload, err := f.service.StoreUpload(context.Background(), &usecase.StoreUploadInput{
		AccountID: uuid.New(),
		Category:  entity.CategoryImage,
		Filename:  "photo.jpg",
		MimeType:  "image/jpeg",
	})

	assert.Nil(t, upload)
	assert.ErrorIs(t, err, domainerrors.ErrNoFileProvided)
}

func TestUploadService_StoreUpload_PayloadTooLarge(t *testing.T) {
	f := newUploadServiceFixture(t, 8)

	upload, err := f.service.StoreUpload(context.Background(), &usecase.StoreUploadInput{
		AccountID: uuid.New(),
		Category:  entity.CategoryImage,
		Filename:  "photo.jpg",
		MimeType:  "image/jpeg",
		Payload:   []byte("more than eight bytes"),
	})

	assert.Nil(t, upload)
	assert.ErrorIs(t, err, domainerrors.ErrPayloadTooLarge)
}

func TestUploadService_StoreUpload_RejectedBeforeWrite(t *testing.T) {
	f := newUploadServiceFixture(t, 1<<20)

	upload, err := f.service.StoreUpload(context.Background(), &usecase.StoreUploadInput{
		AccountID: uuid.New(),
		Category:  entity.CategoryImage,
		Filename:  "script.exe",
		MimeType:  "application/octet-stream",
		Payload:   []byte("payload"),
	})

	assert.Nil(t, upload)
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedMediaType)
	f.fileStore.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadService_StoreUpload_RecordFailureRemovesFile(t *testing.T) {
	f := newUploadServiceFixture(t, 1<<20)
	ctx := context.Background()
	payload := []byte("fake image bytes")

	f.fileStore.EXPECT().
		Save(ctx, entity.CategoryImage, "photo.jpg", payload).
		Return("stored_photo.jpg", nil)
	f.uploadRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Upload")).
		Return(domainerrors.NewDatabaseExecuteError(assert.AnError, "failed to create upload record"))
	f.fileStore.EXPECT().
		Remove(ctx, entity.CategoryImage, "stored_photo.jpg").
		Return(nil)

	upload, err := f.service.StoreUpload(ctx, &usecase.StoreUploadInput{
		AccountID: uuid.New(),
		Category:  entity.CategoryImage,
		Filename:  "photo.jpg",
		MimeType:  "image/jpeg",
		Payload:   payload,
	})

	assert.Nil(t, upload)
	assert.Error(t, err)
}

func TestUploadService_StoreProfileImage_Success(t *testing.T) {
	f := newUploadServiceFixture(t, 1<<20)
	ctx := context.Background()

	accountID := uuid.New()
	payload := []byte("fake avatar bytes")
	wantFilename := fmt.Sprintf("avatar_%s.png", accountID)
	wantPath := "/uploads/image/" + wantFilename

	f.fileStore.EXPECT().SaveAs(ctx, entity.CategoryImage, wantFilename, payload).Return(nil)
	f.accountRepo.EXPECT().UpdateProfileImage(ctx, accountID, wantPath).Return(nil)

	imagePath, err := f.service.StoreProfileImage(ctx, &usecase.StoreProfileImageInput{
		AccountID: accountID,
		Filename:  "Selfie.PNG",
		MimeType:  "image/png",
		Payload:   payload,
	})

	require.NoError(t, err)
	assert.Equal(t, wantPath, imagePath)
}

func TestUploadService_StoreProfileImage_RejectsNonImage(t *testing.T) {
	f := newUploadServiceFixture(t, 1<<20)

	imagePath, err := f.service.StoreProfileImage(context.Background(), &usecase.StoreProfileImageInput{
		AccountID: uuid.New(),
		Filename:  "clip.mp4",
		MimeType:  "video/mp4",
		Payload:   []byte("payload"),
	})

	assert.Empty(t, imagePath)
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedMediaType)
}

func TestUploadService_DeleteUpload_Success(t *testing.T) {
	f := newUploadServiceFixture(t, 1<<20)
	ctx := context.Background()

	accountID := uuid.New()
	upload := &entity.Upload{
		ID:        uuid.New(),
		Filename:  "stored_song.mp3",
		Category:  entity.CategoryAudio,
		AccountID: accountID,
	}

	f.uploadRepo.EXPECT().FindByIDAndAccountID(ctx, upload.ID, accountID).Return(upload, nil)
	f.uploadRepo.EXPECT().Delete(ctx, upload.ID).Return(nil)
	f.fileStore.EXPECT().Remove(ctx, entity.CategoryAudio, "stored_song.mp3").Return(nil)

	assert.NoError(t, f.service.DeleteUpload(ctx, accountID, upload.ID))
}

func TestUploadService_DeleteUpload_ToleratesDiskFailure(t *testing.T) {
	f := newUploadServiceFixture(t, 1<<20)
	ctx := context.Background()

	accountID := uuid.New()
	upload := &entity.Upload{
		ID:        uuid.New(),
		Filename:  "stored_song.mp3",
		Category:  entity.CategoryAudio,
		AccountID: accountID,
	}

	f.uploadRepo.EXPECT().FindByIDAndAccountID(ctx, upload.ID, accountID).Return(upload, nil)
	f.uploadRepo.EXPECT().Delete(ctx, upload.ID).Return(nil)
	f.fileStore.EXPECT().Remove(ctx, entity.CategoryAudio, "stored_song.mp3").Return(assert.AnError)

	// The record is gone, so the delete still succeeds.
	assert.NoError(t, f.service.DeleteUpload(ctx, accountID, upload.ID))
}

func TestUploadService_DeleteUpload_NotOwned(t *testing.T) {
	f := newUploadServiceFixture(t, 1<<20)
	ctx := context.Background()

	accountID := uuid.New()
	uploadID := uuid.New()

	f.uploadRepo.EXPECT().
		FindByIDAndAccountID(ctx, uploadID, accountID).
		Return(nil, repository.ErrUploadNotFound)

	err := f.service.DeleteUpload(ctx, accountID, uploadID)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUploadService_ListUploads(t *testing.T) {
	f := newUploadServiceFixture(t, 1<<20)
	ctx := context.Background()

	accountID := uuid.New()
	uploads := []*entity.Upload{
		{ID: uuid.New(), AccountID: accountID},
		{ID: uuid.New(), AccountID: accountID},
	}

	f.uploadRepo.EXPECT().ListByAccountID(ctx, accountID).Return(uploads, nil)

	got, err := f.service.ListUploads(ctx, accountID)

	require.NoError(t, err)
	assert.Equal(t, uploads, got)
}
