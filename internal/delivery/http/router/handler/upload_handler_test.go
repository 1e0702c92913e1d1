package handler

import (
	"net/http"
	"testing"
	"time"

	"chatline/internal/domain/entity"
	domainerrors "chatline/internal/domain/errors"
	mocksusecase "chatline/internal/mocks/usecase"
	"chatline/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUploadHandler_Store(t *testing.T) {
	e := newTestEcho()
	mockUC := mocksusecase.NewMockUploadUsecase(t)
	h := NewUploadHandler(mockUC, newDiscardLogger())

	accountID := uuid.New()
	payload := []byte("fake image bytes")
	stored := &entity.Upload{
		ID:        uuid.New(),
		Filename:  "1700000000000_ab12cd34_cat.jpg",
		Path:      "/uploads/image/1700000000000_ab12cd34_cat.jpg",
		MimeType:  "image/jpeg",
		Category:  entity.CategoryImage,
		AccountID: accountID,
		CreatedAt: time.Now(),
	}
	mockUC.EXPECT().
		StoreUpload(mock.Anything, &usecase.StoreUploadInput{
			AccountID: accountID,
			Category:  entity.CategoryImage,
			Filename:  "cat.jpg",
			MimeType:  "image/jpeg",
			Payload:   payload,
		}).
		Return(stored, nil)

	c, rec := newMultipartContext(t, e, "/upload/image", "cat.jpg", "image/jpeg", payload)
	c.SetParamNames("category")
	c.SetParamValues("image")
	setIdentity(c, accountID)

	require.NoError(t, h.Store(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "/uploads/image/1700000000000_ab12cd34_cat.jpg")
}

func TestUploadHandler_Store_DefaultsToGeneric(t *testing.T) {
	e := newTestEcho()
	mockUC := mocksusecase.NewMockUploadUsecase(t)
	h := NewUploadHandler(mockUC, newDiscardLogger())

	accountID := uuid.New()
	payload := []byte("arbitrary bytes")
	mockUC.EXPECT().
		StoreUpload(mock.Anything, &usecase.StoreUploadInput{
			AccountID: accountID,
			Category:  entity.CategoryGeneric,
			Filename:  "notes.txt",
			MimeType:  "text/plain",
			Payload:   payload,
		}).
		Return(&entity.Upload{ID: uuid.New(), Category: entity.CategoryGeneric}, nil)

	// POST /upload without a category segment stores as generic.
	c, rec := newMultipartContext(t, e, "/upload", "notes.txt", "text/plain", payload)
	setIdentity(c, accountID)

	require.NoError(t, h.Store(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUploadHandler_Store_UnknownCategory(t *testing.T) {
	e := newTestEcho()
	mockUC := mocksusecase.NewMockUploadUsecase(t)
	h := NewUploadHandler(mockUC, newDiscardLogger())

	c, _ := newMultipartContext(t, e, "/upload/document", "cat.jpg", "image/jpeg", []byte("x"))
	c.SetParamNames("category")
	c.SetParamValues("document")
	setIdentity(c, uuid.New())

	err := h.Store(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	mockUC.AssertNotCalled(t, "StoreUpload", mock.Anything, mock.Anything)
}

func TestUploadHandler_Store_MissingFile(t *testing.T) {
	e := newTestEcho()
	mockUC := mocksusecase.NewMockUploadUsecase(t)
	h := NewUploadHandler(mockUC, newDiscardLogger())

	c, _ := newJSONContext(t, e, http.MethodPost, "/upload/image", "")
	c.SetParamNames("category")
	c.SetParamValues("image")
	setIdentity(c, uuid.New())

	err := h.Store(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNoFileProvided))
}

func TestUploadHandler_StoreProfileImage(t *testing.T) {
	e := newTestEcho()
	mockUC := mocksusecase.NewMockUploadUsecase(t)
	h := NewUploadHandler(mockUC, newDiscardLogger())

	accountID := uuid.New()
	payload := []byte("avatar bytes")
	mockUC.EXPECT().
		StoreProfileImage(mock.Anything, &usecase.StoreProfileImageInput{
			AccountID: accountID,
			Filename:  "selfie.png",
			MimeType:  "image/png",
			Payload:   payload,
		}).
		Return("/uploads/image/avatar_"+accountID.String()+".png", nil)

	c, rec := newMultipartContext(t, e, "/upload/profile-image", "selfie.png", "image/png", payload)
	setIdentity(c, accountID)

	require.NoError(t, h.StoreProfileImage(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "avatar_"+accountID.String()+".png")
}

func TestUploadHandler_List(t *testing.T) {
	e := newTestEcho()
	mockUC := mocksusecase.NewMockUploadUsecase(t)
	h := NewUploadHandler(mockUC, newDiscardLogger())

	accountID := uuid.New()
	mockUC.EXPECT().
		ListUploads(mock.Anything, accountID).
		Return([]*entity.Upload{
			{ID: uuid.New(), Filename: "b.jpg", Category: entity.CategoryImage, AccountID: accountID},
			{ID: uuid.New(), Filename: "a.jpg", Category: entity.CategoryImage, AccountID: accountID},
		}, nil)

	c, rec := newJSONContext(t, e, http.MethodGet, "/uploads", "")
	setIdentity(c, accountID)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "b.jpg")
	assert.Contains(t, rec.Body.String(), "a.jpg")
}

func TestUploadHandler_Delete(t *testing.T) {
	e := newTestEcho()
	mockUC := mocksusecase.NewMockUploadUsecase(t)
	h := NewUploadHandler(mockUC, newDiscardLogger())

	accountID := uuid.New()
	uploadID := uuid.New()
	mockUC.EXPECT().DeleteUpload(mock.Anything, accountID, uploadID).Return(nil)

	c, rec := newJSONContext(t, e, http.MethodDelete, "/upload/"+uploadID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(uploadID.String())
	setIdentity(c, accountID)

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUploadHandler_Delete_InvalidID(t *testing.T) {
	e := newTestEcho()
	mockUC := mocksusecase.NewMockUploadUsecase(t)
	h := NewUploadHandler(mockUC, newDiscardLogger())

	c, _ := newJSONContext(t, e, http.MethodDelete, "/upload/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	setIdentity(c, uuid.New())

	err := h.Delete(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	mockUC.AssertNotCalled(t, "DeleteUpload", mock.Anything, mock.Anything, mock.Anything)
}
