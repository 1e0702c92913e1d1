package handler

import (
	"io"
	"log/slog"
	"net/http"

	"chatline/internal/delivery/http/middleware"
	"chatline/internal/delivery/http/response"
	"chatline/internal/domain/entity"
	domainerrors "chatline/internal/domain/errors"
	"chatline/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// uploadFormField is the multipart form field carrying the file.
const uploadFormField = "file"

// UploadHandler holds dependencies for upload-related handlers.
type UploadHandler struct {
	uc     usecase.UploadUsecase
	logger *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(uc usecase.UploadUsecase, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		uc:     uc,
		logger: logger,
	}
}

// Store handles a categorized file upload.
func (h *UploadHandler) Store(c echo.Context) error {
	identity, err := middleware.IdentityFromContext(c)
	if err != nil {
		return err
	}

	category := entity.MediaCategory(c.Param("category"))
	if category == "" {
		category = entity.CategoryGeneric
	}
	if !category.Valid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown media category")
	}

	filename, mimeType, payload, err := readFormFile(c)
	if err != nil {
		return err
	}

	upload, err := h.uc.StoreUpload(c.Request().Context(), &usecase.StoreUploadInput{
		AccountID: identity.AccountID,
		Category:  category,
		Filename:  filename,
		MimeType:  mimeType,
		Payload:   payload,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, upload, "File uploaded successfully")
}

// StoreProfileImage handles replacing the caller's avatar.
func (h *UploadHandler) StoreProfileImage(c echo.Context) error {
	identity, err := middleware.IdentityFromContext(c)
	if err != nil {
		return err
	}

	filename, mimeType, payload, err := readFormFile(c)
	if err != nil {
		return err
	}

	imagePath, err := h.uc.StoreProfileImage(c.Request().Context(), &usecase.StoreProfileImageInput{
		AccountID: identity.AccountID,
		Filename:  filename,
		MimeType:  mimeType,
		Payload:   payload,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"profile_image": imagePath}, "Profile image updated successfully")
}

// List returns the caller's uploads, newest first.
func (h *UploadHandler) List(c echo.Context) error {
	identity, err := middleware.IdentityFromContext(c)
	if err != nil {
		return err
	}

	uploads, err := h.uc.ListUploads(c.Request().Context(), identity.AccountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, uploads, "Uploads retrieved successfully")
}

// Delete removes one of the caller's uploads.
func (h *UploadHandler) Delete(c echo.Context) error {
	identity, err := middleware.IdentityFromContext(c)
	if err != nil {
		return err
	}

	uploadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid upload id")
	}

	if err := h.uc.DeleteUpload(c.Request().Context(), identity.AccountID, uploadID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Upload deleted successfully")
}

// readFormFile pulls the uploaded file out of the multipart form. A missing
// or unreadable part maps to the no-file error so clients always see a 400.
func readFormFile(c echo.Context) (filename, mimeType string, payload []byte, err error) {
	fileHeader, err := c.FormFile(uploadFormField)
	if err != nil {
		return "", "", nil, domainerrors.ErrNoFileProvided
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", "", nil, domainerrors.ErrNoFileProvided
	}
	defer src.Close()

	payload, err = io.ReadAll(src)
	if err != nil {
		return "", "", nil, errors.Wrap(err, "failed to read uploaded file")
	}

	return fileHeader.Filename, fileHeader.Header.Get("Content-Type"), payload, nil
}
