package impl

import (
	"testing"

	"chatline/internal/domain/entity"
	domainerrors "chatline/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name     string
		category entity.MediaCategory
		filename string
		mimeType string
		wantErr  error
	}{
		{name: "jpeg image", category: entity.CategoryImage, filename: "photo.jpg", mimeType: "image/jpeg", wantErr: nil},
		{name: "png image uppercase extension", category: entity.CategoryImage, filename: "PHOTO.PNG", mimeType: "image/png", wantErr: nil},
		{name: "mp4 video", category: entity.CategoryVideo, filename: "clip.mp4", mimeType: "video/mp4", wantErr: nil},
		{name: "ogg audio", category: entity.CategoryAudio, filename: "voice.ogg", mimeType: "audio/ogg", wantErr: nil},
		{name: "generic accepts anything", category: entity.CategoryGeneric, filename: "report.pdf", mimeType: "application/pdf", wantErr: nil},
		{name: "generic accepts missing extension", category: entity.CategoryGeneric, filename: "README", mimeType: "text/plain", wantErr: nil},

		{name: "image with wrong extension", category: entity.CategoryImage, filename: "photo.gif", mimeType: "image/gif", wantErr: domainerrors.ErrUnsupportedMediaType},
		{name: "image extension with non-image type", category: entity.CategoryImage, filename: "photo.jpg", mimeType: "application/octet-stream", wantErr: domainerrors.ErrUnsupportedMediaType},
		{name: "video extension with audio type", category: entity.CategoryVideo, filename: "clip.mp4", mimeType: "audio/mpeg", wantErr: domainerrors.ErrUnsupportedMediaType},
		{name: "audio with video extension", category: entity.CategoryAudio, filename: "clip.mp4", mimeType: "audio/mpeg", wantErr: domainerrors.ErrUnsupportedMediaType},
		{name: "image without extension", category: entity.CategoryImage, filename: "photo", mimeType: "image/png", wantErr: domainerrors.ErrUnsupportedMediaType},
		{name: "unknown category", category: entity.MediaCategory("archive"), filename: "a.zip", mimeType: "application/zip", wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateUpload(tt.category, tt.filename, tt.mimeType)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
