package impl

import (
	"path/filepath"
	"strings"

	"chatline/internal/domain/entity"
	domainerrors "chatline/internal/domain/errors"
)

// categoryExtensions lists the file extensions each media category accepts.
// The generic category is absent on purpose: it accepts anything.
var categoryExtensions = map[entity.MediaCategory]map[string]struct{}{
	entity.CategoryImage: {".jpg": {}, ".jpeg": {}, ".png": {}},
	entity.CategoryVideo: {".mp4": {}, ".mov": {}, ".avi": {}},
	entity.CategoryAudio: {".mp3": {}, ".wav": {}, ".ogg": {}},
}

// categoryMimePrefix is the required prefix of the declared content type for
// each media category.
var categoryMimePrefix = map[entity.MediaCategory]string{
	entity.CategoryImage: "image/",
	entity.CategoryVideo: "video/",
	entity.CategoryAudio: "audio/",
}

// validateUpload decides, purely from the declared filename and content
// type, whether a payload is acceptable for the category. Media categories
// require the extension and the declared type to agree independently; a
// matching extension never excuses a mismatched type, and vice versa.
func validateUpload(category entity.MediaCategory, filename, mimeType string) error {
	if !category.Valid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown media category")
	}

	if category == entity.CategoryGeneric {
		return nil
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := categoryExtensions[category][ext]; !ok {
		return domainerrors.ErrUnsupportedMediaType
	}

	if !strings.HasPrefix(strings.ToLower(mimeType), categoryMimePrefix[category]) {
		return domainerrors.ErrUnsupportedMediaType
	}

	return nil
}
