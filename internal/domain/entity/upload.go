package entity

import (
	"time"

	"github.com/google/uuid"
)

// MediaCategory classifies an uploaded file and governs both the storage
// directory and the accepted file types.
type MediaCategory string

const (
	CategoryImage   MediaCategory = "image"
	CategoryVideo   MediaCategory = "video"
	CategoryAudio   MediaCategory = "audio"
	CategoryGeneric MediaCategory = "generic"
)

// MediaCategories returns every known category, in declaration order.
func MediaCategories() []MediaCategory {
	return []MediaCategory{CategoryImage, CategoryVideo, CategoryAudio, CategoryGeneric}
}

// Valid reports whether the category is one of the known classifications.
func (c MediaCategory) Valid() bool {
	switch c {
	case CategoryImage, CategoryVideo, CategoryAudio, CategoryGeneric:
		return true
	}

	return false
}

// Upload is the metadata record for one stored file. Records are created
// atomically after the file write succeeds and are never mutated.
type Upload struct {
	ID        uuid.UUID     `json:"id"`
	Filename  string        `json:"filename"` // Generated, collision-resistant stored name.
	Path      string        `json:"path"`     // Relative retrieval path, e.g. /uploads/image/....
	MimeType  string        `json:"mime_type"`
	Category  MediaCategory `json:"category"`
	AccountID uuid.UUID     `json:"account_id"`
	CreatedAt time.Time     `json:"created_at"`
}
