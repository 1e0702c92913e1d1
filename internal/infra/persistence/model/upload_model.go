package model

import (
	"time"

	"github.com/google/uuid"
)

// UploadModel mirrors the 'uploads' table, one row per stored file.
type UploadModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Filename  string    `gorm:"type:varchar(512);not null"`
	Path      string    `gorm:"type:varchar(1024);not null"`
	MimeType  string    `gorm:"type:varchar(255);not null"`
	Category  string    `gorm:"type:varchar(32);not null"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UploadModel) TableName() string {
	return "uploads"
}
