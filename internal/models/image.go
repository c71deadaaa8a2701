package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Image is a stored file reference shared by accounts and roles.
type Image struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FilePath string    `gorm:"size:255;not null;uniqueIndex" json:"file_path"`
	AddedAt  time.Time `gorm:"not null" json:"added_at"`
}

func (i *Image) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.AddedAt.IsZero() {
		i.AddedAt = time.Now().UTC()
	}
	return nil
}

func (Image) TableName() string {
	return "images"
}
