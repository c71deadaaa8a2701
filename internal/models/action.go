package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Action is a reusable named activity such as "vote" or "kill".
type Action struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"type:text;not null;default:''" json:"description"`
}

func (a *Action) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func (Action) TableName() string {
	return "actions"
}
