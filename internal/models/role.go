package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is a character archetype a player can be dealt.
type Role struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string     `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description string     `gorm:"type:text;not null;default:''" json:"description"`
	IsDefault   bool       `gorm:"not null;default:false" json:"is_default"`
	IsMafia     bool       `gorm:"not null;default:false" json:"is_mafia"`
	ImageID     *uuid.UUID `gorm:"type:uuid;index" json:"image_id,omitempty"`
	AuthorID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"author_id"`

	Image  *Image   `gorm:"foreignKey:ImageID;constraint:OnDelete:SET NULL" json:"-"`
	Author *Account `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}

func (r *Role) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (Role) TableName() string {
	return "roles"
}
