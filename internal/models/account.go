package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Account merges the auth principal and the player profile into one record.
type Account struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Username        string          `gorm:"size:255;not null;uniqueIndex" json:"username"`
	Email           string          `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password        string          `gorm:"size:255;not null" json:"-"`
	FirstName       string          `gorm:"size:255;not null;default:''" json:"first_name"`
	LastName        string          `gorm:"size:255;not null;default:''" json:"last_name"`
	DateOfBirth     *datatypes.Date `json:"date_of_birth,omitempty"`
	BioInfo         string          `gorm:"type:text;not null;default:''" json:"bio_info"`
	IsEmailVerified bool            `gorm:"not null;default:false" json:"is_email_verified"`
	IsAdmin         bool            `gorm:"not null;default:false" json:"is_admin"`
	AccountStatusID uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_status_id"`
	ImageID         *uuid.UUID      `gorm:"type:uuid;index" json:"image_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	AccountStatus *AccountStatus `gorm:"foreignKey:AccountStatusID;constraint:OnDelete:CASCADE" json:"-"`
	Image         *Image         `gorm:"foreignKey:ImageID;constraint:OnDelete:SET NULL" json:"-"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func (Account) TableName() string {
	return "accounts"
}
