package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameSetting is a named ruleset, e.g. "classic 8-player".
type GameSetting struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"type:text;not null;default:''" json:"description"`
	IsDefault   bool      `gorm:"not null;default:false" json:"is_default"`
	AuthorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"author_id"`
	CreatedAt   time.Time `json:"created_at"`

	Author *Account `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}

func (g *GameSetting) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

func (GameSetting) TableName() string {
	return "game_settings"
}

// GameSettingRole is the role quota of a setting: how many of Role the setting deals.
type GameSettingRole struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	GameSettingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_game_setting_roles_pair,priority:1" json:"game_setting_id"`
	RoleID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_game_setting_roles_pair,priority:2;index" json:"role_id"`
	Count         int16     `gorm:"not null;check:count >= 1" json:"count"`

	GameSetting *GameSetting `gorm:"foreignKey:GameSettingID;constraint:OnDelete:CASCADE" json:"-"`
	Role        *Role        `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE" json:"-"`
}

func (g *GameSettingRole) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

func (GameSettingRole) TableName() string {
	return "game_setting_roles"
}
