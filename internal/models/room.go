package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccessCodeLength is the fixed length of a room's join code.
const AccessCodeLength = 6

// Room is one game session, joinable by its access code.
type Room struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string     `gorm:"size:255;not null;uniqueIndex" json:"name"`
	AccessCode    string     `gorm:"size:6;not null;uniqueIndex" json:"access_code"`
	GameStartTime *time.Time `json:"game_start_time,omitempty"`
	GameEndTime   *time.Time `json:"game_end_time,omitempty"`
	StatusID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"status_id"`
	GameSettingID uuid.UUID  `gorm:"type:uuid;not null;index" json:"game_setting_id"`
	CreatedAt     time.Time  `json:"created_at"`

	Status      *RoomStatus  `gorm:"foreignKey:StatusID;constraint:OnDelete:CASCADE" json:"-"`
	GameSetting *GameSetting `gorm:"foreignKey:GameSettingID;constraint:OnDelete:CASCADE" json:"-"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (Room) TableName() string {
	return "rooms"
}
