package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameEvent is a schedulable occurrence bound to an Action. NightOrder ranks
// events resolved during the same night.
type GameEvent struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string         `gorm:"size:255;not null;uniqueIndex" json:"name"`
	NightOrder int16          `gorm:"not null;default:0" json:"night_order"`
	Type       *string        `gorm:"size:255" json:"type,omitempty"`
	IsVisible  bool           `gorm:"not null;default:false" json:"is_visible"`
	Timer      *time.Duration `gorm:"check:timer >= 0" json:"timer,omitempty"`
	ActionID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"action_id"`
	CreatedAt  time.Time      `json:"created_at"`

	Action *Action `gorm:"foreignKey:ActionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (e *GameEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (GameEvent) TableName() string {
	return "game_events"
}
