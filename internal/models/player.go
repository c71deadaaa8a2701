package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Player seats an Account in a Room, optionally with a dealt Role.
type Player struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	IsKilled      bool       `gorm:"not null;default:false" json:"is_killed"`
	IsVotedOut    bool       `gorm:"not null;default:false" json:"is_voted_out"`
	IsRoomCreator bool       `gorm:"not null;default:false" json:"is_room_creator"`
	StatusID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"status_id"`
	RoomID        *uuid.UUID `gorm:"type:uuid;index" json:"room_id,omitempty"`
	RoleID        *uuid.UUID `gorm:"type:uuid;index" json:"role_id,omitempty"`
	AccountID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"account_id"`
	CreatedAt     time.Time  `json:"created_at"`

	Status  *PlayerStatus `gorm:"foreignKey:StatusID;constraint:OnDelete:CASCADE" json:"-"`
	Room    *Room         `gorm:"foreignKey:RoomID;constraint:OnDelete:SET NULL" json:"-"`
	Role    *Role         `gorm:"foreignKey:RoleID;constraint:OnDelete:SET NULL" json:"-"`
	Account *Account      `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
}

func (p *Player) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (Player) TableName() string {
	return "players"
}
