package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Default tags seeded into the status tables.
const (
	AccountStatusActive    = "active"
	AccountStatusSuspended = "suspended"
	AccountStatusBanned    = "banned"

	RoomStatusWaiting    = "waiting"
	RoomStatusInProgress = "in_progress"
	RoomStatusFinished   = "finished"

	PlayerStatusJoined = "joined"
	PlayerStatusReady  = "ready"
	PlayerStatusLeft   = "left"
)

// AccountStatus is a closed set of account lifecycle tags.
type AccountStatus struct {
	ID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Tag string    `gorm:"size:255;not null;uniqueIndex" json:"tag"`
}

func (s *AccountStatus) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (AccountStatus) TableName() string {
	return "account_statuses"
}

// RoomStatus is a closed set of room lifecycle tags.
type RoomStatus struct {
	ID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Tag string    `gorm:"size:255;not null;uniqueIndex" json:"tag"`
}

func (s *RoomStatus) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (RoomStatus) TableName() string {
	return "room_statuses"
}

// PlayerStatus is a closed set of per-room player tags.
type PlayerStatus struct {
	ID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Tag string    `gorm:"size:255;not null;uniqueIndex" json:"tag"`
}

func (s *PlayerStatus) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (PlayerStatus) TableName() string {
	return "player_statuses"
}
