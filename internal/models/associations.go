package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerActionOverride allows or denies one Action for one Player, overriding
// what the player's role grants.
type PlayerActionOverride struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PlayerID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_player_action_overrides_pair,priority:1" json:"player_id"`
	ActionID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_player_action_overrides_pair,priority:2;index" json:"action_id"`
	IsAllowed bool      `gorm:"not null" json:"is_allowed"`

	Player *Player `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE" json:"-"`
	Action *Action `gorm:"foreignKey:ActionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (o *PlayerActionOverride) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

func (PlayerActionOverride) TableName() string {
	return "player_action_overrides"
}

// PlayerTriggerEvent records that a player triggers a game event.
type PlayerTriggerEvent struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PlayerID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_player_trigger_events_pair,priority:1" json:"player_id"`
	GameEventID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_player_trigger_events_pair,priority:2;index" json:"game_event_id"`

	Player    *Player    `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE" json:"-"`
	GameEvent *GameEvent `gorm:"foreignKey:GameEventID;constraint:OnDelete:CASCADE" json:"-"`
}

func (e *PlayerTriggerEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (PlayerTriggerEvent) TableName() string {
	return "player_trigger_events"
}

// PlayerInfluenceEvent records that a player influences a game event.
type PlayerInfluenceEvent struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PlayerID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_player_influence_events_pair,priority:1" json:"player_id"`
	GameEventID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_player_influence_events_pair,priority:2;index" json:"game_event_id"`

	Player    *Player    `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE" json:"-"`
	GameEvent *GameEvent `gorm:"foreignKey:GameEventID;constraint:OnDelete:CASCADE" json:"-"`
}

func (e *PlayerInfluenceEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (PlayerInfluenceEvent) TableName() string {
	return "player_influence_events"
}

// EventInfluencePlayer records a game event acting on a player, allowed or denied.
type EventInfluencePlayer struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PlayerID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_event_influence_players_pair,priority:1" json:"player_id"`
	GameEventID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_event_influence_players_pair,priority:2;index" json:"game_event_id"`
	IsAllowed   bool      `gorm:"not null" json:"is_allowed"`

	Player    *Player    `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE" json:"-"`
	GameEvent *GameEvent `gorm:"foreignKey:GameEventID;constraint:OnDelete:CASCADE" json:"-"`
}

func (e *EventInfluencePlayer) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (EventInfluencePlayer) TableName() string {
	return "event_influence_players"
}

// RoleAction lists the actions a role may perform.
type RoleAction struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RoleID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_role_actions_pair,priority:1" json:"role_id"`
	ActionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_role_actions_pair,priority:2;index" json:"action_id"`

	Role   *Role   `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE" json:"-"`
	Action *Action `gorm:"foreignKey:ActionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (r *RoleAction) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (RoleAction) TableName() string {
	return "role_actions"
}
