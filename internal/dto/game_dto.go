package dto

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"github.com/google/uuid"
)

// PATCH requests use pointer fields: nil leaves the column alone. Nullable
// references are strings where "" clears the reference.

type StatusRequest struct {
	Tag string `json:"tag"`
}

type UpdateAccountRequest struct {
	Username    *string `json:"username"`
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	DateOfBirth *string `json:"date_of_birth"` // YYYY-MM-DD
	BioInfo     *string `json:"bio_info"`
	ImageID     *string `json:"image_id"`
}

type AdminUpdateAccountRequest struct {
	AccountStatusID *uuid.UUID `json:"account_status_id"`
	IsAdmin         *bool      `json:"is_admin"`
	IsEmailVerified *bool      `json:"is_email_verified"`
}

type ImageRequest struct {
	FilePath string `json:"file_path"`
}

type CreateActionRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateActionRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type CreateRoleRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	IsDefault   bool       `json:"is_default"`
	IsMafia     bool       `json:"is_mafia"`
	ImageID     *uuid.UUID `json:"image_id"`
}

type UpdateRoleRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsDefault   *bool   `json:"is_default"`
	IsMafia     *bool   `json:"is_mafia"`
	ImageID     *string `json:"image_id"`
}

type RoleActionRequest struct {
	ActionID uuid.UUID `json:"action_id"`
}

type CreateGameSettingRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsDefault   bool   `json:"is_default"`
}

type UpdateGameSettingRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsDefault   *bool   `json:"is_default"`
}

// GameSettingRoleRequest adds a role quota; Count defaults to 1.
type GameSettingRoleRequest struct {
	RoleID uuid.UUID `json:"role_id"`
	Count  *int16    `json:"count"`
}

type RoleCountRequest struct {
	Count int16 `json:"count"`
}

type CreateRoomRequest struct {
	Name          string     `json:"name"`
	AccessCode    string     `json:"access_code"`
	GameSettingID uuid.UUID  `json:"game_setting_id"`
	StatusID      *uuid.UUID `json:"status_id"`
	GameStartTime *time.Time `json:"game_start_time"`
	GameEndTime   *time.Time `json:"game_end_time"`
}

type UpdateRoomRequest struct {
	Name          *string    `json:"name"`
	AccessCode    *string    `json:"access_code"`
	GameSettingID *uuid.UUID `json:"game_setting_id"`
	StatusID      *uuid.UUID `json:"status_id"`
	GameStartTime *time.Time `json:"game_start_time"`
	GameEndTime   *time.Time `json:"game_end_time"`
}

type CreateGameEventRequest struct {
	Name         string    `json:"name"`
	NightOrder   int16     `json:"night_order"`
	Type         *string   `json:"type"`
	IsVisible    bool      `json:"is_visible"`
	TimerSeconds *int64    `json:"timer_seconds"`
	ActionID     uuid.UUID `json:"action_id"`
}

type UpdateGameEventRequest struct {
	Name         *string    `json:"name"`
	NightOrder   *int16     `json:"night_order"`
	Type         *string    `json:"type"`
	IsVisible    *bool      `json:"is_visible"`
	TimerSeconds *int64     `json:"timer_seconds"`
	ActionID     *uuid.UUID `json:"action_id"`
}

type GameEventResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	NightOrder   int16     `json:"night_order"`
	Type         *string   `json:"type,omitempty"`
	IsVisible    bool      `json:"is_visible"`
	TimerSeconds *int64    `json:"timer_seconds,omitempty"`
	ActionID     uuid.UUID `json:"action_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewGameEventResponse(e *models.GameEvent) GameEventResponse {
	resp := GameEventResponse{
		ID:         e.ID,
		Name:       e.Name,
		NightOrder: e.NightOrder,
		Type:       e.Type,
		IsVisible:  e.IsVisible,
		ActionID:   e.ActionID,
		CreatedAt:  e.CreatedAt,
	}
	if e.Timer != nil {
		secs := int64(e.Timer.Seconds())
		resp.TimerSeconds = &secs
	}
	return resp
}

// CreatePlayerRequest seats the caller unless AccountID is given by an admin.
type CreatePlayerRequest struct {
	AccountID     *uuid.UUID `json:"account_id"`
	RoomID        *uuid.UUID `json:"room_id"`
	RoleID        *uuid.UUID `json:"role_id"`
	StatusID      *uuid.UUID `json:"status_id"`
	IsRoomCreator bool       `json:"is_room_creator"`
}

type UpdatePlayerRequest struct {
	IsKilled      *bool      `json:"is_killed"`
	IsVotedOut    *bool      `json:"is_voted_out"`
	IsRoomCreator *bool      `json:"is_room_creator"`
	StatusID      *uuid.UUID `json:"status_id"`
	RoomID        *string    `json:"room_id"`
	RoleID        *string    `json:"role_id"`
}

// ActionOverrideRequest: IsAllowed defaults to true.
type ActionOverrideRequest struct {
	ActionID  uuid.UUID `json:"action_id"`
	IsAllowed *bool     `json:"is_allowed"`
}

type PlayerEventRequest struct {
	GameEventID uuid.UUID `json:"game_event_id"`
}

// EventInfluenceRequest: IsAllowed defaults to true.
type EventInfluenceRequest struct {
	GameEventID uuid.UUID `json:"game_event_id"`
	IsAllowed   *bool     `json:"is_allowed"`
}

type AllowedRequest struct {
	IsAllowed bool `json:"is_allowed"`
}

type CreateChatRequest struct {
	AuthorID    uuid.UUID `json:"author_id"`
	Text        string    `json:"text"`
	IsMafiaChat bool      `json:"is_mafia_chat"`
}

type UpdateChatRequest struct {
	Text string `json:"text"`
}

type ReplyRequest struct {
	ReplyID uuid.UUID `json:"reply_id"`
}

type ListResponse[T any] struct {
	Items  []T `json:"items"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
