package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"github.com/google/uuid"
)

func validateRoom(r *models.Room) error {
	r.Name = strings.TrimSpace(r.Name)
	if err := requireText("name", r.Name); err != nil {
		return err
	}
	if err := maxLength("name", r.Name, 255); err != nil {
		return err
	}
	r.AccessCode = NormalizeAccessCode(r.AccessCode)
	if r.AccessCode != "" && len([]rune(r.AccessCode)) != models.AccessCodeLength {
		return &ValidationError{Field: "access_code", Reason: "must be exactly 6 characters"}
	}
	if r.GameStartTime != nil && r.GameEndTime != nil && r.GameStartTime.After(*r.GameEndTime) {
		return &ValidationError{Field: "game_end_time", Reason: "must not be before game_start_time"}
	}
	return nil
}

func (s *Store) checkRoomRefs(ctx context.Context, r *models.Room) error {
	if err := s.requireRef(ctx, &models.RoomStatus{}, "status_id", r.StatusID); err != nil {
		return err
	}
	return s.requireRef(ctx, &models.GameSetting{}, "game_setting_id", r.GameSettingID)
}

// CreateRoom stores a room. An empty AccessCode is replaced by a fresh unused one.
func (s *Store) CreateRoom(ctx context.Context, r *models.Room) error {
	if err := validateRoom(r); err != nil {
		return err
	}
	return s.Transaction(ctx, func(tx *Store) error {
		if err := tx.checkRoomRefs(ctx, r); err != nil {
			return err
		}
		if r.AccessCode == "" {
			code, err := tx.unusedAccessCode(ctx)
			if err != nil {
				return err
			}
			r.AccessCode = code
		}
		return create(ctx, tx, r)
	})
}

// OpenRoom creates r and seats host in it as the room creator, atomically.
func (s *Store) OpenRoom(ctx context.Context, r *models.Room, host *models.Player) error {
	return s.Transaction(ctx, func(tx *Store) error {
		if err := tx.CreateRoom(ctx, r); err != nil {
			return err
		}
		host.RoomID = &r.ID
		host.IsRoomCreator = true
		return tx.CreatePlayer(ctx, host)
	})
}

func (s *Store) unusedAccessCode(ctx context.Context) (string, error) {
	for i := 0; i < maxAccessCodeAttempts; i++ {
		code, err := NewAccessCode()
		if err != nil {
			return "", err
		}
		var n int64
		if err := s.conn(ctx).Model(&models.Room{}).Where("access_code = ?", code).Count(&n).Error; err != nil {
			return "", translate(err)
		}
		if n == 0 {
			return code, nil
		}
	}
	return "", &ConflictError{Constraint: "rooms.access_code", Err: errors.New("no unused access code found")}
}

func (s *Store) GetRoom(ctx context.Context, id uuid.UUID) (*models.Room, error) {
	return get[models.Room](ctx, s, id)
}

// GetRoomByAccessCode resolves a join code to its room.
func (s *Store) GetRoomByAccessCode(ctx context.Context, code string) (*models.Room, error) {
	return findBy[models.Room](ctx, s, "access_code", NormalizeAccessCode(code))
}

func (s *Store) ListRooms(ctx context.Context, page Page) ([]models.Room, error) {
	return list[models.Room](ctx, s, page, "created_at DESC")
}

func (s *Store) UpdateRoom(ctx context.Context, r *models.Room) error {
	if err := validateRoom(r); err != nil {
		return err
	}
	if r.AccessCode == "" {
		return &ValidationError{Field: "access_code", Reason: "must be exactly 6 characters"}
	}
	return s.Transaction(ctx, func(tx *Store) error {
		if err := tx.checkRoomRefs(ctx, r); err != nil {
			return err
		}
		return update(ctx, tx, r)
	})
}

// DeleteRoom keeps the room's players but clears their room_id.
func (s *Store) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.Room](ctx, s, id)
}
