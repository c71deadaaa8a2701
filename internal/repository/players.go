package repository

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"github.com/google/uuid"
)

func (s *Store) checkPlayerRefs(ctx context.Context, p *models.Player) error {
	if err := s.requireRef(ctx, &models.Account{}, "account_id", p.AccountID); err != nil {
		return err
	}
	if err := s.requireRef(ctx, &models.PlayerStatus{}, "status_id", p.StatusID); err != nil {
		return err
	}
	if err := s.optionalRef(ctx, &models.Room{}, "room_id", p.RoomID); err != nil {
		return err
	}
	return s.optionalRef(ctx, &models.Role{}, "role_id", p.RoleID)
}

func (s *Store) CreatePlayer(ctx context.Context, p *models.Player) error {
	return s.Transaction(ctx, func(tx *Store) error {
		if err := tx.checkPlayerRefs(ctx, p); err != nil {
			return err
		}
		return create(ctx, tx, p)
	})
}

func (s *Store) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	return get[models.Player](ctx, s, id)
}

func (s *Store) ListPlayersByRoom(ctx context.Context, roomID uuid.UUID) ([]models.Player, error) {
	var out []models.Player
	if err := s.conn(ctx).Where("room_id = ?", roomID).Order("created_at").Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// GetRoomCreator returns the earliest room-creator player seated in roomID.
func (s *Store) GetRoomCreator(ctx context.Context, roomID uuid.UUID) (*models.Player, error) {
	var p models.Player
	err := s.conn(ctx).
		Where("room_id = ? AND is_room_creator = ?", roomID, true).
		Order("created_at").
		First(&p).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *Store) ListPlayersByAccount(ctx context.Context, accountID uuid.UUID, page Page) ([]models.Player, error) {
	return list[models.Player](ctx, s, page, "created_at DESC", where("account_id = ?", accountID))
}

func (s *Store) UpdatePlayer(ctx context.Context, p *models.Player) error {
	return s.Transaction(ctx, func(tx *Store) error {
		if err := tx.checkPlayerRefs(ctx, p); err != nil {
			return err
		}
		return update(ctx, tx, p)
	})
}

// DeletePlayer removes the player, its chats and every event or action link.
func (s *Store) DeletePlayer(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.Player](ctx, s, id)
}
