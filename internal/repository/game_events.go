package repository

import (
	"context"
	"strings"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"github.com/google/uuid"
)

func validateGameEvent(e *models.GameEvent) error {
	e.Name = strings.TrimSpace(e.Name)
	if err := requireText("name", e.Name); err != nil {
		return err
	}
	if err := maxLength("name", e.Name, 255); err != nil {
		return err
	}
	if e.Type != nil {
		if err := maxLength("type", *e.Type, 255); err != nil {
			return err
		}
	}
	if e.Timer != nil && *e.Timer < 0 {
		return &ValidationError{Field: "timer", Reason: "must not be negative"}
	}
	return nil
}

func (s *Store) CreateGameEvent(ctx context.Context, e *models.GameEvent) error {
	if err := validateGameEvent(e); err != nil {
		return err
	}
	return s.Transaction(ctx, func(tx *Store) error {
		if err := tx.requireRef(ctx, &models.Action{}, "action_id", e.ActionID); err != nil {
			return err
		}
		return create(ctx, tx, e)
	})
}

func (s *Store) GetGameEvent(ctx context.Context, id uuid.UUID) (*models.GameEvent, error) {
	return get[models.GameEvent](ctx, s, id)
}

// ListGameEvents orders events by night order, then name.
func (s *Store) ListGameEvents(ctx context.Context, page Page) ([]models.GameEvent, error) {
	return list[models.GameEvent](ctx, s, page, "night_order, name")
}

func (s *Store) UpdateGameEvent(ctx context.Context, e *models.GameEvent) error {
	if err := validateGameEvent(e); err != nil {
		return err
	}
	return s.Transaction(ctx, func(tx *Store) error {
		if err := tx.requireRef(ctx, &models.Action{}, "action_id", e.ActionID); err != nil {
			return err
		}
		return update(ctx, tx, e)
	})
}

func (s *Store) DeleteGameEvent(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.GameEvent](ctx, s, id)
}
