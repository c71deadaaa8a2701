package repository

import (
	"context"
	"strings"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"github.com/google/uuid"
)

func validateAction(a *models.Action) error {
	a.Name = strings.TrimSpace(a.Name)
	if err := requireText("name", a.Name); err != nil {
		return err
	}
	return maxLength("name", a.Name, 255)
}

func (s *Store) CreateAction(ctx context.Context, a *models.Action) error {
	if err := validateAction(a); err != nil {
		return err
	}
	return create(ctx, s, a)
}

func (s *Store) GetAction(ctx context.Context, id uuid.UUID) (*models.Action, error) {
	return get[models.Action](ctx, s, id)
}

func (s *Store) GetActionByName(ctx context.Context, name string) (*models.Action, error) {
	return findBy[models.Action](ctx, s, "name", name)
}

func (s *Store) ListActions(ctx context.Context, page Page) ([]models.Action, error) {
	return list[models.Action](ctx, s, page, "name")
}

func (s *Store) UpdateAction(ctx context.Context, a *models.Action) error {
	if err := validateAction(a); err != nil {
		return err
	}
	return update(ctx, s, a)
}

// DeleteAction also removes game events bound to it and every role or player link to it.
func (s *Store) DeleteAction(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.Action](ctx, s, id)
}
