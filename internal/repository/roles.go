package repository

import (
	"context"
	"strings"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"github.com/google/uuid"
)

func validateRole(r *models.Role) error {
	r.Name = strings.TrimSpace(r.Name)
	if err := requireText("name", r.Name); err != nil {
		return err
	}
	return maxLength("name", r.Name, 255)
}

func (s *Store) checkRoleRefs(ctx context.Context, r *models.Role) error {
	if err := s.requireRef(ctx, &models.Account{}, "author_id", r.AuthorID); err != nil {
		return err
	}
	return s.optionalRef(ctx, &models.Image{}, "image_id", r.ImageID)
}

func (s *Store) CreateRole(ctx context.Context, r *models.Role) error {
	if err := validateRole(r); err != nil {
		return err
	}
	return s.Transaction(ctx, func(tx *Store) error {
		if err := tx.checkRoleRefs(ctx, r); err != nil {
			return err
		}
		return create(ctx, tx, r)
	})
}

func (s *Store) GetRole(ctx context.Context, id uuid.UUID) (*models.Role, error) {
	return get[models.Role](ctx, s, id)
}

func (s *Store) ListRoles(ctx context.Context, page Page) ([]models.Role, error) {
	return list[models.Role](ctx, s, page, "name")
}

func (s *Store) UpdateRole(ctx context.Context, r *models.Role) error {
	if err := validateRole(r); err != nil {
		return err
	}
	return s.Transaction(ctx, func(tx *Store) error {
		if err := tx.checkRoleRefs(ctx, r); err != nil {
			return err
		}
		return update(ctx, tx, r)
	})
}

// DeleteRole unseats the role from players (role_id becomes NULL) and drops
// its quotas and action grants.
func (s *Store) DeleteRole(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.Role](ctx, s, id)
}

func (s *Store) AddRoleAction(ctx context.Context, roleID, actionID uuid.UUID) (*models.RoleAction, error) {
	link := &models.RoleAction{RoleID: roleID, ActionID: actionID}
	err := s.Transaction(ctx, func(tx *Store) error {
		if err := tx.requireRef(ctx, &models.Role{}, "role_id", roleID); err != nil {
			return err
		}
		if err := tx.requireRef(ctx, &models.Action{}, "action_id", actionID); err != nil {
			return err
		}
		return create(ctx, tx, link)
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

func (s *Store) RemoveRoleAction(ctx context.Context, roleID, actionID uuid.UUID) error {
	return removePair[models.RoleAction](ctx, s, "role_id", roleID, "action_id", actionID)
}

func (s *Store) ListRoleActions(ctx context.Context, roleID uuid.UUID) ([]models.Action, error) {
	var out []models.Action
	err := s.conn(ctx).
		Joins("JOIN role_actions ON role_actions.action_id = actions.id").
		Where("role_actions.role_id = ?", roleID).
		Order("actions.name").
		Find(&out).Error
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}
