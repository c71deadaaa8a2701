package repository

import (
	"context"
	"strings"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"github.com/google/uuid"
)

func validateGameSetting(g *models.GameSetting) error {
	g.Name = strings.TrimSpace(g.Name)
	if err := requireText("name", g.Name); err != nil {
		return err
	}
	return maxLength("name", g.Name, 255)
}

func (s *Store) CreateGameSetting(ctx context.Context, g *models.GameSetting) error {
	if err := validateGameSetting(g); err != nil {
		return err
	}
	return s.Transaction(ctx, func(tx *Store) error {
		if err := tx.requireRef(ctx, &models.Account{}, "author_id", g.AuthorID); err != nil {
			return err
		}
		return create(ctx, tx, g)
	})
}

func (s *Store) GetGameSetting(ctx context.Context, id uuid.UUID) (*models.GameSetting, error) {
	return get[models.GameSetting](ctx, s, id)
}

func (s *Store) ListGameSettings(ctx context.Context, page Page) ([]models.GameSetting, error) {
	return list[models.GameSetting](ctx, s, page, "name")
}

func (s *Store) UpdateGameSetting(ctx context.Context, g *models.GameSetting) error {
	if err := validateGameSetting(g); err != nil {
		return err
	}
	return s.Transaction(ctx, func(tx *Store) error {
		if err := tx.requireRef(ctx, &models.Account{}, "author_id", g.AuthorID); err != nil {
			return err
		}
		return update(ctx, tx, g)
	})
}

// DeleteGameSetting also deletes the rooms played with it and its role quotas.
func (s *Store) DeleteGameSetting(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.GameSetting](ctx, s, id)
}

func validateQuota(count int16) error {
	if count < 1 {
		return &ValidationError{Field: "count", Reason: "must be at least 1"}
	}
	return nil
}

// AddGameSettingRole adds a role quota. A second quota for the same pair is a conflict.
func (s *Store) AddGameSettingRole(ctx context.Context, settingID, roleID uuid.UUID, count int16) (*models.GameSettingRole, error) {
	if err := validateQuota(count); err != nil {
		return nil, err
	}
	quota := &models.GameSettingRole{GameSettingID: settingID, RoleID: roleID, Count: count}
	err := s.Transaction(ctx, func(tx *Store) error {
		if err := tx.requireRef(ctx, &models.GameSetting{}, "game_setting_id", settingID); err != nil {
			return err
		}
		if err := tx.requireRef(ctx, &models.Role{}, "role_id", roleID); err != nil {
			return err
		}
		return create(ctx, tx, quota)
	})
	if err != nil {
		return nil, err
	}
	return quota, nil
}

func (s *Store) SetGameSettingRoleCount(ctx context.Context, settingID, roleID uuid.UUID, count int16) (*models.GameSettingRole, error) {
	if err := validateQuota(count); err != nil {
		return nil, err
	}
	quota, err := getPair[models.GameSettingRole](ctx, s, "game_setting_id", settingID, "role_id", roleID)
	if err != nil {
		return nil, err
	}
	quota.Count = count
	if err := update(ctx, s, quota); err != nil {
		return nil, err
	}
	return quota, nil
}

func (s *Store) RemoveGameSettingRole(ctx context.Context, settingID, roleID uuid.UUID) error {
	return removePair[models.GameSettingRole](ctx, s, "game_setting_id", settingID, "role_id", roleID)
}

func (s *Store) ListGameSettingRoles(ctx context.Context, settingID uuid.UUID) ([]models.GameSettingRole, error) {
	var out []models.GameSettingRole
	if err := s.conn(ctx).Where("game_setting_id = ?", settingID).Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}
