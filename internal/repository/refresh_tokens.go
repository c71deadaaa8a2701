package repository

import (
	"context"
	"time"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"github.com/google/uuid"
)

func (s *Store) CreateRefreshToken(ctx context.Context, accountID uuid.UUID, tokenHash string, expiresAt time.Time) (*models.RefreshToken, error) {
	token := &models.RefreshToken{AccountID: accountID, TokenHash: tokenHash, ExpiresAt: expiresAt}
	err := s.Transaction(ctx, func(tx *Store) error {
		if err := tx.requireRef(ctx, &models.Account{}, "account_id", accountID); err != nil {
			return err
		}
		return create(ctx, tx, token)
	})
	if err != nil {
		return nil, err
	}
	return token, nil
}

// GetActiveRefreshToken finds an unrevoked token by hash. Expiry is left to the caller.
func (s *Store) GetActiveRefreshToken(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	err := s.conn(ctx).Where("token_hash = ? AND revoked = ?", tokenHash, false).First(&token).Error
	if err != nil {
		return nil, translate(err)
	}
	return &token, nil
}

func (s *Store) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	return translate(s.conn(ctx).Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error)
}
