package repository

import (
	"context"
	"strings"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"github.com/google/uuid"
)

func validateAccount(a *models.Account) error {
	a.Username = strings.TrimSpace(a.Username)
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))

	if err := requireText("username", a.Username); err != nil {
		return err
	}
	if err := maxLength("username", a.Username, 255); err != nil {
		return err
	}
	if err := requireText("email", a.Email); err != nil {
		return err
	}
	if err := maxLength("email", a.Email, 255); err != nil {
		return err
	}
	if !strings.Contains(a.Email, "@") {
		return &ValidationError{Field: "email", Reason: "is not an email address"}
	}
	if a.Password == "" {
		return &ValidationError{Field: "password", Reason: "must not be empty"}
	}
	for _, f := range []struct{ name, value string }{{"first_name", a.FirstName}, {"last_name", a.LastName}} {
		if err := maxLength(f.name, f.value, 255); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) checkAccountRefs(ctx context.Context, a *models.Account) error {
	if err := s.requireRef(ctx, &models.AccountStatus{}, "account_status_id", a.AccountStatusID); err != nil {
		return err
	}
	return s.optionalRef(ctx, &models.Image{}, "image_id", a.ImageID)
}

// CreateAccount stores a new account. Password must already be hashed.
func (s *Store) CreateAccount(ctx context.Context, a *models.Account) error {
	if err := validateAccount(a); err != nil {
		return err
	}
	return s.Transaction(ctx, func(tx *Store) error {
		if err := tx.checkAccountRefs(ctx, a); err != nil {
			return err
		}
		return create(ctx, tx, a)
	})
}

func (s *Store) GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	return get[models.Account](ctx, s, id)
}

func (s *Store) GetAccountByUsername(ctx context.Context, username string) (*models.Account, error) {
	return findBy[models.Account](ctx, s, "username", strings.TrimSpace(username))
}

func (s *Store) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	return findBy[models.Account](ctx, s, "email", strings.ToLower(strings.TrimSpace(email)))
}

func (s *Store) ListAccounts(ctx context.Context, page Page) ([]models.Account, error) {
	return list[models.Account](ctx, s, page, "username")
}

func (s *Store) UpdateAccount(ctx context.Context, a *models.Account) error {
	if err := validateAccount(a); err != nil {
		return err
	}
	return s.Transaction(ctx, func(tx *Store) error {
		if err := tx.checkAccountRefs(ctx, a); err != nil {
			return err
		}
		return update(ctx, tx, a)
	})
}

// DeleteAccount removes the account together with its players (and their
// chats), the roles and game settings it authored, and its refresh tokens.
func (s *Store) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.Account](ctx, s, id)
}
