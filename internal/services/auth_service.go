package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

var (
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
	ErrAccountDisabled    = errors.New("account is banned")
)

type AuthService struct {
	store *repository.Store
	cfg   *config.Config
}

func NewAuthService(store *repository.Store, cfg *config.Config) *AuthService {
	return &AuthService{store: store, cfg: cfg}
}

// Register creates an active account. Username and email collisions surface
// as repository.ErrConflict.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if len(req.Password) < minPasswordLength {
		return nil, &repository.ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}

	active, err := s.store.GetStatusByTag(ctx, repository.StatusKindAccount, models.AccountStatusActive)
	if err != nil {
		return nil, fmt.Errorf("load active status: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		Username:        req.Username,
		Email:           req.Email,
		Password:        string(hash),
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		AccountStatusID: active.ID,
	}
	if err := s.store.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	slog.Info("account registered", "account_id", account.ID.String())
	return s.generateTokenPair(ctx, account)
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	account, err := s.findByLogin(ctx, req.Login)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := s.ensureEnabled(ctx, account); err != nil {
		return nil, err
	}

	return s.generateTokenPair(ctx, account)
}

func (s *AuthService) findByLogin(ctx context.Context, login string) (*models.Account, error) {
	account, err := s.store.GetAccountByUsername(ctx, login)
	if errors.Is(err, repository.ErrNotFound) && strings.Contains(login, "@") {
		return s.store.GetAccountByEmail(ctx, login)
	}
	return account, err
}

func (s *AuthService) ensureEnabled(ctx context.Context, account *models.Account) error {
	status, err := s.store.GetStatus(ctx, repository.StatusKindAccount, account.AccountStatusID)
	if err != nil {
		return fmt.Errorf("load account status: %w", err)
	}
	if status.Tag == models.AccountStatusBanned {
		return ErrAccountDisabled
	}
	return nil
}

// Refresh rotates a refresh token: the presented one is revoked and a new pair issued.
func (s *AuthService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	tokenHash := hashToken(req.RefreshToken)

	stored, err := s.store.GetActiveRefreshToken(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	if err := s.store.RevokeRefreshToken(ctx, tokenHash); err != nil {
		return nil, err
	}
	if time.Now().After(stored.ExpiresAt) {
		return nil, ErrInvalidToken
	}

	account, err := s.store.GetAccount(ctx, stored.AccountID)
	if err != nil {
		return nil, fmt.Errorf("account not found: %w", err)
	}
	if err := s.ensureEnabled(ctx, account); err != nil {
		return nil, err
	}

	return s.generateTokenPair(ctx, account)
}

func (s *AuthService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	return s.store.RevokeRefreshToken(ctx, hashToken(req.RefreshToken))
}

// DeleteAccount checks the password, then removes the account and everything it owns.
func (s *AuthService) DeleteAccount(ctx context.Context, accountID uuid.UUID, password string) error {
	account, err := s.store.GetAccount(ctx, accountID)
	if err != nil {
		return err
	}
	if password == "" {
		return &repository.ValidationError{Field: "password", Reason: "is required"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}

	if err := s.store.DeleteAccount(ctx, accountID); err != nil {
		return err
	}
	slog.Info("account deleted", "account_id", accountID.String())
	return nil
}

// HashPassword is used when an account changes its password.
func HashPassword(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", &repository.ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (s *AuthService) generateTokenPair(ctx context.Context, account *models.Account) (*dto.AuthResponse, error) {
	accessToken, err := s.generateAccessToken(account)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateRefreshToken(ctx, account)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Account: dto.AccountResponse{
			ID:       account.ID,
			Username: account.Username,
			Email:    account.Email,
			IsAdmin:  account.IsAdmin,
		},
	}, nil
}

func (s *AuthService) generateAccessToken(account *models.Account) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      account.ID.String(),
		"username": account.Username,
		"is_admin": account.IsAdmin,
		"iat":      now.Unix(),
		"exp":      now.Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) generateRefreshToken(ctx context.Context, account *models.Account) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	rawToken := base64.URLEncoding.EncodeToString(rawBytes)
	expiresAt := time.Now().Add(s.cfg.JWTRefreshExpiry)
	if _, err := s.store.CreateRefreshToken(ctx, account.ID, hashToken(rawToken), expiresAt); err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rawToken, nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
