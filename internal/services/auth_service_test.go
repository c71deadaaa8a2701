package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/testutil"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func newAuthService(t *testing.T) (*services.AuthService, *repository.Store) {
	t.Helper()
	store := repository.New(testutil.NewDB(t))
	cfg := &config.Config{
		JWTSecret:        testSecret,
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: time.Hour,
	}
	return services.NewAuthService(store, cfg), store
}

func register(t *testing.T, svc *services.AuthService, username string) *dto.AuthResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return resp
}

func TestRegisterIssuesTokens(t *testing.T) {
	svc, store := newAuthService(t)
	resp := register(t, svc, "alice")

	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("expected both tokens")
	}

	token, err := jwt.Parse(resp.AccessToken, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["sub"] != resp.Account.ID.String() || claims["username"] != "alice" {
		t.Fatalf("unexpected claims: %v", claims)
	}

	acc, err := store.GetAccount(context.Background(), resp.Account.ID)
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	if acc.Password == "correct-horse" {
		t.Fatal("password stored in clear text")
	}
}

func TestRegisterRejectsShortPasswordAndDuplicates(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Username: "bob", Email: "bob@example.com", Password: "short"})
	if !errors.Is(err, repository.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	register(t, svc, "bob")
	_, err = svc.Register(ctx, &dto.RegisterRequest{Username: "bob", Email: "other@example.com", Password: "long-enough"})
	if !errors.Is(err, repository.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()
	register(t, svc, "carol")

	for _, login := range []string{"carol", "Carol@Example.com"} {
		if _, err := svc.Login(ctx, &dto.LoginRequest{Login: login, Password: "correct-horse"}); err != nil {
			t.Fatalf("login as %q: %v", login, err)
		}
	}

	if _, err := svc.Login(ctx, &dto.LoginRequest{Login: "carol", Password: "wrong-horse"}); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, &dto.LoginRequest{Login: "nobody", Password: "correct-horse"}); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown login, got %v", err)
	}
}

func TestLoginRefusesBannedAccount(t *testing.T) {
	svc, store := newAuthService(t)
	ctx := context.Background()
	resp := register(t, svc, "dave")

	banned, err := store.GetStatusByTag(ctx, repository.StatusKindAccount, models.AccountStatusBanned)
	if err != nil {
		t.Fatalf("banned status: %v", err)
	}
	acc, err := store.GetAccount(ctx, resp.Account.ID)
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	acc.AccountStatusID = banned.ID
	if err := store.UpdateAccount(ctx, acc); err != nil {
		t.Fatalf("ban account: %v", err)
	}

	if _, err := svc.Login(ctx, &dto.LoginRequest{Login: "dave", Password: "correct-horse"}); !errors.Is(err, services.ErrAccountDisabled) {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
	if _, err := svc.Refresh(ctx, &dto.RefreshRequest{RefreshToken: resp.RefreshToken}); !errors.Is(err, services.ErrAccountDisabled) {
		t.Fatalf("expected ErrAccountDisabled on refresh, got %v", err)
	}
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()
	first := register(t, svc, "erin")

	second, err := svc.Refresh(ctx, &dto.RefreshRequest{RefreshToken: first.RefreshToken})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if second.RefreshToken == first.RefreshToken {
		t.Fatal("expected a new refresh token")
	}
	if _, err := svc.Refresh(ctx, &dto.RefreshRequest{RefreshToken: first.RefreshToken}); !errors.Is(err, services.ErrInvalidToken) {
		t.Fatalf("expected reused token to be rejected, got %v", err)
	}

	if err := svc.Logout(ctx, &dto.LogoutRequest{RefreshToken: second.RefreshToken}); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.Refresh(ctx, &dto.RefreshRequest{RefreshToken: second.RefreshToken}); !errors.Is(err, services.ErrInvalidToken) {
		t.Fatalf("expected logged out token to be rejected, got %v", err)
	}
}

func TestDeleteAccount(t *testing.T) {
	svc, store := newAuthService(t)
	ctx := context.Background()
	resp := register(t, svc, "frank")

	if err := svc.DeleteAccount(ctx, resp.Account.ID, ""); !errors.Is(err, repository.ErrValidation) {
		t.Fatalf("expected ErrValidation without password, got %v", err)
	}
	if err := svc.DeleteAccount(ctx, resp.Account.ID, "wrong-horse"); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if err := svc.DeleteAccount(ctx, resp.Account.ID, "correct-horse"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.GetAccount(ctx, resp.Account.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected account gone, got %v", err)
	}
}
