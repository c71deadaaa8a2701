package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	resp, err := h.authService.Register(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	resp, err := h.authService.Login(c.UserContext(), &req)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return fail(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrAccountDisabled):
		return fail(c, fiber.StatusForbidden, err.Error())
	case err != nil:
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	resp, err := h.authService.Refresh(c.UserContext(), &req)
	switch {
	case errors.Is(err, services.ErrInvalidToken):
		return fail(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrAccountDisabled):
		return fail(c, fiber.StatusForbidden, err.Error())
	case err != nil:
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	if err := h.authService.Logout(c.UserContext(), &req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

// DeleteAccount removes the caller's own account after a password check.
func (h *AuthHandler) DeleteAccount(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.DeleteAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	err = h.authService.DeleteAccount(c.UserContext(), accountID, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		return fail(c, fiber.StatusUnauthorized, "Incorrect password. Please try again.")
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Account deleted successfully"})
}
