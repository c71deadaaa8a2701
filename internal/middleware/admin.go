package middleware

import (
	"crypto/subtle"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/repository"
	"github.com/gofiber/fiber/v2"
)

const adminTokenHeader = "X-Admin-Token"

// resolveAdmin marks the request as admin when it carries the configured
// X-Admin-Token, or when the authenticated account is flagged is_admin in the
// database. The token claim alone is not trusted since it outlives demotion.
func resolveAdmin(c *fiber.Ctx, store *repository.Store, cfg *config.Config) bool {
	if IsAdmin(c) {
		return true
	}
	if cfg.AdminToken != "" {
		got := c.Get(adminTokenHeader)
		if got != "" && subtle.ConstantTimeCompare([]byte(got), []byte(cfg.AdminToken)) == 1 {
			c.Locals("is_admin", true)
			return true
		}
	}
	accountID, err := AccountID(c)
	if err != nil {
		return false
	}
	account, err := store.GetAccount(c.UserContext(), accountID)
	if err == nil && account.IsAdmin {
		c.Locals("is_admin", true)
		return true
	}
	return false
}

// ResolveAdmin records admin rights for handlers that allow owner-or-admin
// writes. It never rejects a request.
func ResolveAdmin(store *repository.Store, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		resolveAdmin(c, store, cfg)
		return c.Next()
	}
}

func AdminRequired(store *repository.Store, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if resolveAdmin(c, store, cfg) {
			return c.Next()
		}
		if _, err := AccountID(c); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin access required",
		})
	}
}

// IsAdmin reports whether the request was resolved as admin earlier in the chain.
func IsAdmin(c *fiber.Ctx) bool {
	ok, _ := c.Locals("is_admin").(bool)
	return ok
}
