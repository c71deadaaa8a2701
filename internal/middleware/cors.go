package middleware

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS allows browser clients of the game API. Request ids are exposed so a
// client can quote them when reporting an error.
func CORS(cfg *config.Config) fiber.Handler {
	origins := strings.TrimSpace(cfg.CORSOrigins)
	if origins == "" {
		origins = "*"
	}
	return cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: strings.Join([]string{
			fiber.HeaderOrigin, fiber.HeaderContentType, fiber.HeaderAuthorization,
			fiber.HeaderAccept, adminTokenHeader, fiber.HeaderXRequestID,
		}, ", "),
		AllowMethods:  "GET, POST, PATCH, DELETE, OPTIONS",
		ExposeHeaders: fiber.HeaderXRequestID,
		MaxAge:        600,
	})
}
