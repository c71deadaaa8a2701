package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

// Setup mounts the API under /api. Reads of reference data need a token;
// writes to statuses, images, actions and game events need an admin. Roles,
// game settings, rooms and players are changed by their owner or an admin.
func Setup(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	store := repository.New(db)
	authService := services.NewAuthService(store, cfg)

	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler(db)
	accountHandler := handlers.NewAccountHandler(store)
	statusHandler := handlers.NewStatusHandler(store)
	imageHandler := handlers.NewImageHandler(store)
	actionHandler := handlers.NewActionHandler(store)
	roleHandler := handlers.NewRoleHandler(store)
	settingHandler := handlers.NewGameSettingHandler(store)
	roomHandler := handlers.NewRoomHandler(store)
	eventHandler := handlers.NewGameEventHandler(store)
	playerHandler := handlers.NewPlayerHandler(store)
	chatHandler := handlers.NewChatHandler(store)

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)
	api.Get("/rooms/code/:code", roomHandler.GetByCode)

	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	jwt := middleware.JWTProtected(cfg)
	admin := middleware.AdminRequired(store, cfg)
	// owner-or-admin writes
	ownerOrAdmin := middleware.ResolveAdmin(store, cfg)

	api.Post("/auth/logout", jwt, authHandler.Logout)

	accounts := api.Group("/accounts", jwt)
	accounts.Get("/me", accountHandler.Me)
	accounts.Patch("/me", accountHandler.UpdateMe)
	accounts.Delete("/me", authHandler.DeleteAccount)
	accounts.Get("/", admin, accountHandler.List)
	accounts.Get("/:id", admin, accountHandler.Get)
	accounts.Patch("/:id", admin, accountHandler.AdminUpdate)
	accounts.Delete("/:id", admin, accountHandler.Delete)

	statuses := api.Group("/statuses/:kind", jwt)
	statuses.Get("/", statusHandler.List)
	statuses.Post("/", admin, statusHandler.Create)
	statuses.Patch("/:id", admin, statusHandler.Rename)
	statuses.Delete("/:id", admin, statusHandler.Delete)

	images := api.Group("/images", jwt)
	images.Get("/", imageHandler.List)
	images.Get("/:id", imageHandler.Get)
	images.Post("/", admin, imageHandler.Create)
	images.Patch("/:id", admin, imageHandler.Update)
	images.Delete("/:id", admin, imageHandler.Delete)

	actions := api.Group("/actions", jwt)
	actions.Get("/", actionHandler.List)
	actions.Get("/:id", actionHandler.Get)
	actions.Post("/", admin, actionHandler.Create)
	actions.Patch("/:id", admin, actionHandler.Update)
	actions.Delete("/:id", admin, actionHandler.Delete)

	events := api.Group("/game-events", jwt)
	events.Get("/", eventHandler.List)
	events.Get("/:id", eventHandler.Get)
	events.Post("/", admin, eventHandler.Create)
	events.Patch("/:id", admin, eventHandler.Update)
	events.Delete("/:id", admin, eventHandler.Delete)

	roles := api.Group("/roles", jwt, ownerOrAdmin)
	roles.Get("/", roleHandler.List)
	roles.Post("/", roleHandler.Create)
	roles.Get("/:id", roleHandler.Get)
	roles.Patch("/:id", roleHandler.Update)
	roles.Delete("/:id", roleHandler.Delete)
	roles.Get("/:id/actions", roleHandler.ListActions)
	roles.Post("/:id/actions", roleHandler.AddAction)
	roles.Delete("/:id/actions/:action_id", roleHandler.RemoveAction)

	settings := api.Group("/game-settings", jwt, ownerOrAdmin)
	settings.Get("/", settingHandler.List)
	settings.Post("/", settingHandler.Create)
	settings.Get("/:id", settingHandler.Get)
	settings.Patch("/:id", settingHandler.Update)
	settings.Delete("/:id", settingHandler.Delete)
	settings.Get("/:id/roles", settingHandler.ListRoles)
	settings.Post("/:id/roles", settingHandler.AddRole)
	settings.Patch("/:id/roles/:role_id", settingHandler.SetRoleCount)
	settings.Delete("/:id/roles/:role_id", settingHandler.RemoveRole)

	rooms := api.Group("/rooms", jwt, ownerOrAdmin)
	rooms.Get("/", roomHandler.List)
	rooms.Post("/", roomHandler.Create)
	rooms.Get("/:id", roomHandler.Get)
	rooms.Patch("/:id", roomHandler.Update)
	rooms.Delete("/:id", roomHandler.Delete)
	rooms.Get("/:id/players", roomHandler.ListPlayers)
	rooms.Get("/:id/chats", roomHandler.ListChats)

	players := api.Group("/players", jwt, ownerOrAdmin)
	players.Get("/", playerHandler.List)
	players.Post("/", playerHandler.Create)
	players.Get("/:id", playerHandler.Get)
	players.Patch("/:id", playerHandler.Update)
	players.Delete("/:id", playerHandler.Delete)
	players.Get("/:id/action-overrides", playerHandler.ListActionOverrides)
	players.Post("/:id/action-overrides", playerHandler.AddActionOverride)
	players.Patch("/:id/action-overrides/:action_id", playerHandler.SetActionOverride)
	players.Delete("/:id/action-overrides/:action_id", playerHandler.RemoveActionOverride)
	players.Get("/:id/triggered-events", playerHandler.ListTriggeredEvents)
	players.Post("/:id/triggered-events", playerHandler.AddTriggeredEvent)
	players.Delete("/:id/triggered-events/:event_id", playerHandler.RemoveTriggeredEvent)
	players.Get("/:id/influenced-events", playerHandler.ListInfluencedEvents)
	players.Post("/:id/influenced-events", playerHandler.AddInfluencedEvent)
	players.Delete("/:id/influenced-events/:event_id", playerHandler.RemoveInfluencedEvent)
	players.Get("/:id/event-influences", playerHandler.ListEventInfluences)
	players.Post("/:id/event-influences", playerHandler.AddEventInfluence)
	players.Patch("/:id/event-influences/:event_id", playerHandler.SetEventInfluence)
	players.Delete("/:id/event-influences/:event_id", playerHandler.RemoveEventInfluence)

	chats := api.Group("/chats", jwt, ownerOrAdmin)
	chats.Post("/", chatHandler.Create)
	chats.Get("/:id", chatHandler.Get)
	chats.Patch("/:id", chatHandler.Update)
	chats.Delete("/:id", chatHandler.Delete)
	chats.Get("/:id/replies", chatHandler.ListReplies)
	chats.Post("/:id/replies", chatHandler.AddReply)
	chats.Delete("/:id/replies/:reply_id", chatHandler.RemoveReply)
}
