package handlers

import (
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PlayerHandler struct {
	store *repository.Store
}

func NewPlayerHandler(store *repository.Store) *PlayerHandler {
	return &PlayerHandler{store: store}
}

// List returns the caller's players, or those of ?account_id=.
func (h *PlayerHandler) List(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if raw := c.Query("account_id"); raw != "" {
		if accountID, err = uuid.Parse(raw); err != nil {
			return respondError(c, &repository.ValidationError{Field: "account_id", Reason: "must be a UUID"})
		}
	}
	p := page(c)
	players, err := h.store.ListPlayersByAccount(c.UserContext(), accountID, p)
	if err != nil {
		return respondError(c, err)
	}
	return listed(c, players, p)
}

func (h *PlayerHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	player, err := h.store.GetPlayer(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(player)
}

// Create seats the caller, or another account when an admin asks, with the
// joined status by default. Only admins, the current host, or the first
// claimant of an unhosted room may mark the player as room creator.
func (h *PlayerHandler) Create(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var req dto.CreatePlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if req.AccountID != nil && *req.AccountID != accountID {
		if !middleware.IsAdmin(c) {
			return respondError(c, forbidden("Only admins can seat another account"))
		}
		accountID = *req.AccountID
	}
	if req.IsRoomCreator {
		if err := claimRoomCreator(c, h.store, req.RoomID); err != nil {
			return respondError(c, err)
		}
	}

	player := &models.Player{
		AccountID:     accountID,
		RoomID:        req.RoomID,
		RoleID:        req.RoleID,
		IsRoomCreator: req.IsRoomCreator,
	}
	if req.StatusID != nil {
		player.StatusID = *req.StatusID
	} else {
		joined, err := h.store.GetStatusByTag(c.UserContext(), repository.StatusKindPlayer, models.PlayerStatusJoined)
		if err != nil {
			return respondError(c, err)
		}
		player.StatusID = joined.ID
	}

	if err := h.store.CreatePlayer(c.UserContext(), player); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(player)
}

func (h *PlayerHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UpdatePlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	player, err := managePlayer(c, h.store, id)
	if err != nil {
		return respondError(c, err)
	}
	wasCreator := player.IsRoomCreator
	setIf(&player.IsKilled, req.IsKilled)
	setIf(&player.IsVotedOut, req.IsVotedOut)
	setIf(&player.IsRoomCreator, req.IsRoomCreator)
	setIf(&player.StatusID, req.StatusID)
	if req.RoomID != nil {
		if player.RoomID, err = nullableID("room_id", *req.RoomID); err != nil {
			return respondError(c, err)
		}
	}
	if req.RoleID != nil {
		if player.RoleID, err = nullableID("role_id", *req.RoleID); err != nil {
			return respondError(c, err)
		}
	}
	if player.IsRoomCreator && !wasCreator {
		if err := claimRoomCreator(c, h.store, player.RoomID); err != nil {
			return respondError(c, err)
		}
	}
	if err := h.store.UpdatePlayer(c.UserContext(), player); err != nil {
		return respondError(c, err)
	}
	return c.JSON(player)
}

// Delete removes the player with its chats and event links.
func (h *PlayerHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if _, err := managePlayer(c, h.store, id); err != nil {
		return respondError(c, err)
	}
	if err := h.store.DeletePlayer(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *PlayerHandler) ListActionOverrides(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	links, err := h.store.ListPlayerActionOverrides(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return listed(c, links, repository.Page{})
}

func (h *PlayerHandler) AddActionOverride(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if _, err := managePlayer(c, h.store, id); err != nil {
		return respondError(c, err)
	}
	var req dto.ActionOverrideRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	allowed := true
	setIf(&allowed, req.IsAllowed)

	link, err := h.store.AddPlayerActionOverride(c.UserContext(), id, req.ActionID, allowed)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

func (h *PlayerHandler) SetActionOverride(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if _, err := managePlayer(c, h.store, id); err != nil {
		return respondError(c, err)
	}
	actionID, err := paramID(c, "action_id")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.AllowedRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	link, err := h.store.SetPlayerActionOverride(c.UserContext(), id, actionID, req.IsAllowed)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(link)
}

func (h *PlayerHandler) RemoveActionOverride(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if _, err := managePlayer(c, h.store, id); err != nil {
		return respondError(c, err)
	}
	actionID, err := paramID(c, "action_id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.store.RemovePlayerActionOverride(c.UserContext(), id, actionID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *PlayerHandler) ListTriggeredEvents(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	links, err := h.store.ListPlayerTriggerEvents(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return listed(c, links, repository.Page{})
}

func (h *PlayerHandler) AddTriggeredEvent(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if _, err := managePlayer(c, h.store, id); err != nil {
		return respondError(c, err)
	}
	var req dto.PlayerEventRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	link, err := h.store.AddPlayerTriggerEvent(c.UserContext(), id, req.GameEventID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

func (h *PlayerHandler) RemoveTriggeredEvent(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if _, err := managePlayer(c, h.store, id); err != nil {
		return respondError(c, err)
	}
	eventID, err := paramID(c, "event_id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.store.RemovePlayerTriggerEvent(c.UserContext(), id, eventID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *PlayerHandler) ListInfluencedEvents(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	links, err := h.store.ListPlayerInfluenceEvents(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return listed(c, links, repository.Page{})
}

func (h *PlayerHandler) AddInfluencedEvent(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if _, err := managePlayer(c, h.store, id); err != nil {
		return respondError(c, err)
	}
	var req dto.PlayerEventRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	link, err := h.store.AddPlayerInfluenceEvent(c.UserContext(), id, req.GameEventID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

func (h *PlayerHandler) RemoveInfluencedEvent(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if _, err := managePlayer(c, h.store, id); err != nil {
		return respondError(c, err)
	}
	eventID, err := paramID(c, "event_id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.store.RemovePlayerInfluenceEvent(c.UserContext(), id, eventID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *PlayerHandler) ListEventInfluences(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	links, err := h.store.ListEventInfluencePlayers(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return listed(c, links, repository.Page{})
}

func (h *PlayerHandler) AddEventInfluence(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if _, err := managePlayer(c, h.store, id); err != nil {
		return respondError(c, err)
	}
	var req dto.EventInfluenceRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	allowed := true
	setIf(&allowed, req.IsAllowed)

	link, err := h.store.AddEventInfluencePlayer(c.UserContext(), id, req.GameEventID, allowed)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

func (h *PlayerHandler) SetEventInfluence(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if _, err := managePlayer(c, h.store, id); err != nil {
		return respondError(c, err)
	}
	eventID, err := paramID(c, "event_id")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.AllowedRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	link, err := h.store.SetEventInfluencePlayer(c.UserContext(), id, eventID, req.IsAllowed)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(link)
}

func (h *PlayerHandler) RemoveEventInfluence(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if _, err := managePlayer(c, h.store, id); err != nil {
		return respondError(c, err)
	}
	eventID, err := paramID(c, "event_id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.store.RemoveEventInfluencePlayer(c.UserContext(), id, eventID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
