package handlers

import (
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/repository"
	"github.com/gofiber/fiber/v2"
)

type RoomHandler struct {
	store *repository.Store
}

func NewRoomHandler(store *repository.Store) *RoomHandler {
	return &RoomHandler{store: store}
}

func (h *RoomHandler) List(c *fiber.Ctx) error {
	p := page(c)
	rooms, err := h.store.ListRooms(c.UserContext(), p)
	if err != nil {
		return respondError(c, err)
	}
	return listed(c, rooms, p)
}

func (h *RoomHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	room, err := h.store.GetRoom(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(room)
}

// GetByCode resolves a join code. Codes match case-insensitively.
func (h *RoomHandler) GetByCode(c *fiber.Ctx) error {
	room, err := h.store.GetRoomByAccessCode(c.UserContext(), c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(room)
}

// Create opens a room in the waiting status unless another is given and
// seats the caller as its creator. An omitted access code is generated.
func (h *RoomHandler) Create(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var req dto.CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	room := &models.Room{
		Name:          req.Name,
		AccessCode:    req.AccessCode,
		GameSettingID: req.GameSettingID,
		GameStartTime: req.GameStartTime,
		GameEndTime:   req.GameEndTime,
	}
	if req.StatusID != nil {
		room.StatusID = *req.StatusID
	} else {
		waiting, err := h.store.GetStatusByTag(c.UserContext(), repository.StatusKindRoom, models.RoomStatusWaiting)
		if err != nil {
			return respondError(c, err)
		}
		room.StatusID = waiting.ID
	}

	joined, err := h.store.GetStatusByTag(c.UserContext(), repository.StatusKindPlayer, models.PlayerStatusJoined)
	if err != nil {
		return respondError(c, err)
	}
	host := &models.Player{AccountID: accountID, StatusID: joined.ID}
	if err := h.store.OpenRoom(c.UserContext(), room, host); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(room)
}

func (h *RoomHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UpdateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	room, err := ownRoom(c, h.store, id)
	if err != nil {
		return respondError(c, err)
	}
	setIf(&room.Name, req.Name)
	setIf(&room.AccessCode, req.AccessCode)
	setIf(&room.GameSettingID, req.GameSettingID)
	setIf(&room.StatusID, req.StatusID)
	if req.GameStartTime != nil {
		room.GameStartTime = req.GameStartTime
	}
	if req.GameEndTime != nil {
		room.GameEndTime = req.GameEndTime
	}
	if err := h.store.UpdateRoom(c.UserContext(), room); err != nil {
		return respondError(c, err)
	}
	return c.JSON(room)
}

// Delete keeps the room's players and clears their room_id.
func (h *RoomHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if _, err := ownRoom(c, h.store, id); err != nil {
		return respondError(c, err)
	}
	if err := h.store.DeleteRoom(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *RoomHandler) ListPlayers(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if _, err := h.store.GetRoom(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	players, err := h.store.ListPlayersByRoom(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return listed(c, players, repository.Page{})
}

// ListChats returns the room's public chat. ?mafia=true includes mafia chat.
func (h *RoomHandler) ListChats(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	p := page(c)
	chats, err := h.store.ListChatsByRoom(c.UserContext(), id, c.QueryBool("mafia"), p)
	if err != nil {
		return respondError(c, err)
	}
	return listed(c, chats, p)
}
