package handlers

import (
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/repository"
	"github.com/gofiber/fiber/v2"
)

type GameSettingHandler struct {
	store *repository.Store
}

func NewGameSettingHandler(store *repository.Store) *GameSettingHandler {
	return &GameSettingHandler{store: store}
}

func (h *GameSettingHandler) List(c *fiber.Ctx) error {
	p := page(c)
	settings, err := h.store.ListGameSettings(c.UserContext(), p)
	if err != nil {
		return respondError(c, err)
	}
	return listed(c, settings, p)
}

func (h *GameSettingHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	setting, err := h.store.GetGameSetting(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(setting)
}

func (h *GameSettingHandler) Create(c *fiber.Ctx) error {
	authorID, err := middleware.AccountID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var req dto.CreateGameSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	setting := &models.GameSetting{
		Name:        req.Name,
		Description: req.Description,
		IsDefault:   req.IsDefault,
		AuthorID:    authorID,
	}
	if err := h.store.CreateGameSetting(c.UserContext(), setting); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(setting)
}

func (h *GameSettingHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UpdateGameSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	setting, err := ownGameSetting(c, h.store, id)
	if err != nil {
		return respondError(c, err)
	}
	setIf(&setting.Name, req.Name)
	setIf(&setting.Description, req.Description)
	setIf(&setting.IsDefault, req.IsDefault)
	if err := h.store.UpdateGameSetting(c.UserContext(), setting); err != nil {
		return respondError(c, err)
	}
	return c.JSON(setting)
}

// Delete also removes every room played with the setting.
func (h *GameSettingHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if _, err := ownGameSetting(c, h.store, id); err != nil {
		return respondError(c, err)
	}
	if err := h.store.DeleteGameSetting(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *GameSettingHandler) ListRoles(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	quotas, err := h.store.ListGameSettingRoles(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return listed(c, quotas, repository.Page{})
}

func (h *GameSettingHandler) AddRole(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if _, err := ownGameSetting(c, h.store, id); err != nil {
		return respondError(c, err)
	}
	var req dto.GameSettingRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	count := int16(1)
	setIf(&count, req.Count)

	quota, err := h.store.AddGameSettingRole(c.UserContext(), id, req.RoleID, count)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(quota)
}

func (h *GameSettingHandler) SetRoleCount(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if _, err := ownGameSetting(c, h.store, id); err != nil {
		return respondError(c, err)
	}
	roleID, err := paramID(c, "role_id")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.RoleCountRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	quota, err := h.store.SetGameSettingRoleCount(c.UserContext(), id, roleID, req.Count)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(quota)
}

func (h *GameSettingHandler) RemoveRole(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if _, err := ownGameSetting(c, h.store, id); err != nil {
		return respondError(c, err)
	}
	roleID, err := paramID(c, "role_id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.store.RemoveGameSettingRole(c.UserContext(), id, roleID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
