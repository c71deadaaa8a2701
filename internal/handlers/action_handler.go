package handlers

import (
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/repository"
	"github.com/gofiber/fiber/v2"
)

type ActionHandler struct {
	store *repository.Store
}

func NewActionHandler(store *repository.Store) *ActionHandler {
	return &ActionHandler{store: store}
}

func (h *ActionHandler) List(c *fiber.Ctx) error {
	p := page(c)
	actions, err := h.store.ListActions(c.UserContext(), p)
	if err != nil {
		return respondError(c, err)
	}
	return listed(c, actions, p)
}

func (h *ActionHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	action, err := h.store.GetAction(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(action)
}

func (h *ActionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateActionRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	action := &models.Action{Name: req.Name, Description: req.Description}
	if err := h.store.CreateAction(c.UserContext(), action); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(action)
}

func (h *ActionHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UpdateActionRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	action, err := h.store.GetAction(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	setIf(&action.Name, req.Name)
	setIf(&action.Description, req.Description)
	if err := h.store.UpdateAction(c.UserContext(), action); err != nil {
		return respondError(c, err)
	}
	return c.JSON(action)
}

func (h *ActionHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.store.DeleteAction(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
