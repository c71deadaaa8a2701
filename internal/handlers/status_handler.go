package handlers

import (
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/repository"
	"github.com/gofiber/fiber/v2"
)

// StatusHandler serves the account, room and player status tables under /statuses/:kind.
type StatusHandler struct {
	store *repository.Store
}

func NewStatusHandler(store *repository.Store) *StatusHandler {
	return &StatusHandler{store: store}
}

func kindParam(c *fiber.Ctx) repository.StatusKind {
	return repository.StatusKind(c.Params("kind"))
}

func (h *StatusHandler) List(c *fiber.Ctx) error {
	rows, err := h.store.ListStatuses(c.UserContext(), kindParam(c))
	if err != nil {
		return respondError(c, err)
	}
	return listed(c, rows, repository.Page{})
}

func (h *StatusHandler) Create(c *fiber.Ctx) error {
	var req dto.StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	row, err := h.store.CreateStatus(c.UserContext(), kindParam(c), req.Tag)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

func (h *StatusHandler) Rename(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	row, err := h.store.RenameStatus(c.UserContext(), kindParam(c), id, req.Tag)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(row)
}

func (h *StatusHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.store.DeleteStatus(c.UserContext(), kindParam(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
