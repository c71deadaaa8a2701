package handlers

import (
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/repository"
	"github.com/gofiber/fiber/v2"
)

type RoleHandler struct {
	store *repository.Store
}

func NewRoleHandler(store *repository.Store) *RoleHandler {
	return &RoleHandler{store: store}
}

func (h *RoleHandler) List(c *fiber.Ctx) error {
	p := page(c)
	roles, err := h.store.ListRoles(c.UserContext(), p)
	if err != nil {
		return respondError(c, err)
	}
	return listed(c, roles, p)
}

func (h *RoleHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	role, err := h.store.GetRole(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(role)
}

// Create stores a role authored by the caller.
func (h *RoleHandler) Create(c *fiber.Ctx) error {
	authorID, err := middleware.AccountID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var req dto.CreateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	role := &models.Role{
		Name:        req.Name,
		Description: req.Description,
		IsDefault:   req.IsDefault,
		IsMafia:     req.IsMafia,
		ImageID:     req.ImageID,
		AuthorID:    authorID,
	}
	if err := h.store.CreateRole(c.UserContext(), role); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(role)
}

func (h *RoleHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	role, err := ownRole(c, h.store, id)
	if err != nil {
		return respondError(c, err)
	}
	setIf(&role.Name, req.Name)
	setIf(&role.Description, req.Description)
	setIf(&role.IsDefault, req.IsDefault)
	setIf(&role.IsMafia, req.IsMafia)
	if req.ImageID != nil {
		if role.ImageID, err = nullableID("image_id", *req.ImageID); err != nil {
			return respondError(c, err)
		}
	}
	if err := h.store.UpdateRole(c.UserContext(), role); err != nil {
		return respondError(c, err)
	}
	return c.JSON(role)
}

// Delete clears role_id on players holding the role.
func (h *RoleHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if _, err := ownRole(c, h.store, id); err != nil {
		return respondError(c, err)
	}
	if err := h.store.DeleteRole(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *RoleHandler) ListActions(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	actions, err := h.store.ListRoleActions(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return listed(c, actions, repository.Page{})
}

func (h *RoleHandler) AddAction(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if _, err := ownRole(c, h.store, id); err != nil {
		return respondError(c, err)
	}
	var req dto.RoleActionRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	link, err := h.store.AddRoleAction(c.UserContext(), id, req.ActionID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

func (h *RoleHandler) RemoveAction(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if _, err := ownRole(c, h.store, id); err != nil {
		return respondError(c, err)
	}
	actionID, err := paramID(c, "action_id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.store.RemoveRoleAction(c.UserContext(), id, actionID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
