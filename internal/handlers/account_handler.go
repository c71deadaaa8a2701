package handlers

import (
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

type AccountHandler struct {
	store *repository.Store
}

func NewAccountHandler(store *repository.Store) *AccountHandler {
	return &AccountHandler{store: store}
}

func (h *AccountHandler) Me(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	account, err := h.store.GetAccount(c.UserContext(), accountID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(account)
}

func (h *AccountHandler) UpdateMe(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var req dto.UpdateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	account, err := h.store.GetAccount(c.UserContext(), accountID)
	if err != nil {
		return respondError(c, err)
	}
	if err := applyAccountUpdate(account, &req); err != nil {
		return respondError(c, err)
	}
	if err := h.store.UpdateAccount(c.UserContext(), account); err != nil {
		return respondError(c, err)
	}
	return c.JSON(account)
}

func applyAccountUpdate(a *models.Account, req *dto.UpdateAccountRequest) error {
	setIf(&a.Username, req.Username)
	setIf(&a.Email, req.Email)
	setIf(&a.FirstName, req.FirstName)
	setIf(&a.LastName, req.LastName)
	setIf(&a.BioInfo, req.BioInfo)

	if req.Password != nil {
		hash, err := services.HashPassword(*req.Password)
		if err != nil {
			return err
		}
		a.Password = hash
	}
	if req.DateOfBirth != nil {
		raw := strings.TrimSpace(*req.DateOfBirth)
		if raw == "" {
			a.DateOfBirth = nil
		} else {
			t, err := time.Parse(time.DateOnly, raw)
			if err != nil {
				return &repository.ValidationError{Field: "date_of_birth", Reason: "must be YYYY-MM-DD"}
			}
			d := datatypes.Date(t)
			a.DateOfBirth = &d
		}
	}
	if req.ImageID != nil {
		id, err := nullableID("image_id", *req.ImageID)
		if err != nil {
			return err
		}
		a.ImageID = id
	}
	return nil
}

func (h *AccountHandler) List(c *fiber.Ctx) error {
	p := page(c)
	accounts, err := h.store.ListAccounts(c.UserContext(), p)
	if err != nil {
		return respondError(c, err)
	}
	return listed(c, accounts, p)
}

func (h *AccountHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	account, err := h.store.GetAccount(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(account)
}

// AdminUpdate changes moderation fields: status, admin flag, verification.
func (h *AccountHandler) AdminUpdate(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.AdminUpdateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	account, err := h.store.GetAccount(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	setIf(&account.AccountStatusID, req.AccountStatusID)
	setIf(&account.IsAdmin, req.IsAdmin)
	setIf(&account.IsEmailVerified, req.IsEmailVerified)

	if err := h.store.UpdateAccount(c.UserContext(), account); err != nil {
		return respondError(c, err)
	}
	return c.JSON(account)
}

func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.store.DeleteAccount(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
