package handlers

import (
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/repository"
	"github.com/gofiber/fiber/v2"
)

type ImageHandler struct {
	store *repository.Store
}

func NewImageHandler(store *repository.Store) *ImageHandler {
	return &ImageHandler{store: store}
}

func (h *ImageHandler) List(c *fiber.Ctx) error {
	p := page(c)
	images, err := h.store.ListImages(c.UserContext(), p)
	if err != nil {
		return respondError(c, err)
	}
	return listed(c, images, p)
}

func (h *ImageHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	img, err := h.store.GetImage(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(img)
}

func (h *ImageHandler) Create(c *fiber.Ctx) error {
	var req dto.ImageRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	img := &models.Image{FilePath: req.FilePath}
	if err := h.store.CreateImage(c.UserContext(), img); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(img)
}

func (h *ImageHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.ImageRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	img, err := h.store.GetImage(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	img.FilePath = req.FilePath
	if err := h.store.UpdateImage(c.UserContext(), img); err != nil {
		return respondError(c, err)
	}
	return c.JSON(img)
}

// Delete clears image_id on every account and role that used the image.
func (h *ImageHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.store.DeleteImage(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
