package handlers

import (
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ChatHandler struct {
	store *repository.Store
}

func NewChatHandler(store *repository.Store) *ChatHandler {
	return &ChatHandler{store: store}
}

// ownsPlayer reports whether the caller controls playerID. A missing player
// passes so the store can report it as a reference error.
func (h *ChatHandler) ownsPlayer(c *fiber.Ctx, playerID uuid.UUID) bool {
	player, err := h.store.GetPlayer(c.UserContext(), playerID)
	if err != nil {
		return true
	}
	return canActAs(c, player.AccountID)
}

// ownsChat reports whether the caller controls the author of chatID.
func (h *ChatHandler) ownsChat(c *fiber.Ctx, chatID uuid.UUID) bool {
	chat, err := h.store.GetChat(c.UserContext(), chatID)
	if err != nil {
		return true
	}
	return h.ownsPlayer(c, chat.AuthorID)
}

func forbiddenPlayer(c *fiber.Ctx) error {
	return fail(c, fiber.StatusForbidden, "Player belongs to another account")
}

func (h *ChatHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	chat, err := h.store.GetChat(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(chat)
}

func (h *ChatHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateChatRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if !h.ownsPlayer(c, req.AuthorID) {
		return forbiddenPlayer(c)
	}

	chat := &models.Chat{Text: req.Text, IsMafiaChat: req.IsMafiaChat, AuthorID: req.AuthorID}
	if err := h.store.CreateChat(c.UserContext(), chat); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(chat)
}

// Update edits the text and marks the chat modified.
func (h *ChatHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UpdateChatRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	chat, err := h.store.GetChat(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	if !h.ownsPlayer(c, chat.AuthorID) {
		return forbiddenPlayer(c)
	}

	chat.Text = req.Text
	chat.IsModified = true
	if err := h.store.UpdateChat(c.UserContext(), chat); err != nil {
		return respondError(c, err)
	}
	return c.JSON(chat)
}

func (h *ChatHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	chat, err := h.store.GetChat(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	if !h.ownsPlayer(c, chat.AuthorID) {
		return forbiddenPlayer(c)
	}
	if err := h.store.DeleteChat(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ChatHandler) ListReplies(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	replies, err := h.store.ListReplies(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return listed(c, replies, repository.Page{})
}

// AddReply links an existing chat as a reply to :id. The caller must own the reply.
func (h *ChatHandler) AddReply(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.ReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if !h.ownsChat(c, req.ReplyID) {
		return forbiddenPlayer(c)
	}
	link, err := h.store.CreateReply(c.UserContext(), id, req.ReplyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

func (h *ChatHandler) RemoveReply(c *fiber.Ctx) error {
	id, err := paramID(c, "reply_id")
	if err != nil {
		return respondError(c, err)
	}
	link, err := h.store.GetReply(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	if !h.ownsChat(c, link.ReplyID) {
		return forbiddenPlayer(c)
	}
	if err := h.store.DeleteReply(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
