package handlers

import (
	"fmt"
	"math"
	"time"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/repository"
	"github.com/gofiber/fiber/v2"
)

type GameEventHandler struct {
	store *repository.Store
}

func NewGameEventHandler(store *repository.Store) *GameEventHandler {
	return &GameEventHandler{store: store}
}

// maxTimerSeconds is the largest whole-second timer a time.Duration can hold.
const maxTimerSeconds = math.MaxInt64 / int64(time.Second)

func secondsToTimer(secs *int64) (*time.Duration, error) {
	if secs == nil {
		return nil, nil
	}
	if *secs < 0 || *secs > maxTimerSeconds {
		return nil, &repository.ValidationError{
			Field:  "timer_seconds",
			Reason: fmt.Sprintf("must be between 0 and %d", maxTimerSeconds),
		}
	}
	d := time.Duration(*secs) * time.Second
	return &d, nil
}

func (h *GameEventHandler) List(c *fiber.Ctx) error {
	p := page(c)
	events, err := h.store.ListGameEvents(c.UserContext(), p)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.GameEventResponse, len(events))
	for i := range events {
		out[i] = dto.NewGameEventResponse(&events[i])
	}
	return listed(c, out, p)
}

func (h *GameEventHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	event, err := h.store.GetGameEvent(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewGameEventResponse(event))
}

func (h *GameEventHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateGameEventRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	timer, err := secondsToTimer(req.TimerSeconds)
	if err != nil {
		return respondError(c, err)
	}
	event := &models.GameEvent{
		Name:       req.Name,
		NightOrder: req.NightOrder,
		Type:       req.Type,
		IsVisible:  req.IsVisible,
		Timer:      timer,
		ActionID:   req.ActionID,
	}
	if err := h.store.CreateGameEvent(c.UserContext(), event); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewGameEventResponse(event))
}

func (h *GameEventHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UpdateGameEventRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	event, err := h.store.GetGameEvent(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	setIf(&event.Name, req.Name)
	setIf(&event.NightOrder, req.NightOrder)
	setIf(&event.IsVisible, req.IsVisible)
	setIf(&event.ActionID, req.ActionID)
	if req.Type != nil {
		event.Type = req.Type
	}
	if req.TimerSeconds != nil {
		if event.Timer, err = secondsToTimer(req.TimerSeconds); err != nil {
			return respondError(c, err)
		}
	}
	if err := h.store.UpdateGameEvent(c.UserContext(), event); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewGameEventResponse(event))
}

func (h *GameEventHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.store.DeleteGameEvent(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
