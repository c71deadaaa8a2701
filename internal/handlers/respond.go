package handlers

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/repository"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// statusFor maps the store's error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	var fe *forbiddenError
	switch {
	case errors.As(err, &fe):
		return fiber.StatusForbidden
	case errors.Is(err, repository.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, repository.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, repository.ErrReferentialIntegrity):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, repository.ErrNotFound):
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
}

// respondError writes err with its mapped status. 5xx details are logged and
// reported, never returned.
func respondError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status < fiber.StatusInternalServerError {
		return fail(c, status, err.Error())
	}

	slog.Error("request failed", logAttrs(c, err)...)
	if hub := sentryfiber.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}
	return fail(c, status, "Internal server error")
}

// logAttrs describes a failed request for the log. account_id and room_id are
// added when the request carries them.
func logAttrs(c *fiber.Ctx, err error) []any {
	route := c.Route().Path
	attrs := []any{
		"request_id", requestID(c),
		"action", c.Method() + " " + route,
		"error", err.Error(),
	}
	if accountID, err := middleware.AccountID(c); err == nil {
		attrs = append(attrs, "account_id", accountID.String())
	}
	if strings.HasPrefix(route, "/api/rooms/:id") {
		if roomID, err := uuid.Parse(c.Params("id")); err == nil {
			attrs = append(attrs, "room_id", roomID.String())
		}
	}
	return attrs
}

func invalidBody(c *fiber.Ctx) error {
	return fail(c, fiber.StatusBadRequest, "Invalid request body")
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}

func paramID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, &repository.ValidationError{Field: name, Reason: "must be a UUID"}
	}
	return id, nil
}

func page(c *fiber.Ctx) repository.Page {
	return repository.Page{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")}
}

func listed[T any](c *fiber.Ctx, items []T, p repository.Page) error {
	if items == nil {
		items = []T{}
	}
	return c.JSON(dto.ListResponse[T]{Items: items, Limit: p.Limit, Offset: p.Offset})
}

// nullableID parses a PATCH reference: "" clears it.
func nullableID(field, raw string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, &repository.ValidationError{Field: field, Reason: "must be a UUID"}
	}
	return &id, nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
