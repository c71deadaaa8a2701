package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// forbiddenError is answered with 403 by respondError.
type forbiddenError struct {
	msg string
}

func (e *forbiddenError) Error() string { return e.msg }

func forbidden(msg string) error {
	return &forbiddenError{msg: msg}
}

// canActAs reports whether the caller is accountID or an admin.
func canActAs(c *fiber.Ctx, accountID uuid.UUID) bool {
	if middleware.IsAdmin(c) {
		return true
	}
	caller, err := middleware.AccountID(c)
	return err == nil && caller == accountID
}

// hostsRoom reports whether the caller is an admin or the account seated as
// the room's creator.
func hostsRoom(c *fiber.Ctx, store *repository.Store, roomID uuid.UUID) (bool, error) {
	if middleware.IsAdmin(c) {
		return true, nil
	}
	host, err := store.GetRoomCreator(c.UserContext(), roomID)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return canActAs(c, host.AccountID), nil
}

func ownRole(c *fiber.Ctx, store *repository.Store, id uuid.UUID) (*models.Role, error) {
	role, err := store.GetRole(c.UserContext(), id)
	if err != nil {
		return nil, err
	}
	if !canActAs(c, role.AuthorID) {
		return nil, forbidden("Role belongs to another account")
	}
	return role, nil
}

func ownGameSetting(c *fiber.Ctx, store *repository.Store, id uuid.UUID) (*models.GameSetting, error) {
	setting, err := store.GetGameSetting(c.UserContext(), id)
	if err != nil {
		return nil, err
	}
	if !canActAs(c, setting.AuthorID) {
		return nil, forbidden("Game setting belongs to another account")
	}
	return setting, nil
}

func ownRoom(c *fiber.Ctx, store *repository.Store, id uuid.UUID) (*models.Room, error) {
	room, err := store.GetRoom(c.UserContext(), id)
	if err != nil {
		return nil, err
	}
	ok, err := hostsRoom(c, store, room.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, forbidden("Only the room creator can change this room")
	}
	return room, nil
}

// managePlayer loads a player the caller may change: their own, one seated
// in a room they host, or any when admin.
func managePlayer(c *fiber.Ctx, store *repository.Store, id uuid.UUID) (*models.Player, error) {
	player, err := store.GetPlayer(c.UserContext(), id)
	if err != nil {
		return nil, err
	}
	if canActAs(c, player.AccountID) {
		return player, nil
	}
	if player.RoomID != nil {
		ok, err := hostsRoom(c, store, *player.RoomID)
		if err != nil {
			return nil, err
		}
		if ok {
			return player, nil
		}
	}
	return nil, forbidden("Player belongs to another account")
}

// claimRoomCreator checks that the caller may mark a player in roomID as its
// creator: admins always, the current host, or anyone while the room has none.
func claimRoomCreator(c *fiber.Ctx, store *repository.Store, roomID *uuid.UUID) error {
	if roomID == nil {
		return &repository.ValidationError{Field: "is_room_creator", Reason: "requires room_id"}
	}
	if middleware.IsAdmin(c) {
		return nil
	}
	host, err := store.GetRoomCreator(c.UserContext(), *roomID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !canActAs(c, host.AccountID) {
		return forbidden("Room already has a creator")
	}
	return nil
}
