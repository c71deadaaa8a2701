package repository

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"github.com/google/uuid"
)

func (s *Store) checkPlayerAndEvent(ctx context.Context, playerID, eventID uuid.UUID) error {
	if err := s.requireRef(ctx, &models.Player{}, "player_id", playerID); err != nil {
		return err
	}
	return s.requireRef(ctx, &models.GameEvent{}, "game_event_id", eventID)
}

// AddPlayerActionOverride allows or denies an action for one player.
func (s *Store) AddPlayerActionOverride(ctx context.Context, playerID, actionID uuid.UUID, allowed bool) (*models.PlayerActionOverride, error) {
	link := &models.PlayerActionOverride{PlayerID: playerID, ActionID: actionID, IsAllowed: allowed}
	err := s.Transaction(ctx, func(tx *Store) error {
		if err := tx.requireRef(ctx, &models.Player{}, "player_id", playerID); err != nil {
			return err
		}
		if err := tx.requireRef(ctx, &models.Action{}, "action_id", actionID); err != nil {
			return err
		}
		return create(ctx, tx, link)
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

func (s *Store) SetPlayerActionOverride(ctx context.Context, playerID, actionID uuid.UUID, allowed bool) (*models.PlayerActionOverride, error) {
	link, err := getPair[models.PlayerActionOverride](ctx, s, "player_id", playerID, "action_id", actionID)
	if err != nil {
		return nil, err
	}
	link.IsAllowed = allowed
	if err := update(ctx, s, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *Store) RemovePlayerActionOverride(ctx context.Context, playerID, actionID uuid.UUID) error {
	return removePair[models.PlayerActionOverride](ctx, s, "player_id", playerID, "action_id", actionID)
}

func (s *Store) ListPlayerActionOverrides(ctx context.Context, playerID uuid.UUID) ([]models.PlayerActionOverride, error) {
	var out []models.PlayerActionOverride
	if err := s.conn(ctx).Where("player_id = ?", playerID).Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (s *Store) AddPlayerTriggerEvent(ctx context.Context, playerID, eventID uuid.UUID) (*models.PlayerTriggerEvent, error) {
	link := &models.PlayerTriggerEvent{PlayerID: playerID, GameEventID: eventID}
	err := s.Transaction(ctx, func(tx *Store) error {
		if err := tx.checkPlayerAndEvent(ctx, playerID, eventID); err != nil {
			return err
		}
		return create(ctx, tx, link)
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

func (s *Store) RemovePlayerTriggerEvent(ctx context.Context, playerID, eventID uuid.UUID) error {
	return removePair[models.PlayerTriggerEvent](ctx, s, "player_id", playerID, "game_event_id", eventID)
}

func (s *Store) ListPlayerTriggerEvents(ctx context.Context, playerID uuid.UUID) ([]models.PlayerTriggerEvent, error) {
	var out []models.PlayerTriggerEvent
	if err := s.conn(ctx).Where("player_id = ?", playerID).Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (s *Store) AddPlayerInfluenceEvent(ctx context.Context, playerID, eventID uuid.UUID) (*models.PlayerInfluenceEvent, error) {
	link := &models.PlayerInfluenceEvent{PlayerID: playerID, GameEventID: eventID}
	err := s.Transaction(ctx, func(tx *Store) error {
		if err := tx.checkPlayerAndEvent(ctx, playerID, eventID); err != nil {
			return err
		}
		return create(ctx, tx, link)
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

func (s *Store) RemovePlayerInfluenceEvent(ctx context.Context, playerID, eventID uuid.UUID) error {
	return removePair[models.PlayerInfluenceEvent](ctx, s, "player_id", playerID, "game_event_id", eventID)
}

func (s *Store) ListPlayerInfluenceEvents(ctx context.Context, playerID uuid.UUID) ([]models.PlayerInfluenceEvent, error) {
	var out []models.PlayerInfluenceEvent
	if err := s.conn(ctx).Where("player_id = ?", playerID).Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// AddEventInfluencePlayer records an event acting on a player, allowed or denied.
func (s *Store) AddEventInfluencePlayer(ctx context.Context, playerID, eventID uuid.UUID, allowed bool) (*models.EventInfluencePlayer, error) {
	link := &models.EventInfluencePlayer{PlayerID: playerID, GameEventID: eventID, IsAllowed: allowed}
	err := s.Transaction(ctx, func(tx *Store) error {
		if err := tx.checkPlayerAndEvent(ctx, playerID, eventID); err != nil {
			return err
		}
		return create(ctx, tx, link)
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

func (s *Store) SetEventInfluencePlayer(ctx context.Context, playerID, eventID uuid.UUID, allowed bool) (*models.EventInfluencePlayer, error) {
	link, err := getPair[models.EventInfluencePlayer](ctx, s, "player_id", playerID, "game_event_id", eventID)
	if err != nil {
		return nil, err
	}
	link.IsAllowed = allowed
	if err := update(ctx, s, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *Store) RemoveEventInfluencePlayer(ctx context.Context, playerID, eventID uuid.UUID) error {
	return removePair[models.EventInfluencePlayer](ctx, s, "player_id", playerID, "game_event_id", eventID)
}

func (s *Store) ListEventInfluencePlayers(ctx context.Context, playerID uuid.UUID) ([]models.EventInfluencePlayer, error) {
	var out []models.EventInfluencePlayer
	if err := s.conn(ctx).Where("player_id = ?", playerID).Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}
