package repository

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (s *Store) CreateChat(ctx context.Context, c *models.Chat) error {
	if err := requireText("text", c.Text); err != nil {
		return err
	}
	return s.Transaction(ctx, func(tx *Store) error {
		if err := tx.requireRef(ctx, &models.Player{}, "author_id", c.AuthorID); err != nil {
			return err
		}
		return create(ctx, tx, c)
	})
}

func (s *Store) GetChat(ctx context.Context, id uuid.UUID) (*models.Chat, error) {
	return get[models.Chat](ctx, s, id)
}

func (s *Store) UpdateChat(ctx context.Context, c *models.Chat) error {
	if err := requireText("text", c.Text); err != nil {
		return err
	}
	return s.Transaction(ctx, func(tx *Store) error {
		if err := tx.requireRef(ctx, &models.Player{}, "author_id", c.AuthorID); err != nil {
			return err
		}
		return update(ctx, tx, c)
	})
}

func (s *Store) DeleteChat(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.Chat](ctx, s, id)
}

// ListChatsByRoom returns the room's messages oldest first. Mafia chats are
// included only when includeMafia is set.
func (s *Store) ListChatsByRoom(ctx context.Context, roomID uuid.UUID, includeMafia bool, page Page) ([]models.Chat, error) {
	scopes := []func(*gorm.DB) *gorm.DB{
		func(db *gorm.DB) *gorm.DB {
			return db.Joins("JOIN players ON players.id = chats.author_id").Where("players.room_id = ?", roomID)
		},
	}
	if !includeMafia {
		scopes = append(scopes, where("chats.is_mafia_chat = ?", false))
	}
	return list[models.Chat](ctx, s, page, "chats.created_at", scopes...)
}

func (s *Store) CreateReply(ctx context.Context, originalID, replyID uuid.UUID) (*models.Reply, error) {
	if originalID != uuid.Nil && originalID == replyID {
		return nil, &ValidationError{Field: "reply_id", Reason: "must differ from original_id"}
	}
	link := &models.Reply{OriginalID: originalID, ReplyID: replyID}
	err := s.Transaction(ctx, func(tx *Store) error {
		if err := tx.requireRef(ctx, &models.Chat{}, "original_id", originalID); err != nil {
			return err
		}
		if err := tx.requireRef(ctx, &models.Chat{}, "reply_id", replyID); err != nil {
			return err
		}
		return create(ctx, tx, link)
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

// ListReplies returns the chats answering originalID, oldest first.
func (s *Store) ListReplies(ctx context.Context, originalID uuid.UUID) ([]models.Chat, error) {
	var out []models.Chat
	err := s.conn(ctx).
		Joins("JOIN replies ON replies.reply_id = chats.id").
		Where("replies.original_id = ?", originalID).
		Order("chats.created_at").
		Find(&out).Error
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (s *Store) GetReply(ctx context.Context, id uuid.UUID) (*models.Reply, error) {
	return get[models.Reply](ctx, s, id)
}

func (s *Store) DeleteReply(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.Reply](ctx, s, id)
}
