package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Chat is a message written by a player. Mafia chats are only meant for mafia roles.
type Chat struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	IsMafiaChat bool      `gorm:"not null;default:false" json:"is_mafia_chat"`
	IsModified  bool      `gorm:"not null;default:false" json:"is_modified"`
	AuthorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"author_id"`
	CreatedAt   time.Time `json:"created_at"`

	Author *Player `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}

func (c *Chat) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (Chat) TableName() string {
	return "chats"
}

// Reply links an original chat to a chat answering it.
type Reply struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OriginalID uuid.UUID `gorm:"type:uuid;not null;index" json:"original_id"`
	ReplyID    uuid.UUID `gorm:"type:uuid;not null;index" json:"reply_id"`

	Original  *Chat `gorm:"foreignKey:OriginalID;constraint:OnDelete:CASCADE" json:"-"`
	ReplyChat *Chat `gorm:"foreignKey:ReplyID;constraint:OnDelete:CASCADE" json:"-"`
}

func (r *Reply) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (Reply) TableName() string {
	return "replies"
}
