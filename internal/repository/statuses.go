package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// StatusKind selects one of the three status tag tables.
type StatusKind string

const (
	StatusKindAccount StatusKind = "account"
	StatusKindRoom    StatusKind = "room"
	StatusKindPlayer  StatusKind = "player"
)

func (k StatusKind) table() (string, error) {
	switch k {
	case StatusKindAccount:
		return "account_statuses", nil
	case StatusKindRoom:
		return "room_statuses", nil
	case StatusKindPlayer:
		return "player_statuses", nil
	}
	return "", &ValidationError{Field: "kind", Reason: "must be account, room or player"}
}

// Status is a row of any status table.
type Status struct {
	ID  uuid.UUID `json:"id"`
	Tag string    `json:"tag"`
}

func (s *Store) CreateStatus(ctx context.Context, kind StatusKind, tag string) (*Status, error) {
	table, err := kind.table()
	if err != nil {
		return nil, err
	}
	tag = strings.TrimSpace(tag)
	if err := requireText("tag", tag); err != nil {
		return nil, err
	}
	if err := maxLength("tag", tag, 255); err != nil {
		return nil, err
	}

	row := &Status{ID: uuid.New(), Tag: tag}
	if err := s.conn(ctx).Table(table).Create(row).Error; err != nil {
		return nil, translate(err)
	}
	return row, nil
}

func (s *Store) GetStatus(ctx context.Context, kind StatusKind, id uuid.UUID) (*Status, error) {
	return s.findStatus(ctx, kind, "id = ?", id)
}

func (s *Store) GetStatusByTag(ctx context.Context, kind StatusKind, tag string) (*Status, error) {
	return s.findStatus(ctx, kind, "tag = ?", tag)
}

func (s *Store) findStatus(ctx context.Context, kind StatusKind, query string, arg interface{}) (*Status, error) {
	table, err := kind.table()
	if err != nil {
		return nil, err
	}
	var row Status
	if err := s.conn(ctx).Table(table).Where(query, arg).Take(&row).Error; err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

func (s *Store) ListStatuses(ctx context.Context, kind StatusKind) ([]Status, error) {
	table, err := kind.table()
	if err != nil {
		return nil, err
	}
	var rows []Status
	if err := s.conn(ctx).Table(table).Order("tag").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

func (s *Store) RenameStatus(ctx context.Context, kind StatusKind, id uuid.UUID, tag string) (*Status, error) {
	table, err := kind.table()
	if err != nil {
		return nil, err
	}
	tag = strings.TrimSpace(tag)
	if err := requireText("tag", tag); err != nil {
		return nil, err
	}
	if err := maxLength("tag", tag, 255); err != nil {
		return nil, err
	}

	res := s.conn(ctx).Table(table).Where("id = ?", id).Update("tag", tag)
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &Status{ID: id, Tag: tag}, nil
}

// DeleteStatus removes a tag; every account, room or player holding it goes with it.
func (s *Store) DeleteStatus(ctx context.Context, kind StatusKind, id uuid.UUID) error {
	table, err := kind.table()
	if err != nil {
		return err
	}
	res := s.conn(ctx).Table(table).Where("id = ?", id).Delete(&Status{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
