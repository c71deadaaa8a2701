package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

// removePair deletes the association row keyed by (left, right).
func removePair[T any](ctx context.Context, s *Store, leftCol string, left uuid.UUID, rightCol string, right uuid.UUID) error {
	res := s.conn(ctx).
		Where(clause.Eq{Column: clause.Column{Name: leftCol}, Value: left}).
		Where(clause.Eq{Column: clause.Column{Name: rightCol}, Value: right}).
		Delete(new(T))
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// getPair loads the association row keyed by (left, right).
func getPair[T any](ctx context.Context, s *Store, leftCol string, left uuid.UUID, rightCol string, right uuid.UUID) (*T, error) {
	var m T
	err := s.conn(ctx).
		Where(clause.Eq{Column: clause.Column{Name: leftCol}, Value: left}).
		Where(clause.Eq{Column: clause.Column{Name: rightCol}, Value: right}).
		First(&m).Error
	if err != nil {
		return nil, translate(err)
	}
	return &m, nil
}
