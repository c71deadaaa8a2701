// Package repository is the storage contract of the game data model: CRUD per
// entity, uniqueness and reference checks, and a small error taxonomy
// (ErrConflict, ErrReferentialIntegrity, ErrNotFound, ErrValidation).
// Cascades on delete are left to the database's ON DELETE rules.
package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for health checks and the log sink.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Transaction runs fn against a Store bound to a single transaction. Nested
// calls become savepoints.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func (s *Store) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// Page bounds list queries. Zero values mean the default page.
type Page struct {
	Limit  int
	Offset int
}

func (p Page) scope(db *gorm.DB) *gorm.DB {
	limit := p.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	offset := p.Offset
	if offset < 0 {
		offset = 0
	}
	return db.Limit(limit).Offset(offset)
}

func create[T any](ctx context.Context, s *Store, m *T) error {
	return translate(s.conn(ctx).Omit(clause.Associations).Create(m).Error)
}

func get[T any](ctx context.Context, s *Store, id uuid.UUID) (*T, error) {
	var m T
	if err := s.conn(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func findBy[T any](ctx context.Context, s *Store, column string, value interface{}) (*T, error) {
	var m T
	if err := s.conn(ctx).Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).First(&m).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

// update writes every column of m, including zero values. m must carry its ID.
func update[T any](ctx context.Context, s *Store, m *T) error {
	res := s.conn(ctx).Model(m).Select("*").Omit(clause.Associations, "id", "created_at").Updates(m)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteByID[T any](ctx context.Context, s *Store, id uuid.UUID) error {
	res := s.conn(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func list[T any](ctx context.Context, s *Store, page Page, order string, scopes ...func(*gorm.DB) *gorm.DB) ([]T, error) {
	var out []T
	err := s.conn(ctx).Scopes(scopes...).Scopes(page.scope).Order(order).Find(&out).Error
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func where(query string, args ...interface{}) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(query, args...)
	}
}

// requireRef checks a non-null foreign key.
func (s *Store) requireRef(ctx context.Context, model interface{}, field string, id uuid.UUID) error {
	if id == uuid.Nil {
		return &ReferenceError{Field: field, Omitted: true}
	}
	return s.ensureExists(ctx, model, field, id)
}

// optionalRef checks a nullable foreign key when it is set.
func (s *Store) optionalRef(ctx context.Context, model interface{}, field string, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	return s.ensureExists(ctx, model, field, *id)
}

func (s *Store) ensureExists(ctx context.Context, model interface{}, field string, id uuid.UUID) error {
	var n int64
	if err := s.conn(ctx).Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return translate(err)
	}
	if n == 0 {
		return &ReferenceError{Field: field, ID: id}
	}
	return nil
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Reason: "must not be empty"}
	}
	return nil
}

func maxLength(field, value string, n int) error {
	if len([]rune(value)) > n {
		return &ValidationError{Field: field, Reason: "is too long"}
	}
	return nil
}
