package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound             = errors.New("record not found")
	ErrConflict             = errors.New("uniqueness violation")
	ErrReferentialIntegrity = errors.New("referential integrity violation")
	ErrValidation           = errors.New("validation failed")
)

// ReferenceError reports a foreign key that was either omitted or points at a
// missing row. It matches ErrReferentialIntegrity in both cases, plus
// ErrValidation when omitted and ErrNotFound when the row is absent.
type ReferenceError struct {
	Field   string
	ID      uuid.UUID
	Omitted bool
}

func (e *ReferenceError) Error() string {
	if e.Omitted {
		return fmt.Sprintf("%s is required", e.Field)
	}
	return fmt.Sprintf("%s %s does not exist", e.Field, e.ID)
}

func (e *ReferenceError) Is(target error) bool {
	switch target {
	case ErrReferentialIntegrity:
		return true
	case ErrValidation:
		return e.Omitted
	case ErrNotFound:
		return !e.Omitted
	}
	return false
}

// ConflictError wraps a driver error raised by a unique index.
type ConflictError struct {
	Constraint string
	Err        error
}

func (e *ConflictError) Error() string {
	if e.Constraint != "" {
		return "duplicate value violates " + e.Constraint
	}
	return "duplicate value violates a unique constraint"
}

func (e *ConflictError) Unwrap() error { return e.Err }

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// ValidationError reports a field value the store refuses before touching the database.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Reason }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// translate maps driver and GORM errors onto the store's taxonomy.
func translate(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrConflict),
		errors.Is(err, ErrReferentialIntegrity), errors.Is(err, ErrValidation):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	}

	if constraint, ok := uniqueViolation(err); ok {
		return &ConflictError{Constraint: constraint, Err: err}
	}
	if foreignKeyViolation(err) {
		return fmt.Errorf("%w: %v", ErrReferentialIntegrity, err)
	}
	return err
}

func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName, true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "", true
	}
	// sqlite: "UNIQUE constraint failed: rooms.access_code"
	msg := err.Error()
	if i := strings.Index(msg, "UNIQUE constraint failed: "); i >= 0 {
		return strings.TrimSpace(msg[i+len("UNIQUE constraint failed: "):]), true
	}
	return "", false
}

func foreignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
