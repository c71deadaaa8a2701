package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"record not found", gorm.ErrRecordNotFound, ErrNotFound},
		{"gorm duplicate", gorm.ErrDuplicatedKey, ErrConflict},
		{"gorm foreign key", gorm.ErrForeignKeyViolated, ErrReferentialIntegrity},
		{"pg unique", &pgconn.PgError{Code: "23505", ConstraintName: "idx_rooms_access_code"}, ErrConflict},
		{"pg foreign key", &pgconn.PgError{Code: "23503"}, ErrReferentialIntegrity},
		{"sqlite unique", errors.New("constraint failed: UNIQUE constraint failed: rooms.access_code (2067)"), ErrConflict},
		{"sqlite foreign key", errors.New("constraint failed: FOREIGN KEY constraint failed (787)"), ErrReferentialIntegrity},
		{"wrapped taxonomy passes through", fmt.Errorf("ctx: %w", ErrValidation), ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translate(tt.in); !errors.Is(got, tt.want) {
				t.Fatalf("translate(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if translate(nil) != nil {
		t.Fatal("translate(nil) must be nil")
	}
	plain := errors.New("connection reset")
	if translate(plain) != plain {
		t.Fatal("unrelated errors must pass through unchanged")
	}
}

func TestConflictErrorConstraint(t *testing.T) {
	err := translate(errors.New("UNIQUE constraint failed: accounts.email"))
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %T", err)
	}
	if conflict.Constraint != "accounts.email" {
		t.Fatalf("unexpected constraint %q", conflict.Constraint)
	}
}

func TestReferenceErrorMatching(t *testing.T) {
	missing := &ReferenceError{Field: "room_id"}
	omitted := &ReferenceError{Field: "room_id", Omitted: true}

	if !errors.Is(missing, ErrNotFound) || errors.Is(missing, ErrValidation) {
		t.Fatal("missing reference should match ErrNotFound only")
	}
	if !errors.Is(omitted, ErrValidation) || errors.Is(omitted, ErrNotFound) {
		t.Fatal("omitted reference should match ErrValidation only")
	}
	for _, err := range []error{missing, omitted} {
		if !errors.Is(err, ErrReferentialIntegrity) {
			t.Fatalf("%v should match ErrReferentialIntegrity", err)
		}
	}
}

func TestNewAccessCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := NewAccessCode()
		if err != nil {
			t.Fatalf("NewAccessCode: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("unexpected length %q", code)
		}
		for _, r := range code {
			if !(r >= 'A' && r <= 'Z') && !(r >= '0' && r <= '9') {
				t.Fatalf("unexpected rune %q in %q", r, code)
			}
		}
		seen[code] = true
	}
	if len(seen) < 45 {
		t.Fatalf("codes look non-random: %d distinct of 50", len(seen))
	}
	if NormalizeAccessCode("  ab12cd ") != "AB12CD" {
		t.Fatal("normalize should trim and uppercase")
	}
}
