package migrations

import (
	"io/fs"
	"strings"
	"sync"
	"testing"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"gorm.io/gorm/schema"
)

// AutoMigrate skips constraints it finds by name, so the SQL must use the
// names GORM derives from the models.
func TestConstraintNamesMatchModels(t *testing.T) {
	up, err := fs.ReadFile(FS, "000001_init.up.sql")
	if err != nil {
		t.Fatalf("read up migration: %v", err)
	}
	sql := string(up)

	cache := &sync.Map{}
	namer := schema.NamingStrategy{}
	var fks, checks int
	for _, m := range models.All() {
		s, err := schema.Parse(m, cache, namer)
		if err != nil {
			t.Fatalf("parse %T: %v", m, err)
		}
		for _, rel := range s.Relationships.Relations {
			c := rel.ParseConstraint()
			if c == nil {
				continue
			}
			fks++
			if !strings.Contains(sql, "CONSTRAINT "+c.Name+" REFERENCES") {
				t.Fatalf("%s: foreign key %s missing from up migration", s.Table, c.Name)
			}
		}
		for name := range s.ParseCheckConstraints() {
			checks++
			if !strings.Contains(sql, "CONSTRAINT "+name+" CHECK") {
				t.Fatalf("%s: check %s missing from up migration", s.Table, name)
			}
		}
	}
	if got := strings.Count(sql, " REFERENCES "); got != fks {
		t.Fatalf("up migration declares %d foreign keys, models declare %d", got, fks)
	}
	if checks != 2 {
		t.Fatalf("expected 2 check constraints on the models, got %d", checks)
	}
}
