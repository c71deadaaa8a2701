package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"
)

type recordingWriter struct {
	lines []string
}

func (w *recordingWriter) Printf(format string, args ...interface{}) {
	w.lines = append(w.lines, fmt.Sprintf(format, args...))
}

func TestGormLoggerSkipsRecordNotFound(t *testing.T) {
	w := &recordingWriter{}
	l := newGormLogger(w)
	query := func() (string, int64) { return "SELECT * FROM rooms WHERE id = 'x'", 0 }

	l.Trace(context.Background(), time.Now(), query, gorm.ErrRecordNotFound)
	if len(w.lines) != 0 {
		t.Fatalf("expected lookup miss to be silent, got %q", w.lines)
	}

	l.Trace(context.Background(), time.Now(), query, errors.New("connection reset"))
	if len(w.lines) != 1 {
		t.Fatalf("expected one line for a failed statement, got %d", len(w.lines))
	}

	l.Trace(context.Background(), time.Now().Add(-time.Second), query, nil)
	if len(w.lines) != 2 {
		t.Fatalf("expected slow query to be logged, got %d lines", len(w.lines))
	}
}
