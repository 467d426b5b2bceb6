package logging

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewWritesLogFile(t *testing.T) {
	dir := t.TempDir()
	logger, err := New(Options{Level: "debug", Format: "json", LogDir: dir})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("hello", String("key", "value"))

	data, err := os.ReadFile(filepath.Join(dir, "alkaloid.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"key":"value"`) {
		t.Fatalf("expected structured attribute in log output, got %q", string(data))
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	logger.Error("ignored", Error(nil))
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("nop logger should report disabled")
	}
}
