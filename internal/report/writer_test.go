package report

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"alkaloid/internal/services"
)

func TestOpenAppendWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	w, err := OpenAppend(path, 5, testTime())
	if err != nil {
		t.Fatalf("OpenAppend failed: %v", err)
	}
	if err := w.AppendSection(sectionFor("1", "quercetin")); err != nil {
		t.Fatalf("AppendSection failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Reopen in append mode: the header must not repeat.
	w, err = OpenAppend(path, 5, testTime())
	if err != nil {
		t.Fatalf("second OpenAppend failed: %v", err)
	}
	if err := w.AppendSection(sectionFor("2", "rutin")); err != nil {
		t.Fatalf("AppendSection failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	content := string(data)
	if strings.Count(content, "ALKALOID BATCH") != 1 {
		t.Fatalf("header repeated:\n%s", content)
	}
	if !strings.Contains(content, "COMPOUND #1:") || !strings.Contains(content, "COMPOUND #2:") {
		t.Fatalf("sections missing:\n%s", content)
	}

	set, err := CompletionSet(path)
	if err != nil {
		t.Fatalf("CompletionSet failed: %v", err)
	}
	if len(set) != 2 {
		t.Fatalf("expected both sections checkpointed, got %v", set)
	}
}

func TestOpenAppendRefusesSecondWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	w, err := OpenAppend(path, 1, testTime())
	if err != nil {
		t.Fatalf("OpenAppend failed: %v", err)
	}
	defer w.Close()

	_, err = OpenAppend(path, 1, testTime())
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error for concurrent writer, got %v", err)
	}
}
