package report

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/gofrs/flock"

	"alkaloid/internal/services"
)

// Writer appends completed sections to the output file. It holds an advisory
// lock for its whole lifetime: the output is single-writer and two runs
// racing on it would each compute a stale completion set.
type Writer struct {
	file *os.File
	lock *flock.Flock
}

// OpenAppend opens the output for appending, initializing a fresh file with
// the header block. The caller must Close the writer on every exit path.
func OpenAppend(path string, totalItems int, now time.Time) (*Writer, error) {
	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "report", "open", "acquire output lock", err)
	}
	if !locked {
		return nil, services.Wrap(services.ErrConfiguration, "report", "open",
			fmt.Sprintf("output %s is in use by another run", path), nil)
	}

	_, statErr := os.Stat(path)
	fresh := errors.Is(statErr, fs.ErrNotExist)
	if statErr != nil && !fresh {
		_ = lock.Unlock()
		return nil, services.Wrap(services.ErrConfiguration, "report", "open", "stat output", statErr)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		_ = lock.Unlock()
		return nil, services.Wrap(services.ErrConfiguration, "report", "open", "open output", err)
	}

	w := &Writer{file: file, lock: lock}
	if fresh {
		if err := w.append(Header(totalItems, now)); err != nil {
			_ = w.Close()
			return nil, err
		}
	}
	return w, nil
}

// AppendSection writes one completed item section and flushes it to disk, so
// a kill immediately afterwards still leaves the section checkpointed.
func (w *Writer) AppendSection(section string) error {
	return w.append(section)
}

func (w *Writer) append(text string) error {
	if _, err := w.file.WriteString(text); err != nil {
		return fmt.Errorf("append output: %w", err)
	}
	if err := w.file.Sync(); err != nil {
		return fmt.Errorf("sync output: %w", err)
	}
	return nil
}

// Close releases the file handle and the advisory lock.
func (w *Writer) Close() error {
	closeErr := w.file.Close()
	if err := w.lock.Unlock(); err != nil && closeErr == nil {
		closeErr = err
	}
	return closeErr
}
