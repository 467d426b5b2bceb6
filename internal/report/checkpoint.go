package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// CompletionSet derives the set of completed item keys by scanning the
// output at path. A missing file yields an empty set. Sections without their
// terminator, including one cut off mid-write by a killed run, are not
// counted, so the owning item is processed again.
func CompletionSet(path string) (map[string]struct{}, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]struct{}{}, nil
		}
		return nil, fmt.Errorf("open output for checkpoint scan: %w", err)
	}
	defer file.Close()
	return scanCompleted(file)
}

func scanCompleted(r io.Reader) (map[string]struct{}, error) {
	completed := make(map[string]struct{})
	current := ""

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if key := keyFromMarker(line); key != "" {
			// A new marker before the previous terminator means the
			// previous section was truncated; it stays uncounted.
			current = key
			continue
		}
		if current != "" && line == completeMarker(current) {
			completed[current] = struct{}{}
			current = ""
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan output: %w", err)
	}
	return completed, nil
}
