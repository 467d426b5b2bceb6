package smilescache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS lookup_cache (
	namespace  TEXT NOT NULL,
	identifier TEXT NOT NULL,
	smiles     TEXT NOT NULL,
	cached_at  TEXT NOT NULL,
	PRIMARY KEY (namespace, identifier)
);`

// Cache is a SQLite-backed store of resolved SMILES keyed by lookup
// namespace and identifier.
type Cache struct {
	db   *sql.DB
	path string
}

// Open creates or opens the cache database at path.
func Open(path string) (*Cache, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("cache path required")
	}
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize cache schema: %w", err)
	}
	return &Cache{db: db, path: path}, nil
}

// Get returns the cached SMILES for (namespace, identifier), if any.
func (c *Cache) Get(ctx context.Context, namespace, identifier string) (string, bool, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT smiles FROM lookup_cache WHERE namespace = ? AND identifier = ?`,
		namespace, identifier)
	var smiles string
	switch err := row.Scan(&smiles); {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("query cache: %w", err)
	}
	return smiles, true, nil
}

// Put records a successful lookup. Existing entries are replaced.
func (c *Cache) Put(ctx context.Context, namespace, identifier, smiles string) error {
	if strings.TrimSpace(smiles) == "" {
		return errors.New("refusing to cache empty smiles")
	}
	_, err := c.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO lookup_cache (namespace, identifier, smiles, cached_at) VALUES (?, ?, ?, ?)`,
		namespace, identifier, smiles, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}
