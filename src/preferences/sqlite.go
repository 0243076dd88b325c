package preferences

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // sqlite driver

	"github.com/diogovalentte/tukangkomik/src/util"
)

// SQLiteStore is a Store backed by a SQLite file
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens the SQLite file at path, creating it and the preferences table if needed
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, util.AddErrorContext("error opening sqlite db", err)
	}
	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, util.AddErrorContext("error pinging sqlite db", err)
	}

	_, err = conn.Exec(`
        CREATE TABLE IF NOT EXISTS preferences (
          key TEXT NOT NULL PRIMARY KEY,
          value TEXT NOT NULL,
          updated_at INTEGER NOT NULL
        );
    `)
	if err != nil {
		_ = conn.Close()
		return nil, util.AddErrorContext("error creating sqlite preferences table", err)
	}

	return &SQLiteStore{db: conn}, nil
}

// Get implements Store
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?;`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, util.AddErrorContext("error getting preference from sqlite", err)
	}

	return value, true, nil
}

// Set implements Store
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO preferences (key, value, updated_at)
        VALUES (?, ?, ?)
        ON CONFLICT(key) DO UPDATE SET
            value = excluded.value,
            updated_at = excluded.updated_at;
    `, key, value, time.Now().UTC().UnixMilli())
	if err != nil {
		return util.AddErrorContext("error saving preference to sqlite", err)
	}

	return nil
}

// Delete implements Store
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM preferences WHERE key = ?;`, key)
	if err != nil {
		return util.AddErrorContext("error deleting preference from sqlite", err)
	}

	return nil
}

// All implements Store
func (s *SQLiteStore) All(ctx context.Context) (map[string]string, error) {
	contextError := "error getting preferences from sqlite"

	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM preferences;`)
	if err != nil {
		return nil, util.AddErrorContext(contextError, err)
	}
	defer rows.Close()

	all := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, util.AddErrorContext(contextError, err)
		}
		all[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, util.AddErrorContext(contextError, err)
	}

	return all, nil
}

// Close implements Store
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
