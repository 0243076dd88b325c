package preferences

import (
	"context"
	"database/sql"
	"errors"

	"github.com/diogovalentte/tukangkomik/src/db"
	"github.com/diogovalentte/tukangkomik/src/util"
)

// PostgresStore is a Store backed by the "preferences" table.
// The table is created by db.CreateTables.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a connection using the POSTGRES_* environment variables
func NewPostgresStore() (*PostgresStore, error) {
	conn, err := db.OpenConn()
	if err != nil {
		return nil, err
	}

	return NewPostgresStoreFromDB(conn), nil
}

// NewPostgresStoreFromDB returns a PostgresStore using an open connection
func NewPostgresStoreFromDB(conn *sql.DB) *PostgresStore {
	return &PostgresStore{db: conn}
}

// Get implements Store
func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
        SELECT
            value
        FROM
            preferences
        WHERE
            key = $1;
    `, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, util.AddErrorContext("error getting preference from DB", err)
	}

	return value, true, nil
}

// Set implements Store
func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	contextError := "error saving preference to DB"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return util.AddErrorContext(contextError, err)
	}

	_, err = tx.ExecContext(ctx, `
        INSERT INTO preferences
            (key, value, updated_at)
        VALUES
            ($1, $2, now())
        ON CONFLICT (key) DO UPDATE SET
            value = EXCLUDED.value,
            updated_at = EXCLUDED.updated_at;
    `, key, value)
	if err != nil {
		tx.Rollback()
		return util.AddErrorContext(contextError, err)
	}

	err = tx.Commit()
	if err != nil {
		return util.AddErrorContext(contextError, err)
	}

	return nil
}

// Delete implements Store
func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM preferences WHERE key = $1;`, key)
	if err != nil {
		return util.AddErrorContext("error deleting preference from DB", err)
	}

	return nil
}

// All implements Store
func (s *PostgresStore) All(ctx context.Context) (map[string]string, error) {
	contextError := "error getting preferences from DB"

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
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
