// Package testutil opens throwaway SQLite databases with the real schema
// applied, for accessor and handler tests.
package testutil

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/frahmantamala/attendance-system/db"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// memoryDSN is private to the single pooled connection, so every OpenDB call
// gets a fresh database.
const memoryDSN = "file::memory:?_foreign_keys=on"

// OpenDB returns an in-memory SQLite database migrated to the latest schema.
func OpenDB() (*sqlx.DB, error) {
	conn, err := sqlx.Open(db.DialectSQLite, memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.Migrate(context.Background(), conn.DB, db.DialectSQLite, nil); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

// Logger discards everything below error.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}
