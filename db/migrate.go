// Package db carries the schema migrations, embedded into the binary and
// applied with goose.
package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

const (
	migrationsDir   = "migrations"
	migrationsTable = "schema_migrations"

	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

// Migrate applies every pending migration.
func Migrate(ctx context.Context, db *sql.DB, dialect string, logger *slog.Logger) error {
	if err := setup(dialect, logger); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// Rollback reverts the latest applied migration.
func Rollback(ctx context.Context, db *sql.DB, dialect string, logger *slog.Logger) error {
	if err := setup(dialect, logger); err != nil {
		return err
	}
	if err := goose.DownContext(ctx, db, migrationsDir); err != nil {
		return fmt.Errorf("goose down: %w", err)
	}
	return nil
}

// Version reports the current schema version.
func Version(ctx context.Context, db *sql.DB, dialect string) (int64, error) {
	if err := setup(dialect, nil); err != nil {
		return 0, err
	}
	return goose.GetDBVersionContext(ctx, db)
}

func setup(dialect string, logger *slog.Logger) error {
	goose.SetBaseFS(migrations)
	goose.SetTableName(migrationsTable)
	if logger != nil {
		goose.SetLogger(&gooseLogger{logger: logger})
	} else {
		goose.SetLogger(goose.NopLogger())
	}
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("goose dialect %q: %w", dialect, err)
	}
	return nil
}

// gooseLogger routes goose progress output through slog.
type gooseLogger struct {
	logger *slog.Logger
}

func (l *gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "migrate")
}

func (l *gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "migrate")
}
