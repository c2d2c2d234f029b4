// Package sqlstore is the table-parameterized data-access layer shared by every
// entity. Each public operation acquires a connection, runs one statement in
// its own transaction and commits; any failure rolls back and is returned
// unchanged. The *Tx variants let callers compose several statements in one
// transaction.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

type Store[T any] struct {
	db     *sqlx.DB
	table  Table
	logger *slog.Logger

	selectAll  string
	selectByID string
	insert     string
	update     string
	deleteByID string
}

func New[T any](db *sqlx.DB, table Table, logger *slog.Logger) *Store[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store[T]{
		db:         db,
		table:      table,
		logger:     logger.With("table", table.Name),
		selectAll:  table.selectSQL(),
		selectByID: db.Rebind(table.selectWhereSQL(table.Key)),
		insert:     table.insertSQL(),
		update:     table.updateSQL(),
		deleteByID: db.Rebind(table.deleteWhereSQL(table.Key)),
	}
}

func (s *Store[T]) DB() *sqlx.DB {
	return s.db
}

func (s *Store[T]) Table() Table {
	return s.table
}

func (s *Store[T]) GetAll(ctx context.Context) ([]*T, error) {
	var records []*T
	err := WithTransaction(ctx, s.db, func(tx *sqlx.Tx) error {
		var err error
		records, err = s.GetAllTx(ctx, tx)
		return err
	})
	if err != nil {
		s.logError("failed to retrieve rows", err)
		return nil, err
	}
	s.logger.Info("retrieved rows", "count", len(records))
	return records, nil
}

// GetByID returns nil, nil when no row has the given key.
func (s *Store[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var record *T
	err := WithTransaction(ctx, s.db, func(tx *sqlx.Tx) error {
		var err error
		record, err = s.GetByIDTx(ctx, tx, id)
		return err
	})
	if err != nil {
		s.logError("failed to retrieve row", err, "id", id)
		return nil, err
	}
	if record == nil {
		s.logger.Info("row not found", "id", id)
		return nil, nil
	}
	s.logger.Info("retrieved row", "id", id)
	return record, nil
}

func (s *Store[T]) Add(ctx context.Context, record *T) error {
	err := WithTransaction(ctx, s.db, func(tx *sqlx.Tx) error {
		return s.AddTx(ctx, tx, record)
	})
	if err != nil {
		s.logError("failed to add row", err)
		return err
	}
	s.logger.Info("added row")
	return nil
}

// Update replaces every non-key column of the row identified by the record's
// key. It reports false when no row matched.
func (s *Store[T]) Update(ctx context.Context, record *T) (bool, error) {
	var updated bool
	err := WithTransaction(ctx, s.db, func(tx *sqlx.Tx) error {
		var err error
		updated, err = s.UpdateTx(ctx, tx, record)
		return err
	})
	if err != nil {
		s.logError("failed to update row", err)
		return false, err
	}
	s.logger.Info("updated row", "affected", updated)
	return updated, nil
}

func (s *Store[T]) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	var deleted bool
	err := WithTransaction(ctx, s.db, func(tx *sqlx.Tx) error {
		var err error
		deleted, err = s.DeleteTx(ctx, tx, id)
		return err
	})
	if err != nil {
		s.logError("failed to delete row", err, "id", id)
		return false, err
	}
	s.logger.Info("deleted row", "id", id, "affected", deleted)
	return deleted, nil
}

func (s *Store[T]) GetAllTx(ctx context.Context, tx *sqlx.Tx) ([]*T, error) {
	records := make([]*T, 0)
	if err := tx.SelectContext(ctx, &records, s.selectAll); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Store[T]) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*T, error) {
	var record T
	if err := tx.GetContext(ctx, &record, s.selectByID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// ListByTx returns the rows whose column equals value.
func (s *Store[T]) ListByTx(ctx context.Context, tx *sqlx.Tx, column string, value any) ([]*T, error) {
	records := make([]*T, 0)
	query := tx.Rebind(s.table.selectWhereSQL(column))
	if err := tx.SelectContext(ctx, &records, query, value); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Store[T]) AddTx(ctx context.Context, tx *sqlx.Tx, record *T) error {
	_, err := tx.NamedExecContext(ctx, s.insert, record)
	return err
}

func (s *Store[T]) UpdateTx(ctx context.Context, tx *sqlx.Tx, record *T) (bool, error) {
	res, err := tx.NamedExecContext(ctx, s.update, record)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (s *Store[T]) DeleteTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (bool, error) {
	res, err := tx.ExecContext(ctx, s.deleteByID, id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

// DeleteByTx removes every row whose column equals value and returns how many
// rows went.
func (s *Store[T]) DeleteByTx(ctx context.Context, tx *sqlx.Tx, column string, value any) (int64, error) {
	res, err := tx.ExecContext(ctx, tx.Rebind(s.table.deleteWhereSQL(column)), value)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store[T]) logError(msg string, err error, attrs ...any) {
	s.logger.Error(msg, append(ErrorAttrs(err), attrs...)...)
}

// ErrorAttrs returns log attributes for err, including the SQLSTATE and
// constraint when the error came from PostgreSQL.
func ErrorAttrs(err error) []any {
	attrs := []any{"error", err}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		attrs = append(attrs, "pg_code", pgErr.Code, "constraint", pgErr.ConstraintName)
	}
	return attrs
}
