package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/mesh-intelligence/pinboard/pkg/types"
)

// queryer abstracts *sql.DB and *sql.Tx for readers shared between pooled
// and transactional paths.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// withTx runs fn inside a transaction, rolling back on error and
// committing on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return &types.UnexpectedError{Err: err}
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("rollback failed", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return &types.UnexpectedError{Err: err}
	}
	return nil
}

// scanTodoRows runs a join query and scans every denormalized row.
func scanTodoRows(ctx context.Context, q queryer, query string, args ...any) ([]todoRow, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []todoRow
	for rows.Next() {
		var row todoRow
		if err := rows.Scan(&row.id, &row.text, &row.completed, &row.labelID, &row.labelName); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// affectedOrNotFound classifies an exec result: zero affected rows means
// the target id was absent.
func affectedOrNotFound(result sql.Result, id int) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return &types.UnexpectedError{Err: err}
	}
	if affected == 0 {
		return &types.NotFoundError{ID: id}
	}
	return nil
}
