package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/pinboard/pkg/types"
)

var _ types.LabelRepository = (*labelRepo)(nil)

// labelRepo implements types.LabelRepository against the SQLite database.
type labelRepo struct {
	backend *Backend
}

// Create inserts a new label unless one with exactly the same name exists,
// in which case the existing label's id is reported via DuplicateError.
// The uniqueness check lives here rather than in the schema so every
// backend enforces it the same way.
func (r *labelRepo) Create(ctx context.Context, name string) (*types.Label, error) {
	db, err := r.backend.conn()
	if err != nil {
		return nil, err
	}

	var existing int
	err = db.QueryRowContext(ctx, `SELECT id FROM labels WHERE name = ?`, name).Scan(&existing)
	switch {
	case err == nil:
		return nil, &types.DuplicateError{ID: existing}
	case !errors.Is(err, sql.ErrNoRows):
		return nil, &types.UnexpectedError{Err: err}
	}

	result, err := db.ExecContext(ctx, `INSERT INTO labels (name) VALUES (?)`, name)
	if err != nil {
		return nil, &types.UnexpectedError{Err: err}
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, &types.UnexpectedError{Err: err}
	}

	return &types.Label{ID: int(id), Name: name}, nil
}

// All returns every label ordered by id ascending.
func (r *labelRepo) All(ctx context.Context) ([]*types.Label, error) {
	db, err := r.backend.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT id, name FROM labels ORDER BY id ASC`)
	if err != nil {
		return nil, &types.UnexpectedError{Err: err}
	}
	defer rows.Close()

	labels := []*types.Label{}
	for rows.Next() {
		label := &types.Label{}
		if err := rows.Scan(&label.ID, &label.Name); err != nil {
			return nil, &types.UnexpectedError{Err: err}
		}
		labels = append(labels, label)
	}
	if err := rows.Err(); err != nil {
		return nil, &types.UnexpectedError{Err: err}
	}
	return labels, nil
}

// Delete removes the label; the foreign_keys pragma cascades its
// todo_labels rows.
func (r *labelRepo) Delete(ctx context.Context, id int) error {
	db, err := r.backend.conn()
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, `DELETE FROM labels WHERE id = ?`, id)
	if err != nil {
		return &types.UnexpectedError{Err: err}
	}
	return affectedOrNotFound(result, id)
}

// AttachLabel associates a label with a todo. Attaching an already
// attached pair is a no-op.
func (b *Backend) AttachLabel(ctx context.Context, todoID, labelID int) error {
	db, err := b.conn()
	if err != nil {
		return err
	}

	// Check both sides first so an absent id surfaces as NotFound rather
	// than a foreign key violation.
	if err := ensureExists(ctx, db, "todos", todoID); err != nil {
		return err
	}
	if err := ensureExists(ctx, db, "labels", labelID); err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`INSERT OR IGNORE INTO todo_labels (todo_id, label_id) VALUES (?, ?)`,
		todoID, labelID,
	)
	if err != nil {
		return &types.UnexpectedError{Err: err}
	}
	return nil
}

// DetachLabel removes the association between a todo and a label.
// Detaching an absent pair is a no-op.
func (b *Backend) DetachLabel(ctx context.Context, todoID, labelID int) error {
	db, err := b.conn()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`DELETE FROM todo_labels WHERE todo_id = ? AND label_id = ?`,
		todoID, labelID,
	)
	if err != nil {
		return &types.UnexpectedError{Err: err}
	}
	return nil
}

// ensureExists checks that a row with the given id exists in table.
func ensureExists(ctx context.Context, db *sql.DB, table string, id int) error {
	var one int
	query := fmt.Sprintf("SELECT 1 FROM %s WHERE id = ?", table)
	err := db.QueryRowContext(ctx, query, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return &types.NotFoundError{ID: id}
	}
	if err != nil {
		return &types.UnexpectedError{Err: err}
	}
	return nil
}
