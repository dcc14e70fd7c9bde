package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mesh-intelligence/pinboard/pkg/types"
)

var _ types.TodoRepository = (*todoRepo)(nil)

// todoRepo implements types.TodoRepository against the SQLite database.
type todoRepo struct {
	backend *Backend
}

// todoJoinQuery is the denormalized read behind Find and All. One row per
// (todo, label) pair; a todo without labels contributes a single row with
// a null label pair.
const todoJoinQuery = `
SELECT t.id, t.text, t.completed, l.id AS label_id, l.name AS label_name
FROM todos t
LEFT OUTER JOIN todo_labels tl ON t.id = tl.todo_id
LEFT OUTER JOIN labels l ON l.id = tl.label_id`

// Create inserts a new todo with completed false. Fresh todos have no
// label associations, so the inserted row folds to an entity with an
// empty label list.
func (r *todoRepo) Create(ctx context.Context, payload types.CreateTodo) (*types.Todo, error) {
	db, err := r.backend.conn()
	if err != nil {
		return nil, err
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO todos (text, completed) VALUES (?, ?)`,
		payload.Text, false,
	)
	if err != nil {
		return nil, &types.UnexpectedError{Err: err}
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, &types.UnexpectedError{Err: err}
	}

	return foldRow(todoRow{id: int(id), text: payload.Text, completed: false})
}

// Find returns the todo with the given id, labels included.
func (r *todoRepo) Find(ctx context.Context, id int) (*types.Todo, error) {
	db, err := r.backend.conn()
	if err != nil {
		return nil, err
	}
	return findTodo(ctx, db, id)
}

// findTodo runs the join for one todo and folds the result. Shared by Find
// and by Update's post-write read; accepts either the pooled handle or a
// transaction.
func findTodo(ctx context.Context, q queryer, id int) (*types.Todo, error) {
	rows, err := scanTodoRows(ctx, q, todoJoinQuery+` WHERE t.id = ?`, id)
	if err != nil {
		return nil, &types.UnexpectedError{Err: err}
	}
	if len(rows) == 0 {
		return nil, &types.NotFoundError{ID: id}
	}
	// Every row belongs to the same todo; the fold aggregates its labels.
	return foldRows(rows)[0], nil
}

// All returns every todo folded from the full join, newest id first.
func (r *todoRepo) All(ctx context.Context) ([]*types.Todo, error) {
	db, err := r.backend.conn()
	if err != nil {
		return nil, err
	}

	rows, err := scanTodoRows(ctx, db, todoJoinQuery+` ORDER BY t.id DESC`)
	if err != nil {
		return nil, &types.UnexpectedError{Err: err}
	}
	return foldRows(rows), nil
}

// Update merges the payload over the stored values and writes the result.
// The read and the write share one transaction so a concurrent delete
// surfaces as NotFound instead of a silent no-op. The returned entity is
// re-read through the join and carries its current labels.
func (r *todoRepo) Update(ctx context.Context, id int, payload types.UpdateTodo) (*types.Todo, error) {
	db, err := r.backend.conn()
	if err != nil {
		return nil, err
	}

	var updated *types.Todo
	err = withTx(ctx, db, func(tx *sql.Tx) error {
		var text string
		var completed bool
		err := tx.QueryRowContext(ctx,
			`SELECT text, completed FROM todos WHERE id = ?`, id,
		).Scan(&text, &completed)
		if errors.Is(err, sql.ErrNoRows) {
			return &types.NotFoundError{ID: id}
		}
		if err != nil {
			return &types.UnexpectedError{Err: err}
		}

		if payload.Text != nil {
			text = *payload.Text
		}
		if payload.Completed != nil {
			completed = *payload.Completed
		}

		result, err := tx.ExecContext(ctx,
			`UPDATE todos SET text = ?, completed = ? WHERE id = ?`,
			text, completed, id,
		)
		if err != nil {
			return &types.UnexpectedError{Err: err}
		}
		if err := affectedOrNotFound(result, id); err != nil {
			return err
		}

		updated, err = findTodo(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the todo; the foreign_keys pragma cascades its
// todo_labels rows.
func (r *todoRepo) Delete(ctx context.Context, id int) error {
	db, err := r.backend.conn()
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return &types.UnexpectedError{Err: err}
	}
	return affectedOrNotFound(result, id)
}
