package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/pinboard/pkg/types"
)

// todoRow is one denormalized row of the todos/labels join. The label pair
// is null for a todo without labels; a todo with N labels produces N rows
// with identical todo columns.
type todoRow struct {
	id        int
	text      string
	completed bool
	labelID   sql.NullInt64
	labelName sql.NullString
}

// foldRows aggregates join rows into todo entities. Todos keep first-seen
// order; labels keep row order within a todo. Duplicate label pairs are
// kept as-is: every non-null row contributes exactly one label append.
//
// The accumulator scan is O(rows x distinct todos), which is fine at the
// scale of a single todo list.
func foldRows(rows []todoRow) []*types.Todo {
	todos := make([]*types.Todo, 0, len(rows))
	for _, row := range rows {
		var todo *types.Todo
		for _, t := range todos {
			if t.ID == row.id {
				todo = t
				break
			}
		}
		if todo == nil {
			todo = &types.Todo{
				ID:        row.id,
				Text:      row.text,
				Completed: row.completed,
				Labels:    []types.Label{},
			}
			todos = append(todos, todo)
		}
		if row.labelID.Valid {
			todo.Labels = append(todo.Labels, types.Label{
				ID:   int(row.labelID.Int64),
				Name: row.labelName.String,
			})
		}
	}
	return todos
}

// foldRow folds a single join row into its entity. Folding one row yields
// exactly one todo; an empty result would mean the fold broke its own
// invariant, and is reported as an error rather than assumed away.
func foldRow(row todoRow) (*types.Todo, error) {
	todos := foldRows([]todoRow{row})
	if len(todos) == 0 {
		return nil, fmt.Errorf("folding a single row yielded no todo (id %d)", row.id)
	}
	return todos[0], nil
}
