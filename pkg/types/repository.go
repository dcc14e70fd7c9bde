package types

import "context"

// TodoRepository is the persistence contract for todo items. Both the
// SQLite and the in-memory backends satisfy it; callers pick a backend at
// construction time and are otherwise unaware of the storage choice.
type TodoRepository interface {
	// Create inserts a new todo with Completed false. The returned entity
	// has an empty label list; fresh todos have no associations.
	Create(ctx context.Context, payload CreateTodo) (*Todo, error)

	// Find returns the todo with the given id, labels included.
	// Returns NotFoundError if no such todo exists.
	Find(ctx context.Context, id int) (*Todo, error)

	// All returns every todo. The SQLite backend orders by id descending;
	// the in-memory backend enumerates its store in unspecified order.
	All(ctx context.Context) ([]*Todo, error)

	// Update applies a partial update: nil payload fields keep the stored
	// values. Returns NotFoundError if no such todo exists.
	Update(ctx context.Context, id int, payload UpdateTodo) (*Todo, error)

	// Delete removes the todo with the given id.
	// Returns NotFoundError if no such todo exists.
	Delete(ctx context.Context, id int) error
}

// LabelRepository is the persistence contract for labels.
type LabelRepository interface {
	// Create inserts a new label. If a label with exactly the same name
	// already exists, no row is created and a DuplicateError carrying the
	// existing label's id is returned.
	Create(ctx context.Context, name string) (*Label, error)

	// All returns every label ordered by id ascending.
	All(ctx context.Context) ([]*Label, error)

	// Delete removes the label with the given id.
	// Returns NotFoundError if no such label exists.
	Delete(ctx context.Context, id int) error
}

// Store bundles the repositories of one backend behind a common lifecycle.
// Callers attach with a Config, obtain repositories, and detach when done.
type Store interface {
	// Attach connects the store to the backend described by config.
	// Returns ErrAlreadyAttached if called while attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, repository operations return ErrStoreDetached.
	Detach() error

	// Todos returns the todo repository.
	Todos() TodoRepository

	// Labels returns the label repository.
	Labels() LabelRepository
}

// LabelAttacher is an optional capability for backends that persist
// todo-label associations. The in-memory backend does not implement it: it
// exists to test CRUD mechanics, not the join.
type LabelAttacher interface {
	// AttachLabel associates a label with a todo. Attaching an already
	// attached pair is a no-op. Returns NotFoundError if either id is absent.
	AttachLabel(ctx context.Context, todoID, labelID int) error

	// DetachLabel removes the association. Detaching an absent pair is a
	// no-op.
	DetachLabel(ctx context.Context, todoID, labelID int) error
}
