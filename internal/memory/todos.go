package memory

import (
	"context"
	"sync"

	"github.com/mesh-intelligence/pinboard/pkg/types"
)

var _ types.TodoRepository = (*todoRepo)(nil)

// todoRepo implements types.TodoRepository over a map guarded by a
// read/write mutex: readers run concurrently, writers are exclusive. The
// map holds values, so callers always receive copies of the stored state.
//
// Ids come from a monotonic counter rather than len(store)+1, so a delete
// followed by a create can never hand out a live id twice.
type todoRepo struct {
	backend *Backend
	mu      sync.RWMutex
	store   map[int]types.Todo
	nextID  int
}

// reset reinitializes the store. Called under the backend lock on Attach.
func (r *todoRepo) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store = make(map[int]types.Todo)
	r.nextID = 0
}

// Create inserts a new todo with completed false and no labels.
func (r *todoRepo) Create(ctx context.Context, payload types.CreateTodo) (*types.Todo, error) {
	if err := r.backend.alive(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	todo := types.Todo{
		ID:        r.nextID,
		Text:      payload.Text,
		Completed: false,
		Labels:    []types.Label{},
	}
	r.store[todo.ID] = todo
	return &todo, nil
}

// Find returns a copy of the stored todo.
func (r *todoRepo) Find(ctx context.Context, id int) (*types.Todo, error) {
	if err := r.backend.alive(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	todo, ok := r.store[id]
	if !ok {
		return nil, &types.NotFoundError{ID: id}
	}
	return &todo, nil
}

// All returns every todo in the store's enumeration order, which is
// unspecified.
func (r *todoRepo) All(ctx context.Context) ([]*types.Todo, error) {
	if err := r.backend.alive(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	todos := make([]*types.Todo, 0, len(r.store))
	for _, todo := range r.store {
		t := todo
		todos = append(todos, &t)
	}
	return todos, nil
}

// Update merges the payload over the stored values: nil fields keep what
// is already there.
func (r *todoRepo) Update(ctx context.Context, id int, payload types.UpdateTodo) (*types.Todo, error) {
	if err := r.backend.alive(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	todo, ok := r.store[id]
	if !ok {
		return nil, &types.NotFoundError{ID: id}
	}

	if payload.Text != nil {
		todo.Text = *payload.Text
	}
	if payload.Completed != nil {
		todo.Completed = *payload.Completed
	}
	r.store[id] = todo
	return &todo, nil
}

// Delete removes the todo.
func (r *todoRepo) Delete(ctx context.Context, id int) error {
	if err := r.backend.alive(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return &types.NotFoundError{ID: id}
	}
	delete(r.store, id)
	return nil
}
