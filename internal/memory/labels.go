package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mesh-intelligence/pinboard/pkg/types"
)

var _ types.LabelRepository = (*labelRepo)(nil)

// labelRepo implements types.LabelRepository with the same locking and id
// discipline as todoRepo. It performs the same duplicate-name check as the
// SQLite backend, so backend-swapped tests observe identical behavior.
type labelRepo struct {
	backend *Backend
	mu      sync.RWMutex
	store   map[int]types.Label
	nextID  int
}

// reset reinitializes the store. Called under the backend lock on Attach.
func (r *labelRepo) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store = make(map[int]types.Label)
	r.nextID = 0
}

// Create inserts a new label unless one with exactly the same name
// exists, in which case the existing label's id is reported via
// DuplicateError.
func (r *labelRepo) Create(ctx context.Context, name string) (*types.Label, error) {
	if err := r.backend.alive(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, label := range r.store {
		if label.Name == name {
			return nil, &types.DuplicateError{ID: label.ID}
		}
	}

	r.nextID++
	label := types.Label{ID: r.nextID, Name: name}
	r.store[label.ID] = label
	return &label, nil
}

// All returns every label ordered by id ascending.
func (r *labelRepo) All(ctx context.Context) ([]*types.Label, error) {
	if err := r.backend.alive(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	labels := make([]*types.Label, 0, len(r.store))
	for _, label := range r.store {
		l := label
		labels = append(labels, &l)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i].ID < labels[j].ID })
	return labels, nil
}

// Delete removes the label.
func (r *labelRepo) Delete(ctx context.Context, id int) error {
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
