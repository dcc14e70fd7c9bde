// Package memory implements the concurrent in-memory storage backend for
// pinboard. It mirrors the SQLite backend's lifecycle and repository
// contracts over mutex-guarded maps, and exists to test CRUD mechanics
// without a database. Todo-label associations are not modeled: the todo
// repository always returns empty label lists.
package memory

import (
	"sync"

	"github.com/mesh-intelligence/pinboard/pkg/types"
)

var _ types.Store = (*Backend)(nil)

// Backend implements types.Store over in-memory maps.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	todos    *todoRepo
	labels   *labelRepo
}

// NewBackend returns a detached backend; call Attach before use.
func NewBackend() *Backend {
	b := &Backend{}
	b.todos = &todoRepo{backend: b}
	b.labels = &labelRepo{backend: b}
	return b
}

// Attach initializes the store maps.
// Returns types.ErrAlreadyAttached if called while attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	b.todos.reset()
	b.labels.reset()
	b.attached = true
	return nil
}

// Detach marks the store detached; a later Attach starts empty again.
// Idempotent: multiple calls succeed.
// After Detach, repository operations return types.ErrStoreDetached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.attached = false
	return nil
}

// Todos returns the todo repository.
func (b *Backend) Todos() types.TodoRepository { return b.todos }

// Labels returns the label repository.
func (b *Backend) Labels() types.LabelRepository { return b.labels }

// alive returns ErrStoreDetached unless the backend is attached.
func (b *Backend) alive() error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.ErrStoreDetached
	}
	return nil
}
