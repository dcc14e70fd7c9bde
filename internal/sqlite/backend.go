// Package sqlite implements the durable SQLite storage backend for
// pinboard. Todos and labels live in relational tables joined through
// todo_labels; every read that exposes label data goes through the join
// and the row folder.
package sqlite

import (
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/pinboard/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// dbFileName is the database file created inside Config.DataDir.
const dbFileName = "pinboard.db"

// Compile-time interface checks.
var (
	_ types.Store         = (*Backend)(nil)
	_ types.LabelAttacher = (*Backend)(nil)
)

// Backend implements types.Store over a SQLite database.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
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

// Attach opens (or creates) the database under config.DataDir, applies the
// schema, and readies the repositories.
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

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	// Cascade deletion of todo_labels rows depends on the foreign_keys
	// pragma; it is off by default in SQLite.
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("apply schema: %w", err)
	}

	b.db = db
	b.config = config
	b.attached = true

	slog.Debug("sqlite backend attached", "path", dbPath)
	return nil
}

// Detach closes the database. Idempotent: multiple calls succeed.
// After Detach, repository operations return types.ErrStoreDetached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	if err := b.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	b.db = nil
	b.attached = false
	return nil
}

// Todos returns the todo repository.
func (b *Backend) Todos() types.TodoRepository { return b.todos }

// Labels returns the label repository.
func (b *Backend) Labels() types.LabelRepository { return b.labels }

// conn returns the live database handle, or ErrStoreDetached.
func (b *Backend) conn() (*sql.DB, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.db, nil
}
