package types

import (
	"errors"
	"fmt"
)

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// Payload validation errors.
var (
	ErrTextEmpty   = errors.New("todo text must not be empty")
	ErrTextTooLong = errors.New("todo text must not exceed 100 characters")
)

// NotFoundError reports that no entity with the requested id exists.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("id %d not found", e.ID)
}

// DuplicateError reports a label creation with a name that is already
// taken. ID is the id of the pre-existing label.
type DuplicateError struct {
	ID int
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate name, id %d already holds it", e.ID)
}

// UnexpectedError wraps a storage failure that is neither a missing row
// nor a duplicate name: connectivity, constraint violations, scan errors.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected storage error: %v", e.Err)
}

func (e *UnexpectedError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsDuplicate reports whether err is a DuplicateError.
func IsDuplicate(err error) bool {
	var dup *DuplicateError
	return errors.As(err, &dup)
}
