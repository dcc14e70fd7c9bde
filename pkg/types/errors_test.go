package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	notFound := &NotFoundError{ID: 42}
	duplicate := &DuplicateError{ID: 7}
	unexpected := &UnexpectedError{Err: errors.New("connection reset")}

	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsNotFound(duplicate))
	assert.False(t, IsNotFound(unexpected))

	assert.True(t, IsDuplicate(duplicate))
	assert.False(t, IsDuplicate(notFound))

	// Classification survives wrapping.
	wrapped := fmt.Errorf("updating todo: %w", notFound)
	assert.True(t, IsNotFound(wrapped))

	var nf *NotFoundError
	assert.True(t, errors.As(wrapped, &nf))
	assert.Equal(t, 42, nf.ID)
}

func TestUnexpectedErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := &UnexpectedError{Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
}
