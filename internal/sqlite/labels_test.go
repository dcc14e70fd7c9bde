package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pinboard/pkg/types"
)

func TestLabelCreate(t *testing.T) {
	b := newAttachedBackend(t)
	ctx := context.Background()

	label, err := b.Labels().Create(ctx, "urgent")
	require.NoError(t, err)

	assert.NotZero(t, label.ID)
	assert.Equal(t, "urgent", label.Name)
}

func TestLabelCreateDuplicate(t *testing.T) {
	b := newAttachedBackend(t)
	ctx := context.Background()

	existing, err := b.Labels().Create(ctx, "urgent")
	require.NoError(t, err)

	_, err = b.Labels().Create(ctx, "urgent")
	require.Error(t, err)

	var dup *types.DuplicateError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, existing.ID, dup.ID, "carries the pre-existing label's id")

	// No second row was created.
	labels, err := b.Labels().All(ctx)
	require.NoError(t, err)
	assert.Len(t, labels, 1)
}

func TestLabelAllOrdersByIDAscending(t *testing.T) {
	b := newAttachedBackend(t)
	ctx := context.Background()

	for _, name := range []string{"c", "a", "b"} {
		_, err := b.Labels().Create(ctx, name)
		require.NoError(t, err)
	}

	labels, err := b.Labels().All(ctx)
	require.NoError(t, err)
	require.Len(t, labels, 3)

	assert.True(t, labels[0].ID < labels[1].ID && labels[1].ID < labels[2].ID)
	assert.Equal(t, []string{"c", "a", "b"},
		[]string{labels[0].Name, labels[1].Name, labels[2].Name})
}

func TestLabelAllEmpty(t *testing.T) {
	b := newAttachedBackend(t)

	labels, err := b.Labels().All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []*types.Label{}, labels)
}

func TestLabelDelete(t *testing.T) {
	b := newAttachedBackend(t)
	ctx := context.Background()

	label, err := b.Labels().Create(ctx, "short lived")
	require.NoError(t, err)

	require.NoError(t, b.Labels().Delete(ctx, label.ID))

	labels, err := b.Labels().All(ctx)
	require.NoError(t, err)
	assert.Empty(t, labels)
}

func TestLabelDeleteNotFound(t *testing.T) {
	b := newAttachedBackend(t)

	err := b.Labels().Delete(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, types.IsNotFound(err))
}

func TestLabelDeleteCascadesAssociations(t *testing.T) {
	b := newAttachedBackend(t)
	ctx := context.Background()

	todo, err := b.Todos().Create(ctx, types.CreateTodo{Text: "keeps going"})
	require.NoError(t, err)
	label, err := b.Labels().Create(ctx, "doomed")
	require.NoError(t, err)
	require.NoError(t, b.AttachLabel(ctx, todo.ID, label.ID))

	require.NoError(t, b.Labels().Delete(ctx, label.ID))

	found, err := b.Todos().Find(ctx, todo.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Labels)
}
