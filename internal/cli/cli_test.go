package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pinboard/pkg/types"
)

// runCommand executes the CLI with the given arguments and returns the
// combined output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// dirs returns fresh config and data directories plus the flag arguments
// that point the CLI at them.
func dirs(t *testing.T) (string, string, []string) {
	t.Helper()

	configDir := t.TempDir()
	dataDir := t.TempDir()
	return configDir, dataDir, []string{"--config-dir", configDir, "--data-dir", dataDir}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pinboard v")
	assert.Contains(t, out, modulePath)
}

func TestInitCreatesConfigAndDatabase(t *testing.T) {
	configDir, dataDir, args := dirs(t)

	out, err := runCommand(t, append([]string{"init"}, args...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "initialized")

	assert.FileExists(t, filepath.Join(configDir, "config.yaml"))
	assert.FileExists(t, filepath.Join(dataDir, "pinboard.db"))
}

func TestInitIsIdempotent(t *testing.T) {
	configDir, _, args := dirs(t)

	_, err := runCommand(t, append([]string{"init"}, args...)...)
	require.NoError(t, err)

	before, err := os.ReadFile(filepath.Join(configDir, "config.yaml"))
	require.NoError(t, err)

	_, err = runCommand(t, append([]string{"init"}, args...)...)
	require.NoError(t, err)

	after, err := os.ReadFile(filepath.Join(configDir, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, before, after, "an existing config.yaml is left untouched")
}

func TestTodoAddAndList(t *testing.T) {
	_, _, args := dirs(t)

	out, err := runCommand(t, append([]string{"todo", "add", "buy milk"}, args...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "buy milk")

	out, err = runCommand(t, append([]string{"todo", "list"}, args...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "buy milk")
}

func TestTodoAddRejectsEmptyText(t *testing.T) {
	_, _, args := dirs(t)

	_, err := runCommand(t, append([]string{"todo", "add", ""}, args...)...)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrTextEmpty)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestTodoDoneAndGet(t *testing.T) {
	_, _, args := dirs(t)

	_, err := runCommand(t, append([]string{"todo", "add", "ship it"}, args...)...)
	require.NoError(t, err)

	out, err := runCommand(t, append([]string{"todo", "done", "1"}, args...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "[x] 1 ship it")

	out, err = runCommand(t, append([]string{"todo", "get", "1"}, args...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "[x] 1 ship it")
}

func TestTodoGetJSON(t *testing.T) {
	_, _, args := dirs(t)

	_, err := runCommand(t, append([]string{"todo", "add", "machine readable"}, args...)...)
	require.NoError(t, err)

	out, err := runCommand(t, append([]string{"todo", "get", "1", "--json"}, args...)...)
	require.NoError(t, err)

	var todo types.Todo
	require.NoError(t, json.Unmarshal([]byte(out), &todo))
	assert.Equal(t, 1, todo.ID)
	assert.Equal(t, "machine readable", todo.Text)
	assert.Equal(t, []types.Label{}, todo.Labels)
}

func TestTodoGetNotFound(t *testing.T) {
	_, _, args := dirs(t)

	_, err := runCommand(t, append([]string{"todo", "get", "999"}, args...)...)
	require.Error(t, err)
	assert.True(t, types.IsNotFound(err))
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestTodoRm(t *testing.T) {
	_, _, args := dirs(t)

	_, err := runCommand(t, append([]string{"todo", "add", "short lived"}, args...)...)
	require.NoError(t, err)

	out, err := runCommand(t, append([]string{"todo", "rm", "1"}, args...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted todo 1")

	_, err = runCommand(t, append([]string{"todo", "get", "1"}, args...)...)
	assert.True(t, types.IsNotFound(err))
}

func TestTodoLabelAttachDetach(t *testing.T) {
	_, _, args := dirs(t)

	_, err := runCommand(t, append([]string{"todo", "add", "tagged"}, args...)...)
	require.NoError(t, err)
	_, err = runCommand(t, append([]string{"label", "add", "urgent"}, args...)...)
	require.NoError(t, err)

	out, err := runCommand(t, append([]string{"todo", "label", "1", "1"}, args...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "(urgent)")

	out, err = runCommand(t, append([]string{"todo", "unlabel", "1", "1"}, args...)...)
	require.NoError(t, err)
	assert.NotContains(t, out, "urgent")
}

func TestLabelAddDuplicate(t *testing.T) {
	_, _, args := dirs(t)

	_, err := runCommand(t, append([]string{"label", "add", "urgent"}, args...)...)
	require.NoError(t, err)

	_, err = runCommand(t, append([]string{"label", "add", "urgent"}, args...)...)
	require.Error(t, err)
	assert.True(t, types.IsDuplicate(err))
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestUnknownBackendFails(t *testing.T) {
	_, _, args := dirs(t)

	_, err := runCommand(t, append([]string{"todo", "list", "--backend", "bogus"}, args...)...)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestExportImportRoundtrip(t *testing.T) {
	_, _, srcArgs := dirs(t)
	exportDir := t.TempDir()

	_, err := runCommand(t, append([]string{"todo", "add", "carried over"}, srcArgs...)...)
	require.NoError(t, err)
	_, err = runCommand(t, append([]string{"label", "add", "keep"}, srcArgs...)...)
	require.NoError(t, err)
	_, err = runCommand(t, append([]string{"todo", "label", "1", "1"}, srcArgs...)...)
	require.NoError(t, err)
	_, err = runCommand(t, append([]string{"todo", "done", "1"}, srcArgs...)...)
	require.NoError(t, err)

	out, err := runCommand(t, append([]string{"export", "--out", exportDir}, srcArgs...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 1 todos and 1 labels")

	_, _, dstArgs := dirs(t)
	out, err = runCommand(t, append([]string{"import", "--in", exportDir}, dstArgs...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 todos and 1 labels")

	out, err = runCommand(t, append([]string{"todo", "list"}, dstArgs...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "[x] 1 carried over (keep)")
}
