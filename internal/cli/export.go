// Export and import commands. The exchange format is one JSONL file per
// entity kind, so dumps diff cleanly and survive partial corruption.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pinboard/pkg/types"
)

const (
	todosFile  = "todos.jsonl"
	labelsFile = "labels.jsonl"
)

func newExportCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export todos and labels to JSONL files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Detach()

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			todos, err := store.Todos().All(cmd.Context())
			if err != nil {
				return fmt.Errorf("read todos: %w", err)
			}
			labels, err := store.Labels().All(cmd.Context())
			if err != nil {
				return fmt.Errorf("read labels: %w", err)
			}

			todoRecords, err := marshalRecords(todos)
			if err != nil {
				return err
			}
			labelRecords, err := marshalRecords(labels)
			if err != nil {
				return err
			}

			if err := writeJSONL(filepath.Join(outDir, todosFile), todoRecords); err != nil {
				return fmt.Errorf("write todos: %w", err)
			}
			if err := writeJSONL(filepath.Join(outDir, labelsFile), labelRecords); err != nil {
				return fmt.Errorf("write labels: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d todos and %d labels to %s\n",
				len(todos), len(labels), outDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", ".", "directory to write JSONL files to")

	return cmd
}

func newImportCmd() *cobra.Command {
	var inDir string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import todos and labels from JSONL files",
		Long: "Import recreates entities from a previous export. Ids are reassigned\n" +
			"by the backend; label attachments are restored by label name.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Detach()

			labelIDs, imported, err := importLabels(cmd, store, filepath.Join(inDir, labelsFile))
			if err != nil {
				return err
			}
			todoCount, err := importTodos(cmd, store, filepath.Join(inDir, todosFile), labelIDs)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d todos and %d labels from %s\n",
				todoCount, imported, inDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&inDir, "in", ".", "directory to read JSONL files from")

	return cmd
}

// marshalRecords encodes a slice of entities as one JSON record each.
func marshalRecords[T any](entities []T) ([]json.RawMessage, error) {
	records := make([]json.RawMessage, 0, len(entities))
	for _, e := range entities {
		data, err := json.Marshal(e)
		if err != nil {
			return nil, fmt.Errorf("marshal record: %w", err)
		}
		records = append(records, data)
	}
	return records, nil
}

// importLabels recreates labels from a JSONL dump and returns a name-to-id
// map for restoring attachments. Labels that already exist keep their
// current id.
func importLabels(cmd *cobra.Command, store types.Store, path string) (map[string]int, int, error) {
	records, err := readJSONL(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]int{}, 0, nil
		}
		return nil, 0, fmt.Errorf("read labels: %w", err)
	}

	ids := make(map[string]int, len(records))
	imported := 0
	for _, rec := range records {
		var label types.Label
		if err := json.Unmarshal(rec, &label); err != nil {
			continue
		}

		created, err := store.Labels().Create(cmd.Context(), label.Name)
		if err != nil {
			var dup *types.DuplicateError
			if errors.As(err, &dup) {
				ids[label.Name] = dup.ID
				continue
			}
			return nil, 0, fmt.Errorf("import label %q: %w", label.Name, err)
		}
		ids[label.Name] = created.ID
		imported++
	}
	return ids, imported, nil
}

// importTodos recreates todos from a JSONL dump. Completion state is applied
// with a follow-up update; attachments are restored through the label name
// map when the backend supports them.
func importTodos(cmd *cobra.Command, store types.Store, path string, labelIDs map[string]int) (int, error) {
	records, err := readJSONL(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("read todos: %w", err)
	}

	attacher, canAttach := store.(types.LabelAttacher)

	imported := 0
	for _, rec := range records {
		var todo types.Todo
		if err := json.Unmarshal(rec, &todo); err != nil {
			continue
		}

		created, err := store.Todos().Create(cmd.Context(), types.CreateTodo{Text: todo.Text})
		if err != nil {
			return imported, fmt.Errorf("import todo %q: %w", todo.Text, err)
		}
		if todo.Completed {
			done := true
			if _, err := store.Todos().Update(cmd.Context(), created.ID, types.UpdateTodo{Completed: &done}); err != nil {
				return imported, fmt.Errorf("restore completion of %q: %w", todo.Text, err)
			}
		}
		if canAttach {
			for _, label := range todo.Labels {
				id, ok := labelIDs[label.Name]
				if !ok {
					continue
				}
				if err := attacher.AttachLabel(cmd.Context(), created.ID, id); err != nil {
					return imported, fmt.Errorf("restore label %q: %w", label.Name, err)
				}
			}
		}
		imported++
	}
	return imported, nil
}
