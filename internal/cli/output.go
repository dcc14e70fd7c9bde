// Output formatting shared by the CLI commands. Every command honors the
// global --json flag.
package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pinboard/pkg/types"
)

// printJSON writes v as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func printTodo(cmd *cobra.Command, todo *types.Todo) error {
	if flags.jsonMode {
		return printJSON(cmd, todo)
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatTodo(todo))
	return nil
}

func printTodos(cmd *cobra.Command, todos []*types.Todo) error {
	if flags.jsonMode {
		return printJSON(cmd, todos)
	}
	for _, todo := range todos {
		fmt.Fprintln(cmd.OutOrStdout(), formatTodo(todo))
	}
	return nil
}

func printLabel(cmd *cobra.Command, label *types.Label) error {
	if flags.jsonMode {
		return printJSON(cmd, label)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", label.ID, label.Name)
	return nil
}

func printLabels(cmd *cobra.Command, labels []*types.Label) error {
	if flags.jsonMode {
		return printJSON(cmd, labels)
	}
	for _, label := range labels {
		fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", label.ID, label.Name)
	}
	return nil
}

// formatTodo renders one todo as a single human-readable line.
func formatTodo(todo *types.Todo) string {
	mark := " "
	if todo.Completed {
		mark = "x"
	}

	line := fmt.Sprintf("[%s] %d %s", mark, todo.ID, todo.Text)
	if len(todo.Labels) > 0 {
		names := make([]string, len(todo.Labels))
		for i, label := range todo.Labels {
			names[i] = label.Name
		}
		line += " (" + strings.Join(names, ", ") + ")"
	}
	return line
}
