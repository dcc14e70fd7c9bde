// Todo subcommands: create, list, inspect, update, and remove todos, plus
// label attachment.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pinboard/pkg/types"
)

func newTodoCmd() *cobra.Command {
	todo := &cobra.Command{
		Use:   "todo",
		Short: "Manage todos",
	}

	todo.AddCommand(newTodoAddCmd())
	todo.AddCommand(newTodoListCmd())
	todo.AddCommand(newTodoGetCmd())
	todo.AddCommand(newTodoUpdateCmd())
	todo.AddCommand(newTodoDoneCmd())
	todo.AddCommand(newTodoRmCmd())
	todo.AddCommand(newTodoLabelCmd())
	todo.AddCommand(newTodoUnlabelCmd())

	return todo
}

func newTodoAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>",
		Short: "Create a new todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := types.CreateTodo{Text: args[0]}
			if err := payload.Validate(); err != nil {
				return err
			}

			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Detach()

			created, err := store.Todos().Create(cmd.Context(), payload)
			if err != nil {
				return fmt.Errorf("create todo: %w", err)
			}
			return printTodo(cmd, created)
		},
	}
}

func newTodoListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all todos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Detach()

			todos, err := store.Todos().All(cmd.Context())
			if err != nil {
				return fmt.Errorf("list todos: %w", err)
			}
			return printTodos(cmd, todos)
		},
	}
}

func newTodoGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Detach()

			found, err := store.Todos().Find(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("get todo: %w", err)
			}
			return printTodo(cmd, found)
		},
	}
}

func newTodoUpdateCmd() *cobra.Command {
	var (
		text      string
		completed bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a todo's text or completion state",
		Long:  "Update changes only the fields whose flags were given; the rest keep their stored values.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var payload types.UpdateTodo
			if cmd.Flags().Changed("text") {
				payload.Text = &text
			}
			if cmd.Flags().Changed("completed") {
				payload.Completed = &completed
			}
			if err := payload.Validate(); err != nil {
				return err
			}

			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Detach()

			updated, err := store.Todos().Update(cmd.Context(), id, payload)
			if err != nil {
				return fmt.Errorf("update todo: %w", err)
			}
			return printTodo(cmd, updated)
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "new todo text")
	cmd.Flags().BoolVar(&completed, "completed", false, "completion state")

	return cmd
}

func newTodoDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a todo as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Detach()

			done := true
			updated, err := store.Todos().Update(cmd.Context(), id, types.UpdateTodo{Completed: &done})
			if err != nil {
				return fmt.Errorf("complete todo: %w", err)
			}
			return printTodo(cmd, updated)
		},
	}
}

func newTodoRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Detach()

			if err := store.Todos().Delete(cmd.Context(), id); err != nil {
				return fmt.Errorf("delete todo: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted todo %d\n", id)
			return nil
		},
	}
}

func newTodoLabelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "label <todo-id> <label-id>",
		Short: "Attach a label to a todo",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLabelAttachment(cmd, args, true)
		},
	}
}

func newTodoUnlabelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlabel <todo-id> <label-id>",
		Short: "Detach a label from a todo",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLabelAttachment(cmd, args, false)
		},
	}
}

// runLabelAttachment attaches or detaches a todo-label pair and prints the
// refreshed todo.
func runLabelAttachment(cmd *cobra.Command, args []string, attach bool) error {
	todoID, err := parseID(args[0])
	if err != nil {
		return err
	}
	labelID, err := parseID(args[1])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	attacher, ok := store.(types.LabelAttacher)
	if !ok {
		return fmt.Errorf("backend does not support label attachments")
	}

	if attach {
		err = attacher.AttachLabel(cmd.Context(), todoID, labelID)
	} else {
		err = attacher.DetachLabel(cmd.Context(), todoID, labelID)
	}
	if err != nil {
		return fmt.Errorf("update label attachment: %w", err)
	}

	refreshed, err := store.Todos().Find(cmd.Context(), todoID)
	if err != nil {
		return fmt.Errorf("reload todo: %w", err)
	}
	return printTodo(cmd, refreshed)
}
