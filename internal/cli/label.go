// Label subcommands: create, list, and remove labels.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLabelCmd() *cobra.Command {
	label := &cobra.Command{
		Use:   "label",
		Short: "Manage labels",
	}

	label.AddCommand(newLabelAddCmd())
	label.AddCommand(newLabelListCmd())
	label.AddCommand(newLabelRmCmd())

	return label
}

func newLabelAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Detach()

			created, err := store.Labels().Create(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("create label: %w", err)
			}
			return printLabel(cmd, created)
		},
	}
}

func newLabelListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Detach()

			labels, err := store.Labels().All(cmd.Context())
			if err != nil {
				return fmt.Errorf("list labels: %w", err)
			}
			return printLabels(cmd, labels)
		},
	}
}

func newLabelRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a label",
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

			if err := store.Labels().Delete(cmd.Context(), id); err != nil {
				return fmt.Errorf("delete label: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted label %d\n", id)
			return nil
		},
	}
}
