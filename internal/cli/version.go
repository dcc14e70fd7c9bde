package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const modulePath = "github.com/mesh-intelligence/pinboard"

// version is overridable at build time with
// -ldflags "-X github.com/mesh-intelligence/pinboard/internal/cli.version=...".
var version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the pinboard version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "pinboard v%s\nmodule: %s\n", version, modulePath)
			return nil
		},
	}
}
