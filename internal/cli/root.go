// Package cli implements the pinboard command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pinboard/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	backend   string
	jsonMode  bool
}

var flags rootFlags

// NewRootCmd creates the top-level "pinboard" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pinboard",
		Short: "A backend-agnostic todo and label store",
		Long: "Pinboard manages todos and labels using a backend-agnostic\n" +
			"storage interface with SQLite and in-memory backends.",
		Version: version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: .pinboard)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: .pinboard-db)")
	root.PersistentFlags().StringVar(&flags.backend, "backend", "", "storage backend: sqlite or memory (default: sqlite)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newTodoCmd())
	root.AddCommand(newLabelCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newImportCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode classifies an error for the process exit status. Errors the user
// can fix by changing input exit 1; everything else exits 2.
func exitCode(err error) int {
	if types.IsNotFound(err) || types.IsDuplicate(err) {
		return exitUserError
	}
	if errors.Is(err, types.ErrTextEmpty) || errors.Is(err, types.ErrTextTooLong) {
		return exitUserError
	}
	if errors.Is(err, types.ErrBackendUnknown) || errors.Is(err, types.ErrBackendEmpty) {
		return exitUserError
	}
	return exitSysError
}

// resolveConfigDir returns the config directory from flag, env, or default.
func resolveConfigDir() string {
	if flags.configDir != "" {
		return flags.configDir
	}
	if v := os.Getenv("PINBOARD_CONFIG_DIR"); v != "" {
		return v
	}
	return ".pinboard"
}

// parseID converts a positional id argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: expected a positive integer", arg)
	}
	return id, nil
}
