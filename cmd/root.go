package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (bad config, command failed).
	ExitCodeError = 1
)

// rootCmd represents the base command for the cell Master controller.
// It is the entry point when the binary is invoked without any subcommand.
var rootCmd = &cobra.Command{
	Use:   "cellmaster",
	Short: "Master controller for a multi-site ATE test cell",
	Long: `cellmaster coordinates the synchronized lifecycle of every site in a
multi-site Automated Test Equipment cell: connecting sites, loading a test
program, driving "next" test cycles, mediating shared-resource
reconfiguration between tests, and unloading, while exposing cell state to
an operator UI over HTTP and websocket.`,
	// SilenceUsage keeps a failed command from dumping the usage block on
	// top of the actual error (e.g. a config validation failure).
	SilenceUsage: true,
}

// SetVersion sets the version for the root command. Called from main()
// with the build-time-injected version string.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application. Called by
// main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "cellmaster version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitCodeError)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}
