package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newVersionCmd creates the Cobra command for displaying the application
// version. All software has versions; this prints the one baked into the
// binary at build time.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the cellmaster version number",
		Long:  `Displays the cellmaster build version. All software has versions.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cellmaster version %s\n", rootCmd.Version)
		},
	}
}
