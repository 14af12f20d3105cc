// Package cli defines the pw2pr command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pw2pr",
		Short: "pw2pr runs the Patchwork-to-pull-request GitHub Action",
		Long: `pw2pr prepares a GitHub Actions workspace and hands off to the external
patch-to-PR conversion program: it validates the required secrets, configures
the git identity and credentialed origin remote, writes the Patchwork client
configuration, installs the Patchwork CLI client, and invokes the converter.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}
