// ABOUTME: Root command and CLI initialization for purge
// ABOUTME: Sets up cobra command structure and run flags
package commands

import (
	"github.com/spf13/cobra"

	"github.com/RomanGlegola/Purge-Python-Environment/internal/ui"
)

var (
	dryRunFlag   bool
	parallelFlag bool
	noAuditFlag  bool
	quietFlag    bool
	sourcesFlag  string
	rootFlag     string
)

var rootCmd = &cobra.Command{
	Use:   "purge <program>",
	Short: "Force-remove residual traces of an installed program",
	Long: `purge locates and force-removes every residual trace of a program whose
own uninstaller is missing, broken, or leaves residue behind.

It searches four independent sources with one fuzzy name:
  - installed-package records
  - the uninstall registry (native and 32-bit views)
  - leftover directories on the system volume
  - elements of the executable search path

The identifier may carry a version token after the first delimiter
(space, comma, period, or underscore); entries containing that exact
token are left alone.`,
	Example: `  # Remove every trace of Python except 1.2.3 itself
  purge "Python 1.2.3"

  # See what would be removed, without touching anything
  purge --dry-run python

  # Only scrub the registry and the search path
  purge --sources registry,path python`,
	Args:          cobra.ExactArgs(1),
	RunE:          runPurge,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version for the root command
func SetVersion(version string) {
	rootCmd.Version = version
}

func init() {
	// Set up custom help template with lipgloss styling
	ui.SetupHelpTemplate(rootCmd)

	rootCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Report candidates without removing anything")
	rootCmd.Flags().BoolVar(&parallelFlag, "parallel", false, "Run the four sources concurrently")
	rootCmd.Flags().BoolVar(&noAuditFlag, "no-audit", false, "Skip writing the removal audit log")
	rootCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Only print the final summary")
	rootCmd.Flags().StringVar(&sourcesFlag, "sources", "", "Comma-separated sources to run (installation,registry,directory,path)")
	rootCmd.Flags().StringVar(&rootFlag, "root", "", "Directory-scan root (default: the system volume)")
}
