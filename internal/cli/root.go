// Package cli provides the command-line interface for contrastpick.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/contrastpick/internal/config"
	"github.com/jmylchreest/contrastpick/internal/version"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	verbose bool
	quiet   bool
}

// NewRootCmd builds the contrastpick command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "contrastpick",
		Short: "Pick readable text colours for a background",
		Long: `contrastpick decides whether black or white text reads best on a given
background colour.

Two algorithms are available:
  simple  perceived brightness (0.299R + 0.587G + 0.114B) above 186 uses black
  w3c     whichever of black or white has the higher WCAG 2.0 contrast ratio

Colours are 3 or 6 digit hex values, with or without a leading '#'.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newForegroundCmd(opts))
	rootCmd.AddCommand(newLuminanceCmd(opts))
	rootCmd.AddCommand(newContrastCmd(opts))
	rootCmd.AddCommand(newRGBCmd(opts))
	rootCmd.AddCommand(newPreviewCmd(opts))
	rootCmd.AddCommand(newDemoCmd(opts))

	return rootCmd
}

// loadConfig layers the environment over the defaults.
func loadConfig(logger hclog.Logger) config.Config {
	return config.NewBuilder().
		WithEnvConfig().
		WithLogger(logger).
		Build()
}

// newVersionCmd represents the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
