package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/contrastpick/internal/colour"
	"github.com/jmylchreest/contrastpick/internal/picker"
)

// demoOptions holds the demo command flags.
type demoOptions struct {
	algorithm  colour.Algorithm
	background string
	width      int
}

// newDemoCmd represents the demo command
func newDemoCmd(root *rootOptions) *cobra.Command {
	opts := &demoOptions{algorithm: colour.AlgorithmSimple}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Interactively try background colours",
		Long: `Start an interactive session. Type a hex colour to change the background,
't' to switch between the simple and W3C algorithms, and 'q' to quit. The
sample text is redrawn after every change.

The session starts on a white background with the simple algorithm unless
CONTRASTPICK_BACKGROUND, CONTRASTPICK_ALGORITHM or the flags below say otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, root, opts)
		},
	}

	cmd.Flags().VarP(&opts.algorithm, "algorithm", "a", "initial foreground algorithm (simple, w3c)")
	cmd.Flags().StringVarP(&opts.background, "background", "b", "", "initial background colour (default #FFF)")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "preview width in columns (default: terminal width)")

	return cmd
}

// runDemo executes the demo command.
func runDemo(cmd *cobra.Command, root *rootOptions, opts *demoOptions) error {
	logger := newLogger(cmd, root)
	cfg := loadConfig(logger)

	cfg.Algorithm = resolveAlgorithm(cmd, opts.algorithm, cfg)
	if opts.background != "" {
		cfg.Background = opts.background
	}
	if opts.width > 0 {
		cfg.Width = opts.width
	}

	session, err := picker.NewSession(cfg, logger)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) && !root.quiet {
		fmt.Fprintln(cmd.OutOrStdout(), "Type a hex colour, 't' to toggle the algorithm, '?' for help, 'q' to quit.")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if err := session.Run(ctx, in, cmd.OutOrStdout()); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
