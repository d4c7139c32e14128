package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/contrastpick/internal/colour"
	"github.com/jmylchreest/contrastpick/internal/picker"
	"github.com/jmylchreest/contrastpick/internal/util"
)

// previewOptions holds the preview command flags.
type previewOptions struct {
	algorithm colour.Algorithm
	pngPath   string
	width     int
	text      string
}

// newPreviewCmd represents the preview command
func newPreviewCmd(root *rootOptions) *cobra.Command {
	opts := &previewOptions{algorithm: colour.AlgorithmSimple}

	cmd := &cobra.Command{
		Use:   "preview [hex]",
		Short: "Render sample text on a background colour",
		Long: `Render a paragraph of sample text on a background colour, using the
foreground the selected algorithm picks. Without an argument the configured
background (CONTRASTPICK_BACKGROUND, default #FFF) is used.

Examples:
  contrastpick preview '#336699'
  contrastpick preview -a w3c --width 60 '#767676'
  contrastpick preview --png preview.png '#fc0'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, root, opts, args)
		},
	}

	cmd.Flags().VarP(&opts.algorithm, "algorithm", "a", "foreground algorithm (simple, w3c)")
	cmd.Flags().StringVar(&opts.pngPath, "png", "", "write the preview as a PNG image to this file")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "preview width in columns, or pixels with --png (default: terminal width)")
	cmd.Flags().StringVar(&opts.text, "text", picker.SampleText, "sample text to render")

	return cmd
}

// runPreview executes the preview command.
func runPreview(cmd *cobra.Command, root *rootOptions, opts *previewOptions, args []string) error {
	logger := newLogger(cmd, root)
	cfg := loadConfig(logger)

	hex := cfg.Background
	if len(args) == 1 {
		hex = args[0]
	}
	bg, err := colour.ParseHex(util.NormaliseHex(hex))
	if err != nil {
		return fmt.Errorf("invalid colour: %w", err)
	}

	view, err := picker.NewView(bg, resolveAlgorithm(cmd, opts.algorithm, cfg))
	if err != nil {
		return err
	}

	if opts.pngPath != "" {
		logger.Debug("writing png preview", "path", opts.pngPath, "width", opts.width)

		// Nothing is written unless the whole image rendered.
		var buf bytes.Buffer
		renderer := &picker.PNGRenderer{Width: opts.width}
		if err := renderer.Render(&buf, view, opts.text); err != nil {
			return err
		}
		if err := os.WriteFile(opts.pngPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if !root.quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s (%s)\n", opts.pngPath, view.Summary())
		}
		return nil
	}

	if opts.width > 0 {
		cfg.Width = opts.width
	}
	return picker.NewTerminalRenderer(cfg).Render(cmd.OutOrStdout(), view, opts.text)
}
