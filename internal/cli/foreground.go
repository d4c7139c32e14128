package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/contrastpick/internal/colour"
	"github.com/jmylchreest/contrastpick/internal/picker"
)

// foregroundOptions holds the foreground command flags.
type foregroundOptions struct {
	algorithm colour.Algorithm
	format    string
	all       bool
	swatch    bool
}

// newForegroundCmd represents the foreground command
func newForegroundCmd(root *rootOptions) *cobra.Command {
	opts := &foregroundOptions{algorithm: colour.AlgorithmSimple}

	cmd := &cobra.Command{
		Use:   "foreground <hex>...",
		Short: "Pick black or white text for each background colour",
		Long: `Pick black (#000) or white (#FFF) text for each background colour.

Examples:
  # Simple brightness algorithm (default)
  contrastpick foreground '#336699'

  # WCAG contrast ratio algorithm
  contrastpick foreground -a w3c 336699 '#fc0'

  # Compare both algorithms in a table
  contrastpick foreground --all -f table '#00ff00' '#767676'

  # JSON output
  contrastpick foreground -f json '#fff'`,
		Aliases: []string{"fg"},
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForeground(cmd, root, opts, args)
		},
	}

	cmd.Flags().VarP(&opts.algorithm, "algorithm", "a", "foreground algorithm (simple, w3c)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format (text, json, table)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "show the result of every algorithm")
	cmd.Flags().BoolVar(&opts.swatch, "swatch", false, "show a coloured sample next to each result")

	return cmd
}

// runForeground executes the foreground command.
func runForeground(cmd *cobra.Command, root *rootOptions, opts *foregroundOptions, args []string) error {
	if err := validateFormat(opts.format, formatText, formatJSON, formatTable); err != nil {
		return err
	}

	logger := newLogger(cmd, root)
	cfg := loadConfig(logger)

	backgrounds, err := parseColours(args)
	if err != nil {
		return err
	}

	algorithms := []colour.Algorithm{resolveAlgorithm(cmd, opts.algorithm, cfg)}
	if opts.all {
		algorithms = colour.Algorithms()
	}

	views := make([]picker.View, 0, len(backgrounds)*len(algorithms))
	for _, bg := range backgrounds {
		for _, alg := range algorithms {
			v, err := picker.NewView(bg, alg)
			if err != nil {
				return err
			}
			logger.Debug("picked foreground", "background", bg.Hex(), "algorithm", alg, "foreground", v.Foreground.Hex())
			views = append(views, v)
		}
	}

	var sw colour.Swatch
	if opts.swatch {
		sw = swatch(cfg)
		if !sw.Colour {
			logger.Debug("colour disabled, swatches not shown")
		}
	}

	out := cmd.OutOrStdout()
	switch opts.format {
	case formatJSON:
		payload := make([]picker.ViewJSON, len(views))
		for i, v := range views {
			payload[i] = v.JSON()
		}
		return writeJSON(out, payload)
	case formatTable:
		fmt.Fprint(out, viewTable(views).Render())
		return nil
	default:
		for i := 0; i < len(views); i += len(algorithms) {
			fmt.Fprintln(out, formatForegroundLine(views[i:i+len(algorithms)], opts.all, sw))
		}
		return nil
	}
}

// formatForegroundLine renders one background's results on a single line. A
// painted sample follows each result when sw has colour on.
func formatForegroundLine(views []picker.View, showAlgorithm bool, sw colour.Swatch) string {
	var b strings.Builder
	b.WriteString(views[0].Background.Hex())
	for _, v := range views {
		b.WriteString("  ")
		if showAlgorithm {
			b.WriteString(v.Algorithm.String())
			b.WriteString(" ")
		}
		b.WriteString(v.Foreground.Hex())
		if sw.Colour {
			b.WriteString(" ")
			b.WriteString(sw.Text(v.Background, v.Foreground.RGB(), "Aa", 6))
		}
	}
	return b.String()
}

// viewTable lays views out as a table.
func viewTable(views []picker.View) *Table {
	table := NewTable([]string{"BACKGROUND", "ALGORITHM", "FOREGROUND", "CONTRAST", "LUMINANCE", "BRIGHTNESS"})
	for col := 3; col <= 5; col++ {
		table.SetColumnAlignRight(col)
	}
	for _, v := range views {
		table.AddRow([]string{
			v.Background.Hex(),
			v.Algorithm.String(),
			v.Foreground.Hex(),
			fmt.Sprintf("%.2f:1", v.Ratio),
			fmt.Sprintf("%.4f", v.Luminance),
			fmt.Sprintf("%.1f", v.Brightness),
		})
	}
	return table
}
