package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/contrastpick/internal/colour"
)

// contrastOptions holds the contrast command flags.
type contrastOptions struct {
	raw    bool
	format string
}

// contrastResult represents a contrast ratio in JSON output format.
type contrastResult struct {
	First  string  `json:"first,omitempty"`
	Second string  `json:"second,omitempty"`
	Ratio  float64 `json:"ratio"`
}

// newContrastCmd represents the contrast command
func newContrastCmd(root *rootOptions) *cobra.Command {
	opts := &contrastOptions{}

	cmd := &cobra.Command{
		Use:   "contrast <hex> <hex>",
		Short: "Print the contrast ratio between two colours",
		Long: `Print the WCAG 2.0 contrast ratio between two colours, from 1:1 to 21:1.
The colours may be given in either order.

With --raw the arguments are relative luminances instead of colours and are
used exactly as given: brighter first, darker second. Reversing them gives
a ratio below 1.

Examples:
  contrastpick contrast '#fff' '#777'
  contrastpick contrast --raw 1 0.18`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContrast(cmd, root, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.raw, "raw", false, "treat arguments as relative luminances (brighter first)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format (text, json)")

	return cmd
}

// runContrast executes the contrast command.
func runContrast(cmd *cobra.Command, root *rootOptions, opts *contrastOptions, args []string) error {
	if err := validateFormat(opts.format, formatText, formatJSON); err != nil {
		return err
	}
	logger := newLogger(cmd, root)

	var result contrastResult
	if opts.raw {
		brighter, err := parseLuminance(args[0])
		if err != nil {
			return err
		}
		darker, err := parseLuminance(args[1])
		if err != nil {
			return err
		}
		if brighter < darker {
			logger.Warn("luminances are not ordered brighter first", "brighter", brighter, "darker", darker)
		}
		result.Ratio = colour.ContrastRatio(brighter, darker)
	} else {
		colours, err := parseColours(args)
		if err != nil {
			return err
		}
		result = contrastResult{
			First:  colours[0].Hex(),
			Second: colours[1].Hex(),
			Ratio:  colour.Contrast(colours[0], colours[1]),
		}
	}

	out := cmd.OutOrStdout()
	if opts.format == formatJSON {
		return writeJSON(out, result)
	}
	fmt.Fprintf(out, "%.2f:1\n", result.Ratio)
	return nil
}

// parseLuminance parses a relative luminance in [0,1].
func parseLuminance(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid luminance %q: %w", s, err)
	}
	if v < 0 || v > 1 {
		return 0, fmt.Errorf("invalid luminance %q: must be between 0 and 1", s)
	}
	return v, nil
}
