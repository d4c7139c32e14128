package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newLuminanceCmd represents the luminance command
func newLuminanceCmd(root *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "luminance <hex>...",
		Short: "Print the WCAG relative luminance of each colour",
		Long: `Print the WCAG 2.0 relative luminance of each colour, from 0 (black) to 1 (white).

Examples:
  contrastpick luminance '#777' '#fafafa'
  contrastpick luminance -f json 336699`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format, formatText, formatJSON); err != nil {
				return err
			}

			logger := newLogger(cmd, root)
			colours, err := parseColours(args)
			if err != nil {
				return err
			}

			type luminanceJSON struct {
				Hex       string  `json:"hex"`
				Luminance float64 `json:"luminance"`
			}
			results := make([]luminanceJSON, len(colours))
			for i, c := range colours {
				results[i] = luminanceJSON{Hex: c.Hex(), Luminance: c.Luminance()}
				logger.Debug("computed luminance", "colour", c.Hex(), "luminance", results[i].Luminance)
			}

			out := cmd.OutOrStdout()
			if format == formatJSON {
				return writeJSON(out, results)
			}
			for _, r := range results {
				fmt.Fprintf(out, "%s  %.4f\n", r.Hex, r.Luminance)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format (text, json)")

	return cmd
}
