package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/contrastpick/internal/colour"
)

// colourJSON represents a decoded colour in JSON output format.
type colourJSON struct {
	Hex string     `json:"hex"`
	RGB colour.RGB `json:"rgb"`
}

// newRGBCmd represents the rgb command
func newRGBCmd(root *rootOptions) *cobra.Command {
	var (
		format      string
		showPreview bool
	)

	cmd := &cobra.Command{
		Use:   "rgb <hex>...",
		Short: "Decode hex colours into red, green and blue channels",
		Long: `Decode 3 or 6 digit hex colours into their red, green and blue channels.
Shorthand digits are doubled, so '#03F' is the same as '#0033FF'.

Examples:
  contrastpick rgb '#03F' c0ffee
  contrastpick rgb --preview '#336699'
  contrastpick rgb -f json '#fff'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format, formatText, formatJSON); err != nil {
				return err
			}

			logger := newLogger(cmd, root)
			cfg := loadConfig(logger)
			colours, err := parseColours(args)
			if err != nil {
				return err
			}
			logger.Debug("decoded colours", "count", len(colours))

			out := cmd.OutOrStdout()
			if format == formatJSON {
				results := make([]colourJSON, len(colours))
				for i, c := range colours {
					results[i] = colourJSON{Hex: c.Hex(), RGB: c}
				}
				return writeJSON(out, results)
			}

			sw := colour.Swatch{}
			if showPreview {
				sw = swatch(cfg)
			}
			for _, c := range colours {
				fmt.Fprintf(out, "%s  %s\n", sw.WithHex(c, 8), c.String())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format (text, json)")
	cmd.Flags().BoolVar(&showPreview, "preview", false, "show colour previews in terminal")

	return cmd
}
