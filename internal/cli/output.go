package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/contrastpick/internal/colour"
	"github.com/jmylchreest/contrastpick/internal/config"
	"github.com/jmylchreest/contrastpick/internal/util"
)

// Output formats accepted by --format.
const (
	formatText  = "text"
	formatJSON  = "json"
	formatTable = "table"
)

// validateFormat checks format against the formats a command supports.
func validateFormat(format string, supported ...string) error {
	for _, s := range supported {
		if format == s {
			return nil
		}
	}
	return fmt.Errorf("unsupported format: %s (supported: %v)", format, supported)
}

// parseColours decodes every argument, trimming whitespace first.
func parseColours(args []string) ([]colour.RGB, error) {
	colours := make([]colour.RGB, 0, len(args))
	for _, arg := range args {
		rgb, err := colour.ParseHex(util.NormaliseHex(arg))
		if err != nil {
			return nil, fmt.Errorf("invalid colour: %w", err)
		}
		colours = append(colours, rgb)
	}
	return colours, nil
}

// resolveAlgorithm returns the --algorithm flag if it was given, otherwise
// the configured algorithm.
func resolveAlgorithm(cmd *cobra.Command, flagValue colour.Algorithm, cfg config.Config) colour.Algorithm {
	if cmd.Flags().Changed("algorithm") {
		return flagValue
	}
	if cfg.Algorithm != "" {
		return cfg.Algorithm
	}
	return colour.AlgorithmSimple
}

// swatch returns the painter for inline colour samples. Colour is off when
// the config disables it (NO_COLOR) or stdout is not a terminal.
func swatch(cfg config.Config) colour.Swatch {
	return colour.Swatch{Colour: cfg.Colour && !color.NoColor}
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to convert to JSON: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
