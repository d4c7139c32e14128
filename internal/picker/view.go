// Package picker is the interactive front end of contrastpick: it owns the
// current background colour and algorithm choice, and renders a sample text
// block in the foreground colour the engine picks.
package picker

import (
	"encoding/json"
	"fmt"

	"github.com/jmylchreest/contrastpick/internal/colour"
)

// SampleText is the paragraph shown in the preview block.
const SampleText = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor " +
	"incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud " +
	"exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat. Duis aute irure " +
	"dolor in reprehenderit in voluptate velit esse cillum dolore eu fugiat nulla pariatur. " +
	"Excepteur sint occaecat cupidatat non proident, sunt in culpa qui officia deserunt " +
	"mollit anim id est laborum."

// View is everything needed to draw one frame of the preview.
type View struct {
	Background colour.RGB
	Foreground colour.Foreground
	Algorithm  colour.Algorithm
	// Ratio is the contrast achieved by Foreground on Background.
	Ratio      float64
	Luminance  float64
	Brightness float64
}

// NewView computes the view for a background and algorithm.
func NewView(bg colour.RGB, alg colour.Algorithm) (View, error) {
	fg, err := alg.ForegroundRGB(bg)
	if err != nil {
		return View{}, fmt.Errorf("failed to pick foreground: %w", err)
	}

	return View{
		Background: bg,
		Foreground: fg,
		Algorithm:  alg,
		Ratio:      colour.Contrast(bg, fg.RGB()),
		Luminance:  bg.Luminance(),
		Brightness: bg.Brightness(),
	}, nil
}

// ViewJSON represents a view in JSON output format.
type ViewJSON struct {
	Background    string     `json:"background"`
	RGB           colour.RGB `json:"rgb"`
	Foreground    string     `json:"foreground"`
	Algorithm     string     `json:"algorithm"`
	ContrastRatio float64    `json:"contrast_ratio"`
	Luminance     float64    `json:"luminance"`
	Brightness    float64    `json:"brightness"`
}

// JSON returns the JSON form of the view.
func (v View) JSON() ViewJSON {
	return ViewJSON{
		Background:    v.Background.Hex(),
		RGB:           v.Background,
		Foreground:    v.Foreground.Hex(),
		Algorithm:     v.Algorithm.String(),
		ContrastRatio: v.Ratio,
		Luminance:     v.Luminance,
		Brightness:    v.Brightness,
	}
}

// ToJSON converts the view to indented JSON.
func (v View) ToJSON() ([]byte, error) {
	return json.MarshalIndent(v.JSON(), "", "  ")
}

// Summary returns a one-line description of the view.
func (v View) Summary() string {
	return fmt.Sprintf("background %s  foreground %s  algorithm %s  contrast %.2f:1",
		v.Background.Hex(), v.Foreground.Hex(), v.Algorithm.DisplayName(), v.Ratio)
}
