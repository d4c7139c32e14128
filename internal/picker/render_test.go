package picker

import (
	"bytes"
	"encoding/json"
	"image/color"
	"image/png"
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/contrastpick/internal/colour"
)

func mustView(t *testing.T, hex string, alg colour.Algorithm) View {
	t.Helper()
	v, err := NewView(colour.MustParseHex(hex), alg)
	if err != nil {
		t.Fatalf("NewView(%q) unexpected error: %v", hex, err)
	}
	return v
}

func TestNewView(t *testing.T) {
	v := mustView(t, "#000", colour.AlgorithmW3C)

	if v.Foreground != colour.White {
		t.Errorf("Foreground = %s, want #FFF", v.Foreground.Hex())
	}
	if math.Abs(v.Ratio-21) > 1e-9 {
		t.Errorf("Ratio = %v, want 21", v.Ratio)
	}
	if v.Luminance != 0 || v.Brightness != 0 {
		t.Errorf("Luminance/Brightness = %v/%v, want 0/0", v.Luminance, v.Brightness)
	}

	if _, err := NewView(colour.RGB{}, "apca"); err == nil {
		t.Error("NewView() accepted an unknown algorithm")
	}
}

func TestViewJSON(t *testing.T) {
	data, err := mustView(t, "#fff", colour.AlgorithmSimple).ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() unexpected error: %v", err)
	}

	var got ViewJSON
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("ToJSON() produced invalid JSON: %v", err)
	}

	if got.Background != "#ffffff" || got.Foreground != "#000" || got.Algorithm != "simple" {
		t.Errorf("ToJSON() = %+v", got)
	}
	if got.RGB != (colour.RGB{R: 255, G: 255, B: 255}) {
		t.Errorf("RGB = %v, want white", got.RGB)
	}
	if math.Abs(got.ContrastRatio-21) > 1e-9 || math.Abs(got.Luminance-1) > 1e-9 {
		t.Errorf("ContrastRatio/Luminance = %v/%v, want 21/1", got.ContrastRatio, got.Luminance)
	}
	if !strings.Contains(string(data), `"contrast_ratio"`) {
		t.Errorf("ToJSON() missing contrast_ratio key:\n%s", data)
	}
}

func TestTerminalRendererPlain(t *testing.T) {
	r := &TerminalRenderer{Width: 30}
	var out bytes.Buffer

	if err := r.Render(&out, mustView(t, "#fff", colour.AlgorithmSimple), SampleText); err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) < 4 {
		t.Fatalf("expected summary, borders and text, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "background #ffffff") {
		t.Errorf("summary line = %q", lines[0])
	}
	for _, line := range lines[1:] {
		if len(line) != 30 {
			t.Errorf("line %q has width %d, want 30", line, len(line))
		}
	}
	if strings.Contains(out.String(), "\033[") {
		t.Error("plain renderer emitted escape sequences")
	}
}

func TestTerminalRendererMultibyteText(t *testing.T) {
	r := &TerminalRenderer{Width: 20}
	var out bytes.Buffer

	text := "größe über alles straße\nzwei"
	if err := r.Render(&out, mustView(t, "#fff", colour.AlgorithmSimple), text); err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	want := []string{
		"+------------------+",
		"| größe über alles |",
		"| straße           |",
		"| zwei             |",
		"+------------------+",
	}
	if diff := cmp.Diff(want, lines[1:]); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
	for _, line := range lines[1:] {
		if n := utf8.RuneCountInString(line); n != 20 {
			t.Errorf("line %q has width %d, want 20", line, n)
		}
	}
}

func TestTerminalRendererColour(t *testing.T) {
	r := &TerminalRenderer{Width: 30, Colour: true}
	var out bytes.Buffer

	if err := r.Render(&out, mustView(t, "#000", colour.AlgorithmSimple), "hello"); err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "48;2;0;0;0") {
		t.Errorf("output missing background sequence: %q", output)
	}
	if !strings.Contains(output, "38;2;255;255;255") {
		t.Errorf("output missing white foreground sequence: %q", output)
	}
	if !strings.Contains(output, "hello") {
		t.Errorf("output missing text: %q", output)
	}
}

func TestTerminalRendererMinimumWidth(t *testing.T) {
	r := &TerminalRenderer{Width: 1}
	var out bytes.Buffer

	if err := r.Render(&out, mustView(t, "#fff", colour.AlgorithmSimple), "abc"); err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "+----------+") {
		t.Errorf("expected border at minimum width:\n%s", out.String())
	}
}

func TestPNGRenderer(t *testing.T) {
	r := &PNGRenderer{Width: 200}
	v := mustView(t, "#0033ff", colour.AlgorithmW3C)

	img, err := r.Image(v, SampleText)
	if err != nil {
		t.Fatalf("Image() unexpected error: %v", err)
	}

	if got := img.Bounds().Dx(); got != 200 {
		t.Errorf("width = %d, want 200", got)
	}

	border := color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA)
	if border != (color.RGBA{A: 255}) {
		t.Errorf("corner pixel = %v, want black border", border)
	}

	fill := color.RGBAModel.Convert(img.At(2, 2)).(color.RGBA)
	if fill != (color.RGBA{R: 0x00, G: 0x33, B: 0xff, A: 255}) {
		t.Errorf("fill pixel = %v, want background", fill)
	}

	// Some text pixels must be drawn in the foreground.
	found := false
	b := img.Bounds()
	for y := b.Min.Y + 1; y < b.Max.Y-1 && !found; y++ {
		for x := b.Min.X + 1; x < b.Max.X-1; x++ {
			if color.RGBAModel.Convert(img.At(x, y)).(color.RGBA) == (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no white text pixels found")
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, v, "hi"); err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Errorf("Render() did not produce a valid png: %v", err)
	}
}

func TestPNGRendererTooNarrow(t *testing.T) {
	r := &PNGRenderer{Width: 10}
	if _, err := r.Image(mustView(t, "#fff", colour.AlgorithmSimple), "x"); err == nil {
		t.Error("Image() accepted a width narrower than one character")
	}
}
