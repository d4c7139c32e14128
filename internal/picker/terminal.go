package picker

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/jmylchreest/contrastpick/internal/config"
	"github.com/jmylchreest/contrastpick/internal/util"
)

// Renderer draws a view with some sample text.
type Renderer interface {
	Render(w io.Writer, v View, text string) error
}

// TerminalRenderer draws the preview as a bordered block of text. With
// Colour set, the block is filled with the background colour and the text
// drawn in the chosen foreground using 24-bit ANSI sequences.
type TerminalRenderer struct {
	Width  int
	Colour bool
}

// NewTerminalRenderer creates a renderer from the config. A zero width is
// replaced with the width of stdout, or config.DefaultWidth if stdout is not
// a terminal.
func NewTerminalRenderer(cfg config.Config) *TerminalRenderer {
	width := cfg.Width
	if width <= 0 {
		width = TerminalWidth(os.Stdout)
	}
	if width < config.MinWidth {
		width = config.MinWidth
	}
	return &TerminalRenderer{
		Width:  width,
		Colour: cfg.Colour && !color.NoColor,
	}
}

// TerminalWidth returns the column count of f, or config.DefaultWidth when it
// is not a terminal.
func TerminalWidth(f *os.File) int {
	width := config.DefaultWidth
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return width
	}
	if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
		width = w
	}
	return width
}

// Render implements Renderer.
func (r *TerminalRenderer) Render(w io.Writer, v View, text string) error {
	width := r.Width
	if width < config.MinWidth {
		width = config.MinWidth
	}

	// Two columns of border and one of padding on each side.
	inner := width - 4
	lines := util.WrapText(text, inner)

	var b strings.Builder
	b.WriteString(v.Summary())
	b.WriteString("\n")

	border := "+" + strings.Repeat("-", width-2) + "+\n"
	b.WriteString(border)
	for _, line := range lines {
		cell := " " + util.PadRight(line, inner) + " "
		b.WriteString("|")
		b.WriteString(r.paint(v, cell))
		b.WriteString("|\n")
	}
	b.WriteString(border)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}
	return nil
}

func (r *TerminalRenderer) paint(v View, s string) string {
	if !r.Colour {
		return s
	}

	bg := v.Background
	fg := v.Foreground.RGB()
	c := color.New().
		AddBgRGB(int(bg.R), int(bg.G), int(bg.B)).
		AddRGB(int(fg.R), int(fg.G), int(fg.B))
	c.EnableColor()
	return c.Sprint(s)
}
