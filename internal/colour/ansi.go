package colour

import (
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

const defaultSwatchWidth = 8

// Swatch paints colour samples for the terminal using 24-bit colour. With
// Colour unset nothing is painted, so output stays plain under NO_COLOR or
// when stdout is not a terminal.
type Swatch struct {
	Colour bool
}

// Block returns a solid block of c, width cells wide. It is empty when colour
// is off.
func (s Swatch) Block(c RGB, width int) string {
	if !s.Colour {
		return ""
	}
	if width <= 0 {
		width = defaultSwatchWidth
	}
	return s.paint(color.New().AddBgRGB(int(c.R), int(c.G), int(c.B)), strings.Repeat(" ", width))
}

// Text returns text drawn in fg on a bg block, centred in width cells or
// truncated to fit. With colour off the centred text is returned unpainted.
func (s Swatch) Text(bg, fg RGB, text string, width int) string {
	if width <= 0 {
		width = defaultSwatchWidth
	}

	n := utf8.RuneCountInString(text)
	switch {
	case n > width:
		text = string([]rune(text)[:width])
	case n < width:
		left := (width - n) / 2
		text = strings.Repeat(" ", left) + text + strings.Repeat(" ", width-n-left)
	}

	c := color.New().
		AddBgRGB(int(bg.R), int(bg.G), int(bg.B)).
		AddRGB(int(fg.R), int(fg.G), int(fg.B))
	return s.paint(c, text)
}

// WithHex returns a block of c followed by its hex code, or just the hex code
// when colour is off.
func (s Swatch) WithHex(c RGB, width int) string {
	if !s.Colour {
		return c.Hex()
	}
	return s.Block(c, width) + " " + c.Hex()
}

func (s Swatch) paint(c *color.Color, text string) string {
	if !s.Colour {
		return text
	}
	c.EnableColor()
	return c.Sprint(text)
}
