// Package colour decodes hex colours and decides which text colour reads best
// on a given background.
package colour

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
)

// ErrInvalidColourFormat is returned when a string is neither a 3-digit nor a
// 6-digit hex colour (optionally prefixed with '#').
var ErrInvalidColourFormat = errors.New("invalid colour format")

// RGB represents a color in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// RGBA converts the colour to an opaque color.RGBA.
func (rgb RGB) RGBA() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// ParseHex decodes "#RGB", "#RRGGBB", "RGB" or "RRGGBB" (any case).
// Shorthand digits are doubled, so "#03F" decodes the same as "#0033FF".
// Anything else yields ErrInvalidColourFormat; no partial colour is returned.
func ParseHex(hex string) (RGB, error) {
	digits := hex
	if len(digits) > 0 && digits[0] == '#' {
		digits = digits[1:]
	}

	if !isHexDigits(digits) {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColourFormat, hex)
	}

	switch len(digits) {
	case 3:
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	case 6:
	default:
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColourFormat, hex)
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColourFormat, hex)
		}
		channels[i] = uint8(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// Intended for package-level constants and tests.
func MustParseHex(hex string) RGB {
	rgb, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return rgb
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
