package colour

// Foreground is the text colour chosen for a background.
type Foreground int

const (
	// Black is "#000".
	Black Foreground = iota
	// White is "#FFF".
	White
)

// simpleThreshold is the BT.601 brightness above which black text is used.
const simpleThreshold = 186

// Hex returns "#000" or "#FFF".
func (f Foreground) Hex() string {
	if f == White {
		return "#FFF"
	}
	return "#000"
}

// RGB returns the foreground as a colour triple.
func (f Foreground) RGB() RGB {
	if f == White {
		return RGB{R: 255, G: 255, B: 255}
	}
	return RGB{}
}

// String returns the colour name.
func (f Foreground) String() string {
	if f == White {
		return "white"
	}
	return "black"
}

// ForegroundW3C picks black or white text for the background using WCAG
// contrast ratios. White wins only if its ratio is strictly greater, so ties
// resolve to black.
func ForegroundW3C(backgroundHex string) (Foreground, error) {
	bg, err := ParseHex(backgroundHex)
	if err != nil {
		return Black, err
	}
	return foregroundW3C(bg), nil
}

// ForegroundSimple picks black text when the background's weighted
// brightness exceeds 186, white otherwise.
func ForegroundSimple(backgroundHex string) (Foreground, error) {
	bg, err := ParseHex(backgroundHex)
	if err != nil {
		return Black, err
	}
	return foregroundSimple(bg), nil
}

func foregroundW3C(bg RGB) Foreground {
	lum := bg.Luminance()
	withWhiteText := ContrastRatio(1, lum)
	withBlackText := ContrastRatio(lum, 0)

	if withWhiteText > withBlackText {
		return White
	}
	return Black
}

func foregroundSimple(bg RGB) Foreground {
	if bg.Brightness() > simpleThreshold {
		return Black
	}
	return White
}

// Brightness returns the ITU-R BT.601 weighted sum 0.299r + 0.587g + 0.114b,
// in the range [0,255].
func (rgb RGB) Brightness() float64 {
	// Each product is rounded on its own so a fused multiply-add cannot
	// change which side of the threshold a value lands on.
	r := float64(0.299 * float64(rgb.R))
	g := float64(0.587 * float64(rgb.G))
	b := float64(0.114 * float64(rgb.B))
	return r + g + b
}
