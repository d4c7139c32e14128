package colour

import "math"

// Luminance calculates the relative luminance of the colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func (rgb RGB) Luminance() float64 {
	r := linearise(float64(rgb.R) / 255.0)
	g := linearise(float64(rgb.G) / 255.0)
	b := linearise(float64(rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// LuminanceHex decodes hex and returns its relative luminance.
func LuminanceHex(hex string) (float64, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return 0, err
	}
	return rgb.Luminance(), nil
}

// linearise converts a gamma-encoded sRGB component in [0,1] to linear light.
func linearise(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio returns (brighter+0.05)/(darker+0.05).
// The arguments are used as given; pass the lighter luminance first for a
// ratio between 1 and 21.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(brighterLuminance, darkerLuminance float64) float64 {
	return (brighterLuminance + 0.05) / (darkerLuminance + 0.05)
}

// Contrast returns the contrast ratio between two colours, ordering them so
// the result is always at least 1.
func Contrast(a, b RGB) float64 {
	l1 := a.Luminance()
	l2 := b.Luminance()

	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return ContrastRatio(l1, l2)
}
