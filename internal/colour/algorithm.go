package colour

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// ErrUnknownAlgorithm is returned for an algorithm name that is not recognised.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm selects how the foreground colour is decided.
type Algorithm string

const (
	// AlgorithmSimple uses perceived brightness against a fixed threshold.
	AlgorithmSimple Algorithm = "simple"
	// AlgorithmW3C compares WCAG contrast ratios for black and white text.
	AlgorithmW3C Algorithm = "w3c"
)

// Algorithms lists every supported algorithm.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmSimple, AlgorithmW3C}
}

// ParseAlgorithm parses an algorithm name. "wcag" is accepted as an alias
// for "w3c".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "simple":
		return AlgorithmSimple, nil
	case "w3c", "wcag":
		return AlgorithmW3C, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: simple, w3c)", ErrUnknownAlgorithm, s)
	}
}

// Foreground decides the text colour for backgroundHex using this algorithm.
func (a Algorithm) Foreground(backgroundHex string) (Foreground, error) {
	bg, err := ParseHex(backgroundHex)
	if err != nil {
		return Black, err
	}
	return a.ForegroundRGB(bg)
}

// ForegroundRGB is Foreground for an already decoded background.
func (a Algorithm) ForegroundRGB(bg RGB) (Foreground, error) {
	switch a {
	case AlgorithmSimple, "":
		return foregroundSimple(bg), nil
	case AlgorithmW3C:
		return foregroundW3C(bg), nil
	default:
		return Black, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
	}
}

// Toggle returns the other algorithm.
func (a Algorithm) Toggle() Algorithm {
	if a == AlgorithmW3C {
		return AlgorithmSimple
	}
	return AlgorithmW3C
}

// DisplayName returns the name shown to users.
func (a Algorithm) DisplayName() string {
	switch a {
	case AlgorithmW3C:
		return "W3C"
	case AlgorithmSimple:
		return "simple"
	default:
		return string(a)
	}
}

// SelectForeground dispatches to the strategy named by alg.
func SelectForeground(alg Algorithm, backgroundHex string) (Foreground, error) {
	return alg.Foreground(backgroundHex)
}

var _ pflag.Value = (*Algorithm)(nil)

// String implements pflag.Value. The zero value reads as "simple".
func (a Algorithm) String() string {
	if a == "" {
		return string(AlgorithmSimple)
	}
	return string(a)
}

// Set implements pflag.Value.
func (a *Algorithm) Set(s string) error {
	parsed, err := ParseAlgorithm(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Type implements pflag.Value.
func (a *Algorithm) Type() string {
	return "algorithm"
}
