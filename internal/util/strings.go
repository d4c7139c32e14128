// Package util provides shared utility functions used across the application.
package util

import (
	"strings"
	"unicode/utf8"
)

// NormaliseHex trims surrounding whitespace from user-entered colour input.
// The colour engine itself treats whitespace as malformed.
func NormaliseHex(input string) string {
	return strings.TrimSpace(input)
}

// PadRight pads a string with spaces on the right to reach the desired width.
// If the string is already longer than or equal to the width, it is returned unchanged.
func PadRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// WrapText splits text into lines of at most width runes. Embedded newlines
// always start a new line, words are kept whole where they fit, and words
// longer than width are cut. A width of zero or less only splits on newlines.
func WrapText(text string, width int) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(paragraph, width)...)
	}
	return lines
}

func wrapParagraph(text string, width int) []string {
	if width <= 0 || utf8.RuneCountInString(text) <= width {
		return []string{text}
	}

	var (
		lines []string
		line  strings.Builder
		n     int
	)
	flush := func() {
		if n > 0 {
			lines = append(lines, line.String())
			line.Reset()
			n = 0
		}
	}

	for _, field := range strings.Fields(text) {
		word := []rune(field)
		for len(word) > width {
			flush()
			lines = append(lines, string(word[:width]))
			word = word[width:]
		}
		if len(word) == 0 {
			continue
		}
		if n > 0 && n+1+len(word) > width {
			flush()
		}
		if n > 0 {
			line.WriteByte(' ')
			n++
		}
		line.WriteString(string(word))
		n += len(word)
	}
	flush()

	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
