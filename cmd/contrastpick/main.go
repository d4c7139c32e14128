// contrastpick - readable text colours for any background
//
// contrastpick decides whether black or white text should be drawn on a
// background colour, using either a simple brightness threshold or WCAG
// contrast ratios, and previews the result.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/contrastpick/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
