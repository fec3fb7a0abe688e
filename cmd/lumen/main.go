// Lumen - a WCAG colour contrast checker
//
// Lumen checks colour pairs against the WCAG 2.1 contrast thresholds,
// derives accessible colour schemes, and audits schemes into graded
// accessibility reports.
//
// Copyright (c) 2025 The Lumen Authors
// Licensed under the MIT License
package main

import (
	"github.com/luminatehq/lumen/internal/cli"
)

func main() {
	cli.Execute()
}
