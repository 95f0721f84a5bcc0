// ABOUTME: Entry point for the purge CLI tool
// ABOUTME: Initializes and executes the root command
package main

import (
	"fmt"
	"os"

	"github.com/RomanGlegola/Purge-Python-Environment/internal/commands"
	"github.com/RomanGlegola/Purge-Python-Environment/internal/ui"
)

var version = "dev" // Injected at build time via -ldflags

func main() {
	commands.SetVersion(version)

	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.FormatError(err))
		os.Exit(1)
	}
}
