// Package format provides colored terminal output helpers for the CLI.
package format

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	ErrorColor   = color.New(color.FgRed, color.Bold)
	SuccessColor = color.New(color.FgGreen, color.Bold)
	InfoColor    = color.New(color.FgCyan)
	PathColor    = color.New(color.FgCyan)
)

func init() {
	// NO_COLOR wins over everything else.
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		color.NoColor = true
	}
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Error prints an error line to stderr.
func Error(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorColor.Sprint("Error:"), fmt.Sprintf(format, args...))
}

// Success prints a success line to stdout.
func Success(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", SuccessColor.Sprint("✓"), fmt.Sprintf(format, args...))
}

// Info prints an informational line to stdout.
func Info(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", InfoColor.Sprint("•"), fmt.Sprintf(format, args...))
}

// WrittenTo prints the path an artifact was written to.
func WrittenTo(what, path string) {
	fmt.Printf("The %s has been written to:\n  %s\n", what, PathColor.Sprint(path))
}
