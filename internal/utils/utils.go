package utils

import (
	"fmt"
	"io"
	"os"
)

// Color output helpers
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
)

// Color toggles ANSI colors in the Print helpers.
var Color = true

func printLine(w io.Writer, color, symbol, msg string, args ...interface{}) {
	line := fmt.Sprintf(symbol+" "+msg, args...)
	if Color {
		line = color + line + ColorReset
	}
	fmt.Fprintln(w, line)
}

// PrintSuccess prints a success message
func PrintSuccess(w io.Writer, msg string, args ...interface{}) {
	printLine(w, ColorGreen, "✓", msg, args...)
}

// PrintError prints an error message
func PrintError(w io.Writer, msg string, args ...interface{}) {
	printLine(w, ColorRed, "✗", msg, args...)
}

// PrintInfo prints an info message
func PrintInfo(w io.Writer, msg string, args ...interface{}) {
	printLine(w, ColorCyan, "ℹ", msg, args...)
}

// PrintWarning prints a warning message
func PrintWarning(w io.Writer, msg string, args ...interface{}) {
	printLine(w, ColorYellow, "⚠", msg, args...)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
