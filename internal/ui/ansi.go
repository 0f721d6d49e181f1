package ui

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// SGR colour codes and OSC-8 hyperlink wrappers
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m|\x1b\]8;;[^\x1b]*\x1b\\`)

// StripAnsi removes all ANSI escape codes from a string
func StripAnsi(input string) string {
	return ansiPattern.ReplaceAllString(input, "")
}

// VisibleWidth returns the terminal cell width of a string, ignoring ANSI codes
func VisibleWidth(input string) int {
	return runewidth.StringWidth(StripAnsi(input))
}

// TruncateVisible truncates a string to a maximum visible width. Styling is
// dropped when truncation happens.
func TruncateVisible(input string, maxWidth int) string {
	if VisibleWidth(input) <= maxWidth {
		return input
	}
	return runewidth.Truncate(StripAnsi(input), maxWidth, "...")
}

// PadRight pads a string to a minimum visible width (left-aligned content)
func PadRight(input string, width int) string {
	return input + spaces(width-VisibleWidth(input))
}

// PadLeft pads a string to a minimum visible width (right-aligned content)
func PadLeft(input string, width int) string {
	return spaces(width-VisibleWidth(input)) + input
}

// spaces returns a string of n spaces
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
