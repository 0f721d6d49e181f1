package ui

import (
	"os"
	"strings"

	"github.com/fatih/color"

	"dashboard-theme/internal/theme"
)

// Styling helpers respect NO_COLOR and FORCE_COLOR.

var (
	noColor    = os.Getenv("NO_COLOR") != ""
	forceColor = isForceColor()
)

func init() {
	if forceColor {
		color.NoColor = false
	}
}

func isForceColor() bool {
	fc := strings.TrimSpace(os.Getenv("FORCE_COLOR"))
	return fc != "" && fc != "0"
}

// IsRich returns true if the terminal supports rich output (colors)
func IsRich() bool {
	if noColor && !forceColor {
		return false
	}
	return !color.NoColor
}

// hexColor builds a true-colour foreground from a theme colour string,
// falling back to the basic attributes when the value does not parse.
func hexColor(hex string, fallback ...color.Attribute) *color.Color {
	r, g, b, err := theme.RGB(hex)
	if err != nil {
		return color.New(fallback...)
	}
	c := color.RGB(int(r), int(g), int(b))
	for _, attr := range fallback {
		if attr == color.Bold {
			c.Add(color.Bold)
		}
	}
	return c
}

// Accent returns primary brand-colored text
func Accent(format string, a ...interface{}) string {
	return hexColor(Palette.Accent, color.FgCyan).Sprintf(format, a...)
}

// AccentBright returns highlighted accent text
func AccentBright(format string, a ...interface{}) string {
	return hexColor(Palette.AccentBright, color.FgHiCyan, color.Bold).Sprintf(format, a...)
}

// AccentDim returns muted accent text
func AccentDim(format string, a ...interface{}) string {
	return hexColor(Palette.AccentDim, color.FgBlue).Sprintf(format, a...)
}

// Info returns informational styled text
func Info(format string, a ...interface{}) string {
	return hexColor(Palette.Info, color.FgHiCyan).Sprintf(format, a...)
}

// Success returns success-styled text
func Success(format string, a ...interface{}) string {
	return hexColor(Palette.Success, color.FgGreen).Sprintf(format, a...)
}

// Warn returns warning-styled text
func Warn(format string, a ...interface{}) string {
	return hexColor(Palette.Warn, color.FgYellow).Sprintf(format, a...)
}

// Error returns error-styled text
func Error(format string, a ...interface{}) string {
	return hexColor(Palette.Error, color.FgRed).Sprintf(format, a...)
}

// Muted returns secondary/hint text
func Muted(format string, a ...interface{}) string {
	return hexColor(Palette.Muted, color.FgHiBlack).Sprintf(format, a...)
}

// Heading returns bold accent text for section headers
func Heading(format string, a ...interface{}) string {
	return hexColor(Palette.Accent, color.FgCyan, color.Bold).Sprintf(format, a...)
}

// Subtle returns plain body text
func Subtle(format string, a ...interface{}) string {
	return hexColor(Palette.Text, color.FgWhite).Sprintf(format, a...)
}

// Bold returns bold body text
func Bold(format string, a ...interface{}) string {
	return hexColor(Palette.Text, color.FgWhite, color.Bold).Sprintf(format, a...)
}
