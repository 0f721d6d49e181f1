package ui

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Note displays a boxed message with optional title
func Note(message string, title string) {
	writeLine(FormatNote(message, title))
}

// FormatNote returns the boxed message without printing it.
func FormatNote(message string, title string) string {
	lines := strings.Split(WrapNoteMessage(message, 80), "\n")

	inner := 0
	for _, line := range lines {
		inner = max(inner, VisibleWidth(line))
	}
	boxWidth := max(inner+2, VisibleWidth(title)+6)

	var b strings.Builder
	b.WriteString("\n")

	if title != "" {
		fmt.Fprintf(&b, "%s %s %s\n",
			Muted("%s", boxTopLeft+strings.Repeat(boxHorizontal, 2)),
			Heading("%s", title),
			Muted("%s", strings.Repeat(boxHorizontal, max(0, boxWidth-4-VisibleWidth(title)))+boxTopRight))
	} else {
		b.WriteString(Muted("%s", boxTopLeft+strings.Repeat(boxHorizontal, boxWidth)+boxTopRight) + "\n")
	}

	for _, line := range lines {
		fmt.Fprintf(&b, "%s %s %s\n", Muted(boxVertical), PadRight(line, boxWidth-2), Muted(boxVertical))
	}

	b.WriteString(Muted("%s", boxBottomLeft+strings.Repeat(boxHorizontal, boxWidth)+boxBottomRight) + "\n")
	return b.String()
}

// WrapNoteMessage wraps text to fit within terminal width
func WrapNoteMessage(message string, maxWidth int) string {
	columns := 80
	if n, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && n > 0 {
		columns = n
	}

	width := min(columns-10, maxWidth)
	width = max(width, 40)

	var out []string
	for _, line := range strings.Split(message, "\n") {
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

// wrapLine wraps a single line to width, keeping leading indentation.
func wrapLine(line string, maxWidth int) []string {
	if strings.TrimSpace(line) == "" {
		return []string{line}
	}

	indent := line[:len(line)-len(strings.TrimLeft(line, " "))]

	var lines []string
	current := ""
	for _, word := range strings.Fields(line) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if VisibleWidth(indent+candidate) <= maxWidth || current == "" {
			current = candidate
			continue
		}
		lines = append(lines, indent+current)
		current = word
	}
	return append(lines, indent+current)
}

// WarningNote displays a warning-styled note
func WarningNote(message string) {
	Note(message, "⚠ Warning")
}

// ErrorNote displays an error-styled note
func ErrorNote(message string) {
	Note(message, "✗ Error")
}

// SuccessNote displays a success-styled note
func SuccessNote(message string) {
	Note(message, "✓ Success")
}
