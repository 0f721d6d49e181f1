package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Box-drawing characters
const (
	boxTopLeft     = "╭"
	boxTopRight    = "╮"
	boxBottomLeft  = "╰"
	boxBottomRight = "╯"
	boxHorizontal  = "─"
	boxVertical    = "│"
)

var (
	outMu sync.Mutex
	out   io.Writer = color.Output
	debug bool
)

// SetOutput redirects all log output; tests use it to capture lines.
func SetOutput(w io.Writer) {
	outMu.Lock()
	defer outMu.Unlock()
	if w == nil {
		w = color.Output
	}
	out = w
}

// SetDebug enables "debug" status lines.
func SetDebug(enabled bool) {
	outMu.Lock()
	defer outMu.Unlock()
	debug = enabled
}

func writeLine(line string) {
	outMu.Lock()
	defer outMu.Unlock()
	fmt.Fprintln(out, line)
}

func timestamp() string {
	return Muted("%s", time.Now().Format("15:04:05"))
}

// LogStatus displays a status message with appropriate styling
func LogStatus(category, message string) {
	var icon, styledMsg string

	switch category {
	case "success":
		icon = Success("✔")
		styledMsg = Success("%s", message)
	case "error":
		icon = Error("✖")
		styledMsg = Error("%s", message)
	case "warning":
		icon = Warn("⚠")
		styledMsg = Warn("%s", message)
	case "info":
		icon = Info("ℹ")
		styledMsg = Subtle("%s", message)
	case "debug":
		outMu.Lock()
		enabled := debug
		outMu.Unlock()
		if !enabled {
			return
		}
		icon = Muted("·")
		styledMsg = Muted("%s", message)
	default:
		icon = Muted("●")
		styledMsg = Subtle("%s", message)
	}

	writeLine(fmt.Sprintf("%s  %s  %s", timestamp(), icon, styledMsg))
}

// LogSection creates a section header
func LogSection(title string) {
	writeLine("")
	writeLine(fmt.Sprintf("%s %s %s",
		Muted("──"),
		Heading("%s", title),
		Muted("%s", strings.Repeat("─", max(0, 50-VisibleWidth(title))))))
}

// LogGroup starts a grouped block of messages
func LogGroup(title string) {
	writeLine("")
	writeLine(fmt.Sprintf("%s %s %s",
		Muted("%s%s", boxTopLeft, strings.Repeat(boxHorizontal, 2)),
		AccentBright("%s", title),
		Muted("%s%s", strings.Repeat(boxHorizontal, max(0, 50-VisibleWidth(title))), boxTopRight)))
}

// LogGroupEnd closes a grouped block
func LogGroupEnd() {
	writeLine(Muted("%s", boxBottomLeft+strings.Repeat(boxHorizontal, 56)+boxBottomRight))
	writeLine("")
}

// LogGroupItem logs an item within a group
func LogGroupItem(label, value string) {
	writeLine(fmt.Sprintf("%s  %s %s",
		Muted(boxVertical),
		Muted("%s", label+":"),
		Accent("%s", value)))
}

// LogMetric displays a metric value
func LogMetric(name string, value interface{}, unit string) {
	writeLine(fmt.Sprintf("%s  %s  %s: %s %s",
		timestamp(),
		Muted("◈"),
		Subtle("%s", name),
		Accent("%v", value),
		Muted("%s", unit)))
}

// PrintSeparator prints a subtle horizontal separator
func PrintSeparator() {
	writeLine(Muted("%s", "  "+strings.Repeat("─", 56)))
}

// PrintFooter displays a footer message
func PrintFooter(message string) {
	writeLine("")
	writeLine(fmt.Sprintf("  %s %s", Muted("▸"), Muted("%s", message)))
}
