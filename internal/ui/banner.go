package ui

import (
	"fmt"
	"os"
	"strings"
)

var bannerEmitted = false

// PrintBanner displays a boxed product header once per process, only on a TTY.
func PrintBanner(version, subtitle string) {
	if bannerEmitted || !isTTY() {
		return
	}
	writeLine(FormatBanner(version, subtitle))
	bannerEmitted = true
}

// FormatBanner returns the boxed header without printing it.
func FormatBanner(version, subtitle string) string {
	const width = 60

	badge := AccentBright("%s", " ◆ THEME ")

	titleText := fmt.Sprintf("%s %s", badge, Muted("%s", version))
	titlePad := max(0, width-2-VisibleWidth(titleText))
	subPad := max(0, width-2-VisibleWidth(subtitle))

	lines := []string{
		"",
		Muted("%s", boxTopLeft+strings.Repeat(boxHorizontal, width)+boxTopRight),
		fmt.Sprintf("%s  %s%s%s", Muted(boxVertical), titleText, spaces(titlePad), Muted(boxVertical)),
		fmt.Sprintf("%s  %s%s%s", Muted(boxVertical), Subtle("%s", subtitle), spaces(subPad), Muted(boxVertical)),
		Muted("%s", boxBottomLeft+strings.Repeat(boxHorizontal, width)+boxBottomRight),
	}
	return strings.Join(lines, "\n")
}

// isTTY checks if stdout is a terminal
func isTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
