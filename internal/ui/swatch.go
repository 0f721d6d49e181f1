package ui

import (
	"github.com/fatih/color"

	"dashboard-theme/internal/theme"
)

// Swatch renders a small block filled with the given colour. It returns
// padding of the same width when colours are off or the value does not parse.
func Swatch(value string) string {
	const blank = "    "
	if !IsRich() {
		return blank
	}
	r, g, b, err := theme.RGB(value)
	if err != nil {
		return blank
	}
	return color.BgRGB(int(r), int(g), int(b)).Sprint(blank)
}

// SwatchLabel renders a swatch followed by the colour value in that colour.
func SwatchLabel(value string) string {
	r, g, b, err := theme.RGB(value)
	if err != nil || !IsRich() {
		return Swatch(value) + " " + value
	}
	return Swatch(value) + " " + color.RGB(int(r), int(g), int(b)).Sprint(value)
}
