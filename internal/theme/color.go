package theme

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	rgbaPattern   = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*([0-9]*\.?[0-9]+)\s*)?\)$`)
	shadowColorRe = regexp.MustCompile(`rgba?\([^)]*\)|#[0-9a-fA-F]{3,6}\b`)
)

// ParseColor parses "#rgb", "#rrggbb", "rgb(r, g, b)" and "rgba(r, g, b, a)".
// The returned alpha is 1 for opaque notations.
func ParseColor(s string) (colorful.Color, float64, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		if len(s) != 4 && len(s) != 7 {
			return colorful.Color{}, 0, fmt.Errorf("invalid hex colour %q", s)
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("invalid hex colour %q: %w", s, err)
		}
		return c, 1, nil
	}

	m := rgbaPattern.FindStringSubmatch(s)
	if m == nil {
		return colorful.Color{}, 0, fmt.Errorf("unrecognised colour %q", s)
	}
	var ch [3]float64
	for i := 0; i < 3; i++ {
		v, _ := strconv.Atoi(m[i+1])
		if v > 255 {
			return colorful.Color{}, 0, fmt.Errorf("colour channel out of range in %q", s)
		}
		ch[i] = float64(v) / 255
	}
	alpha := 1.0
	if m[4] != "" {
		a, err := strconv.ParseFloat(m[4], 64)
		if err != nil || a > 1 {
			return colorful.Color{}, 0, fmt.Errorf("invalid alpha in %q", s)
		}
		alpha = a
	}
	return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, alpha, nil
}

// RGB returns the 8-bit channels of a colour string.
func RGB(s string) (r, g, b uint8, err error) {
	c, _, err := ParseColor(s)
	if err != nil {
		return 0, 0, 0, err
	}
	r, g, b = c.RGB255()
	return r, g, b, nil
}

// ContrastRatio returns the WCAG 2 contrast ratio between two colours,
// from 1 (identical luminance) to 21 (black on white). Alpha is ignored.
func ContrastRatio(fg, bg string) (float64, error) {
	a, _, err := ParseColor(fg)
	if err != nil {
		return 0, err
	}
	b, _, err := ParseColor(bg)
	if err != nil {
		return 0, err
	}
	la, lb := luminance(a), luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05), nil
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// shadowColor extracts the colour part of a CSS box-shadow definition.
func shadowColor(shadow string) (string, bool) {
	m := shadowColorRe.FindString(shadow)
	return m, m != ""
}
