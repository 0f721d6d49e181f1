package theme

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var lengthPattern = regexp.MustCompile(`^(0|-?[0-9]*\.?[0-9]+(px|rem|em|%|vh|vw))$`)

// ValidationError lists every problem found in a theme.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "theme validation failed:\n  - " + strings.Join(e.Problems, "\n  - ")
}

// Validate checks that every token holds a well-formed value for its kind.
func (t ThemeConfig) Validate() error {
	var problems []string

	for _, tk := range t.Tokens() {
		if strings.TrimSpace(tk.Value) == "" {
			problems = append(problems, fmt.Sprintf("%s is empty", tk.Path))
			continue
		}
		switch tk.Kind {
		case KindColor:
			if _, _, err := ParseColor(tk.Value); err != nil {
				problems = append(problems, fmt.Sprintf("%s: %v", tk.Path, err))
			}
		case KindLength:
			if !lengthPattern.MatchString(tk.Value) {
				problems = append(problems, fmt.Sprintf("%s: %q is not a CSS length", tk.Path, tk.Value))
			}
		case KindFontWeight:
			w, err := strconv.Atoi(tk.Value)
			if err != nil || w < 100 || w > 900 || w%100 != 0 {
				problems = append(problems, fmt.Sprintf("%s: %q is not a numeric font weight", tk.Path, tk.Value))
			}
		case KindShadow:
			c, ok := shadowColor(tk.Value)
			if !ok {
				problems = append(problems, fmt.Sprintf("%s: no colour in %q", tk.Path, tk.Value))
			} else if _, _, err := ParseColor(c); err != nil {
				problems = append(problems, fmt.Sprintf("%s: %v", tk.Path, err))
			}
		}
	}

	if t.Font.Size <= 0 {
		problems = append(problems, "font.size must be positive")
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// Contrast is the WCAG contrast of one text colour against one background.
type Contrast struct {
	Foreground string // token path
	Background string // token path
	Ratio      float64
}

// PassesAA reports whether the pair meets WCAG AA for normal text.
func (c Contrast) PassesAA() bool { return c.Ratio >= 4.5 }

// PassesAAA reports whether the pair meets WCAG AAA for normal text.
func (c Contrast) PassesAAA() bool { return c.Ratio >= 7 }

// TextContrast measures every text-bearing colour against the background
// and surface colours.
func (t ThemeConfig) TextContrast() ([]Contrast, error) {
	fgs := []string{"colors.textPrimary", "colors.textSecondary", "colors.primary", "colors.link", "colors.linkHover"}
	bgs := []string{"colors.background", "colors.surface"}

	out := make([]Contrast, 0, len(fgs)*len(bgs))
	for _, fg := range fgs {
		for _, bg := range bgs {
			fv, err := t.Value(fg)
			if err != nil {
				return nil, err
			}
			bv, err := t.Value(bg)
			if err != nil {
				return nil, err
			}
			ratio, err := ContrastRatio(fv, bv)
			if err != nil {
				return nil, fmt.Errorf("contrast %s on %s: %w", fg, bg, err)
			}
			out = append(out, Contrast{Foreground: fg, Background: bg, Ratio: ratio})
		}
	}
	return out, nil
}
