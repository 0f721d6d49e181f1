package theme

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies a token's value.
type Kind string

const (
	KindColor      Kind = "color"
	KindLength     Kind = "length"
	KindNumber     Kind = "number"
	KindFontFamily Kind = "font-family"
	KindFontWeight Kind = "font-weight"
	KindShadow     Kind = "shadow"
)

// Token is one named style value, addressed by its dotted path
// (for example "colors.primary" or "spacing.paddingMedium").
type Token struct {
	Path  string
	Value string
	Kind  Kind
}

// Group returns the first path segment ("colors" for "colors.primary").
func (tk Token) Group() string {
	group, _, _ := strings.Cut(tk.Path, ".")
	return group
}

// Name returns the last path segment ("primary" for "colors.primary").
func (tk Token) Name() string {
	if i := strings.LastIndexByte(tk.Path, '.'); i >= 0 {
		return tk.Path[i+1:]
	}
	return tk.Path
}

// ErrUnknownToken is returned when a token path is not part of the theme.
var ErrUnknownToken = errors.New("unknown theme token")

// Tokens lists every value of the theme in definition order.
func (t ThemeConfig) Tokens() []Token {
	c := t.Colors
	return []Token{
		{"colors.background", c.Background, KindColor},
		{"colors.surface", c.Surface, KindColor},
		{"colors.primary", c.Primary, KindColor},
		{"colors.primaryLight", c.PrimaryLight, KindColor},
		{"colors.primaryDark", c.PrimaryDark, KindColor},
		{"colors.secondary", c.Secondary, KindColor},
		{"colors.error", c.Error, KindColor},
		{"colors.success", c.Success, KindColor},
		{"colors.warning", c.Warning, KindColor},
		{"colors.textPrimary", c.TextPrimary, KindColor},
		{"colors.textSecondary", c.TextSecondary, KindColor},
		{"colors.border", c.Border, KindColor},
		{"colors.link", c.Link, KindColor},
		{"colors.linkHover", c.LinkHover, KindColor},

		{"font.family", t.Font.Family, KindFontFamily},
		{"font.size", strconv.Itoa(t.Font.Size), KindNumber},
		{"font.weight", t.Font.Weight, KindFontWeight},
		{"font.weightBold", t.Font.WeightBold, KindFontWeight},

		{"spacing.paddingSmall", t.Spacing.PaddingSmall, KindLength},
		{"spacing.paddingMedium", t.Spacing.PaddingMedium, KindLength},
		{"spacing.paddingLarge", t.Spacing.PaddingLarge, KindLength},
		{"spacing.marginSmall", t.Spacing.MarginSmall, KindLength},
		{"spacing.marginMedium", t.Spacing.MarginMedium, KindLength},
		{"spacing.marginLarge", t.Spacing.MarginLarge, KindLength},

		{"borderRadius", t.BorderRadius, KindLength},
		{"boxShadow", t.BoxShadow, KindShadow},

		{"breakpoints.mobile", t.Breakpoints.Mobile, KindLength},
		{"breakpoints.tablet", t.Breakpoints.Tablet, KindLength},
		{"breakpoints.desktop", t.Breakpoints.Desktop, KindLength},

		{"interactive.hoverBg", t.Interactive.HoverBg, KindColor},
		{"interactive.activeBg", t.Interactive.ActiveBg, KindColor},
	}
}

// Lookup returns the value stored under a dotted token path.
func (t ThemeConfig) Lookup(path string) (string, bool) {
	for _, tk := range t.Tokens() {
		if tk.Path == path {
			return tk.Value, true
		}
	}
	return "", false
}

// Value is Lookup with an error for unknown paths.
func (t ThemeConfig) Value(path string) (string, error) {
	v, ok := t.Lookup(path)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownToken, path)
	}
	return v, nil
}

// Color returns the colour stored under a bare role name such as "primary".
func (t ThemeConfig) Color(role string) (string, bool) {
	return t.Lookup("colors." + role)
}

// Accessor pairs a named colour getter with the colour role it reads.
type Accessor struct {
	Name string // getter name without the "get" prefix, e.g. "PrimaryColor"
	Role string // colour role, e.g. "primary"
	Get  func(ThemeConfig) string
}

// Accessors returns the named colour getters in a stable order.
func Accessors() []Accessor {
	return []Accessor{
		{"PrimaryColor", "primary", ThemeConfig.PrimaryColor},
		{"SecondaryColor", "secondary", ThemeConfig.SecondaryColor},
		{"ErrorColor", "error", ThemeConfig.ErrorColor},
		{"SuccessColor", "success", ThemeConfig.SuccessColor},
		{"WarningColor", "warning", ThemeConfig.WarningColor},
		{"LinkColor", "link", ThemeConfig.LinkColor},
		{"LinkHoverColor", "linkHover", ThemeConfig.LinkHoverColor},
	}
}
