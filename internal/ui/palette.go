package ui

import "dashboard-theme/internal/theme"

// CLIPalette maps terminal roles onto dashboard theme colours so the CLI and
// the dashboard share one look.
type CLIPalette struct {
	// Primary accent colors
	Accent       string // colors.primary
	AccentBright string // colors.primaryLight
	AccentDim    string // colors.primaryDark

	// Semantic colors
	Info    string // colors.secondary
	Success string // colors.success
	Warn    string // colors.warning
	Error   string // colors.error

	// Neutral
	Text  string // colors.textPrimary
	Muted string // colors.textSecondary
}

// PaletteFrom derives the CLI palette from a dashboard theme.
func PaletteFrom(t theme.ThemeConfig) CLIPalette {
	return CLIPalette{
		Accent:       t.PrimaryColor(),
		AccentBright: t.Colors.PrimaryLight,
		AccentDim:    t.Colors.PrimaryDark,
		Info:         t.SecondaryColor(),
		Success:      t.SuccessColor(),
		Warn:         t.WarningColor(),
		Error:        t.ErrorColor(),
		Text:         t.Colors.TextPrimary,
		Muted:        t.Colors.TextSecondary,
	}
}

// Palette is the palette used by every styling helper in this package.
var Palette = PaletteFrom(theme.Default())
