package theme

// Colors maps colour roles to hex or rgba colour strings.
type Colors struct {
	Background    string `json:"background" yaml:"background"`
	Surface       string `json:"surface" yaml:"surface"`
	Primary       string `json:"primary" yaml:"primary"`
	PrimaryLight  string `json:"primaryLight" yaml:"primaryLight"`
	PrimaryDark   string `json:"primaryDark" yaml:"primaryDark"`
	Secondary     string `json:"secondary" yaml:"secondary"`
	Error         string `json:"error" yaml:"error"`
	Success       string `json:"success" yaml:"success"`
	Warning       string `json:"warning" yaml:"warning"`
	TextPrimary   string `json:"textPrimary" yaml:"textPrimary"`
	TextSecondary string `json:"textSecondary" yaml:"textSecondary"`
	Border        string `json:"border" yaml:"border"`
	Link          string `json:"link" yaml:"link"`
	LinkHover     string `json:"linkHover" yaml:"linkHover"`
}

// Font describes the base typography. Size is unitless so consumers can do
// arithmetic on it.
type Font struct {
	Family     string `json:"family" yaml:"family"`
	Size       int    `json:"size" yaml:"size"`
	Weight     string `json:"weight" yaml:"weight"`
	WeightBold string `json:"weightBold" yaml:"weightBold"`
}

// Spacing maps padding and margin roles to CSS lengths.
type Spacing struct {
	PaddingSmall  string `json:"paddingSmall" yaml:"paddingSmall"`
	PaddingMedium string `json:"paddingMedium" yaml:"paddingMedium"`
	PaddingLarge  string `json:"paddingLarge" yaml:"paddingLarge"`
	MarginSmall   string `json:"marginSmall" yaml:"marginSmall"`
	MarginMedium  string `json:"marginMedium" yaml:"marginMedium"`
	MarginLarge   string `json:"marginLarge" yaml:"marginLarge"`
}

// Breakpoints maps device classes to the minimum viewport width.
type Breakpoints struct {
	Mobile  string `json:"mobile" yaml:"mobile"`
	Tablet  string `json:"tablet" yaml:"tablet"`
	Desktop string `json:"desktop" yaml:"desktop"`
}

// Interactive holds background colours for pointer states.
type Interactive struct {
	HoverBg  string `json:"hoverBg" yaml:"hoverBg"`
	ActiveBg string `json:"activeBg" yaml:"activeBg"`
}

// ThemeConfig is the complete dashboard theme.
type ThemeConfig struct {
	Colors       Colors      `json:"colors" yaml:"colors"`
	Font         Font        `json:"font" yaml:"font"`
	Spacing      Spacing     `json:"spacing" yaml:"spacing"`
	BorderRadius string      `json:"borderRadius" yaml:"borderRadius"`
	BoxShadow    string      `json:"boxShadow" yaml:"boxShadow"`
	Breakpoints  Breakpoints `json:"breakpoints" yaml:"breakpoints"`
	Interactive  Interactive `json:"interactive" yaml:"interactive"`
}

// dark is the dashboard's only theme. It must stay free of maps, slices and
// pointers: Default hands out copies and relies on them being deep.
var dark = ThemeConfig{
	Colors: Colors{
		Background:    "#121212",
		Surface:       "#1a1a1a",
		Primary:       "#4fc3f7",
		PrimaryLight:  "#81d4fa",
		PrimaryDark:   "#1f78b4",
		Secondary:     "#80deea",
		Error:         "#f44336",
		Success:       "#00cc96",
		Warning:       "#ffae42",
		TextPrimary:   "#e0e0e0",
		TextSecondary: "#aaa",
		Border:        "#333",
		Link:          "#4fc3f7",
		LinkHover:     "#81d4fa",
	},
	Font: Font{
		Family:     "'Segoe UI', Tahoma, Geneva, Verdana, sans-serif",
		Size:       16,
		Weight:     "400",
		WeightBold: "700",
	},
	Spacing: Spacing{
		PaddingSmall:  "0.5rem",
		PaddingMedium: "1rem",
		PaddingLarge:  "1.5rem",
		MarginSmall:   "0.5rem",
		MarginMedium:  "1rem",
		MarginLarge:   "1.5rem",
	},
	BorderRadius: "8px",
	BoxShadow:    "0 0 12px rgba(79, 195, 247, 0.3)",
	Breakpoints: Breakpoints{
		Mobile:  "480px",
		Tablet:  "768px",
		Desktop: "1024px",
	},
	Interactive: Interactive{
		HoverBg:  "#1f78b4",
		ActiveBg: "#1665a2",
	},
}

// Default returns the dashboard theme.
func Default() ThemeConfig {
	return dark
}

// PrimaryColor returns colors.primary.
func (t ThemeConfig) PrimaryColor() string { return t.Colors.Primary }

// SecondaryColor returns colors.secondary.
func (t ThemeConfig) SecondaryColor() string { return t.Colors.Secondary }

// ErrorColor returns colors.error.
func (t ThemeConfig) ErrorColor() string { return t.Colors.Error }

// SuccessColor returns colors.success.
func (t ThemeConfig) SuccessColor() string { return t.Colors.Success }

// WarningColor returns colors.warning.
func (t ThemeConfig) WarningColor() string { return t.Colors.Warning }

// LinkColor returns colors.link.
func (t ThemeConfig) LinkColor() string { return t.Colors.Link }

// LinkHoverColor returns colors.linkHover.
func (t ThemeConfig) LinkHoverColor() string { return t.Colors.LinkHover }
