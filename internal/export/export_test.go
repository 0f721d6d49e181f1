package export

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"dashboard-theme/internal/theme"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Format
	}{
		{in: "css", want: FormatCSS},
		{in: ".JSON", want: FormatJSON},
		{in: "yml", want: FormatYAML},
		{in: "yaml", want: FormatYAML},
		{in: " js ", want: FormatJS},
		{in: "mjs", want: FormatJS},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseFormat("toml")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestRenderUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := Render(theme.Default(), Format("xml"))
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestCSSVariable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "--colors-primary", CSSVariable("colors.primary"))
	assert.Equal(t, "--colors-primary-light", CSSVariable("colors.primaryLight"))
	assert.Equal(t, "--spacing-padding-medium", CSSVariable("spacing.paddingMedium"))
	assert.Equal(t, "--border-radius", CSSVariable("borderRadius"))
	assert.Equal(t, "--interactive-hover-bg", CSSVariable("interactive.hoverBg"))
}

func TestRenderCSS(t *testing.T) {
	t.Parallel()

	out, err := Render(theme.Default(), FormatCSS)
	require.NoError(t, err)

	css := string(out)
	assert.True(t, strings.HasPrefix(css, ":root {\n"))
	assert.True(t, strings.HasSuffix(css, "}\n"))
	assert.Contains(t, css, "  --colors-primary: #4fc3f7;\n")
	assert.Contains(t, css, "  --font-size: 16;\n")
	assert.Contains(t, css, "  --breakpoints-tablet: 768px;\n")
	assert.Contains(t, css, "  --box-shadow: 0 0 12px rgba(79, 195, 247, 0.3);\n")
	assert.Equal(t, len(theme.Default().Tokens()), strings.Count(css, ";\n"))
}

func TestRenderJSONKeepsNestedShape(t *testing.T) {
	t.Parallel()

	out, err := Render(theme.Default(), FormatJSON)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))

	colors := doc["colors"].(map[string]any)
	assert.Equal(t, "#4fc3f7", colors["primary"])
	assert.Equal(t, "#81d4fa", colors["linkHover"])

	font := doc["font"].(map[string]any)
	assert.Equal(t, float64(16), font["size"])
	assert.Equal(t, "700", font["weightBold"])

	assert.Equal(t, "8px", doc["borderRadius"])
}

func TestRenderYAML(t *testing.T) {
	t.Parallel()

	out, err := Render(theme.Default(), FormatYAML)
	require.NoError(t, err)

	var got theme.ThemeConfig
	require.NoError(t, yaml.Unmarshal(out, &got))
	assert.Equal(t, theme.Default(), got)
	assert.Contains(t, string(out), "tablet: 768px")
}

func TestRenderJSModule(t *testing.T) {
	t.Parallel()

	out, err := Render(theme.Default(), FormatJS)
	require.NoError(t, err)

	js := string(out)
	assert.Contains(t, js, "const theme = {\n")
	assert.Contains(t, js, `"primary": "#4fc3f7"`)
	assert.Contains(t, js, "    getPrimaryColor() {\n        return this.colors.primary;\n    },\n")
	assert.Contains(t, js, "    getLinkHoverColor() {\n        return this.colors.linkHover;\n    }\n};\n")
	assert.True(t, strings.HasSuffix(js, "export default theme;\n"))
	assert.Equal(t, 7, strings.Count(js, "() {"))
}

func TestContentType(t *testing.T) {
	t.Parallel()

	for _, f := range Formats() {
		assert.NotEqual(t, "application/octet-stream", ContentType(f), f)
	}
	assert.Equal(t, "text/css; charset=utf-8", ContentType(FormatCSS))
}
