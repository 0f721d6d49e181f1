// Package export renders the dashboard theme into the formats its consumers
// load: CSS custom properties, JSON, YAML and an ES module mirroring the
// dashboard's assets/theme.js.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"dashboard-theme/internal/theme"
)

// Format is an export format name; it doubles as the file extension.
type Format string

const (
	FormatCSS  Format = "css"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatJS   Format = "js"
)

// ErrUnknownFormat is returned for format names Render does not support.
var ErrUnknownFormat = errors.New("unknown export format")

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatCSS, FormatJSON, FormatYAML, FormatJS}
}

// ParseFormat accepts a format name or file extension ("yml", ".json").
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".") {
	case "css":
		return FormatCSS, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "js", "mjs", "javascript":
		return FormatJS, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ContentType returns the MIME type served for a format.
func ContentType(f Format) string {
	switch f {
	case FormatCSS:
		return "text/css; charset=utf-8"
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	case FormatJS:
		return "text/javascript; charset=utf-8"
	}
	return "application/octet-stream"
}

// Render encodes the theme in the requested format.
func Render(t theme.ThemeConfig, f Format) ([]byte, error) {
	switch f {
	case FormatCSS:
		return renderCSS(t), nil
	case FormatJSON:
		return renderJSON(t)
	case FormatYAML:
		return renderYAML(t)
	case FormatJS:
		return renderJS(t)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

func renderCSS(t theme.ThemeConfig) []byte {
	var b bytes.Buffer
	b.WriteString(":root {\n")
	for _, tk := range t.Tokens() {
		fmt.Fprintf(&b, "  %s: %s;\n", CSSVariable(tk.Path), tk.Value)
	}
	b.WriteString("}\n")
	return b.Bytes()
}

// CSSVariable converts a token path to its custom property name:
// "colors.primaryLight" becomes "--colors-primary-light".
func CSSVariable(path string) string {
	var b strings.Builder
	b.WriteString("--")
	for _, r := range path {
		switch {
		case r == '.':
			b.WriteByte('-')
		case unicode.IsUpper(r):
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func renderJSON(t theme.ThemeConfig) ([]byte, error) {
	out, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return append(out, '\n'), nil
}

func renderYAML(t theme.ThemeConfig) ([]byte, error) {
	var b bytes.Buffer
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return b.Bytes(), nil
}

// renderJS emits the theme object literal followed by the named colour
// getters, so the module is a drop-in for the dashboard's assets folder.
func renderJS(t theme.ThemeConfig) ([]byte, error) {
	obj, err := json.MarshalIndent(t, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encode js: %w", err)
	}
	body := strings.TrimSuffix(string(obj), "\n}")

	var b bytes.Buffer
	b.WriteString("// theme.js is generated by themectl; do not edit.\n\n")
	b.WriteString("const theme = ")
	b.WriteString(body)
	b.WriteString(",\n")

	accessors := theme.Accessors()
	for i, a := range accessors {
		fmt.Fprintf(&b, "    get%s() {\n        return this.colors.%s;\n    }", a.Name, a.Role)
		if i < len(accessors)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("};\n\nexport default theme;\n")
	return b.Bytes(), nil
}
