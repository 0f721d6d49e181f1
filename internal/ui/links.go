package ui

import (
	"fmt"
	"os"
	"strings"
)

// SupportsHyperlinks checks if the terminal supports OSC-8 hyperlinks
func SupportsHyperlinks() bool {
	if !isTTY() {
		return false
	}

	termProgram := os.Getenv("TERM_PROGRAM")
	if strings.Contains(termProgram, "iTerm") ||
		strings.Contains(termProgram, "WezTerm") ||
		strings.Contains(termProgram, "vscode") ||
		os.Getenv("WT_SESSION") != "" {
		return true
	}

	return strings.Contains(os.Getenv("TERM"), "kitty")
}

// FormatTerminalLink creates an OSC-8 hyperlink if supported
// Falls back to "label (url)" format if not supported
func FormatTerminalLink(label, url string) string {
	if !SupportsHyperlinks() {
		if label == url {
			return url
		}
		return fmt.Sprintf("%s (%s)", label, url)
	}
	return fmt.Sprintf("\x1b]8;;%s\x1b\\%s\x1b]8;;\x1b\\", url, label)
}

// FormatURL creates a colored link
func FormatURL(url string) string {
	return Info("%s", FormatTerminalLink(url, url))
}

// LocalURL turns a listen address such as ":8050" into a browsable URL.
func LocalURL(addr, path string) string {
	host := addr
	if strings.HasPrefix(host, ":") {
		host = "localhost" + host
	}
	if strings.HasPrefix(host, "0.0.0.0:") {
		host = "localhost" + strings.TrimPrefix(host, "0.0.0.0")
	}
	return "http://" + host + path
}
