package ui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/mathmcp/mathmcp/pkg/defaults"
)

// Version information - these can be overridden at build time via ldflags:
// go build -ldflags "-X github.com/mathmcp/mathmcp/pkg/ui.Version=1.0.0"
var (
	Version   = defaults.Version
	BuildDate = "2026-08-30"
	Commit    = "dev"
)

// UserAgent returns the User-Agent string for outbound HTTP responses.
func UserAgent() string {
	return fmt.Sprintf("%s/%s", defaults.ToolName, Version)
}

// Global UI state
var (
	silentMode  bool
	noColorMode bool
	uiMu        sync.RWMutex
)

// SetSilent enables or disables silent mode (suppresses banner output)
func SetSilent(silent bool) {
	uiMu.Lock()
	defer uiMu.Unlock()
	silentMode = silent
}

// IsSilent returns whether silent mode is enabled
func IsSilent() bool {
	uiMu.RLock()
	defer uiMu.RUnlock()
	return silentMode
}

// SetNoColor disables colored output
func SetNoColor(noColor bool) {
	uiMu.Lock()
	defer uiMu.Unlock()
	noColorMode = noColor
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// IsNoColor returns whether color is disabled
func IsNoColor() bool {
	uiMu.RLock()
	defer uiMu.RUnlock()
	return noColorMode
}

const bannerArt = `
                   _   _
  _ __ ___   __ _ | |_| |__        _ __ ___   ___ _ __
 | '_ ` + "`" + ` _ \ / _` + "`" + ` || __| '_ \ _____| '_ ` + "`" + ` _ \ / __| '_ \
 | | | | | | (_| || |_| | | |_____| | | | | | (__| |_) |
 |_| |_| |_|\__,_| \__|_| |_|     |_| |_| |_|\___| .__/
                                                 |_|
`

// PrintBanner writes the application banner with version info to stderr.
// The MCP protocol owns stdout on the stdio transport, so all decoration
// goes to stderr.
func PrintBanner() {
	if IsSilent() {
		return
	}
	for _, line := range strings.Split(bannerArt, "\n") {
		if line != "" {
			fmt.Fprintln(os.Stderr, BannerStyle.Render(line))
		}
	}
	fmt.Fprintf(os.Stderr, "                       v%s\n\n", VersionStyle.Render(Version))
}

// printOption prints a configuration option in ffuf/nuclei style
// Format:  :: Option              : Value
func printOption(name, value string) {
	fmt.Fprintf(os.Stderr, " :: %-20s : %s\n", ConfigLabelStyle.Render(name), ConfigValueStyle.Render(value))
}

// PrintConfigBanner shows the effective settings before the server starts.
func PrintConfigBanner(options map[string]string) {
	if IsSilent() {
		return
	}
	order := []string{
		"Transport", "Listen", "Rate Limit", "Metrics",
		"Max Expression", "Max Stats Input",
	}
	printed := make(map[string]bool)
	for _, name := range order {
		if value, ok := options[name]; ok && value != "" {
			printOption(name, value)
			printed[name] = true
		}
	}
	for name, value := range options {
		if !printed[name] && value != "" {
			printOption(name, value)
		}
	}
	fmt.Fprintln(os.Stderr)
}
