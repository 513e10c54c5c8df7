// Package theme resolves and persists the dark/light display preference.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/conn-castle/pricebook/internal/messages"
)

// Theme is a display color scheme.
type Theme string

// Supported themes.
const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// SystemPrefersDark reports the terminal's background; it is a seam for tests.
var SystemPrefersDark = lipgloss.HasDarkBackground

// Parse returns the Theme named by s.
func Parse(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Dark:
		return Dark, nil
	case Light:
		return Light, nil
	default:
		return "", fmt.Errorf(messages.ThemeInvalidFmt, s)
	}
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool {
	return t == Dark
}

// Resolve returns the stored preference when present, otherwise the system
// preference.
func Resolve(stored Theme, ok bool, systemDark bool) Theme {
	if ok {
		return stored
	}
	if systemDark {
		return Dark
	}
	return Light
}

// Effective loads the stored preference from file and resolves it against the
// system preference.
func Effective(file *PreferenceFile) (Theme, error) {
	stored, ok, err := file.Load()
	if err != nil {
		return Resolve("", false, SystemPrefersDark()), err
	}
	if !ok {
		return Resolve("", false, SystemPrefersDark()), nil
	}
	return stored, nil
}
