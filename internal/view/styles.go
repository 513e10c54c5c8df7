package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/conn-castle/pricebook/internal/theme"
)

type palette struct {
	text   lipgloss.Color
	muted  lipgloss.Color
	accent lipgloss.Color
	price  lipgloss.Color
	danger lipgloss.Color
	border lipgloss.Color
}

var (
	lightPalette = palette{
		text:   lipgloss.Color("#1F2937"),
		muted:  lipgloss.Color("#9CA3AF"),
		accent: lipgloss.Color("#3B82F6"),
		price:  lipgloss.Color("#16A34A"),
		danger: lipgloss.Color("#EF4444"),
		border: lipgloss.Color("#E5E7EB"),
	}
	darkPalette = palette{
		text:   lipgloss.Color("#F9FAFB"),
		muted:  lipgloss.Color("#6B7280"),
		accent: lipgloss.Color("#60A5FA"),
		price:  lipgloss.Color("#4ADE80"),
		danger: lipgloss.Color("#F87171"),
		border: lipgloss.Color("#374151"),
	}
)

// Styles are the lipgloss styles for one theme.
type Styles struct {
	Title       lipgloss.Style
	Badge       lipgloss.Style
	ProductName lipgloss.Style
	Weight      lipgloss.Style
	Price       lipgloss.Style
	Muted       lipgloss.Style
	OutOfStock  lipgloss.Style
	Cursor      lipgloss.Style
	EditHint    lipgloss.Style
	Error       lipgloss.Style
	Modal       lipgloss.Style
	Alert       lipgloss.Style
}

// NewStyles returns the styles for t.
func NewStyles(t theme.Theme) Styles {
	p := lightPalette
	if t.IsDark() {
		p = darkPalette
	}
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(p.text),
		Badge:       lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		ProductName: lipgloss.NewStyle().Bold(true).Foreground(p.text).Underline(true),
		Weight:      lipgloss.NewStyle().Bold(true).Foreground(p.text),
		Price:       lipgloss.NewStyle().Bold(true).Foreground(p.price),
		Muted:       lipgloss.NewStyle().Foreground(p.muted),
		OutOfStock:  lipgloss.NewStyle().Bold(true).Foreground(p.danger),
		Cursor:      lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		EditHint:    lipgloss.NewStyle().Foreground(p.accent),
		Error:       lipgloss.NewStyle().Foreground(p.danger),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		Alert: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.accent).
			Padding(0, 1),
	}
}
