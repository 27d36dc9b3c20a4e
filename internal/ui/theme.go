package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the styles and symbols every view renders with.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error lipgloss.Style
	Button, ButtonKey, Selected          lipgloss.Style
	Border                               lipgloss.Border
	BorderColor                          lipgloss.TerminalColor

	Bullet, Cursor string
}

var current = build("classic")

// SetTheme switches the active theme. Unknown names fall back to classic.
func SetTheme(name string) { current = build(name) }

// Current returns the active theme.
func Current() Theme { return current }

func build(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:        "neon",
			Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:       lipgloss.NewStyle().Faint(true),
			Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Button:      lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("13")).Padding(0, 1),
			ButtonKey:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("13"),
			Bullet:      "◆",
			Cursor:      "▶ ",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:        "mono",
			Title:       plain.Bold(true),
			Muted:       plain,
			Accent:      plain,
			Success:     plain,
			Error:       plain.Bold(true),
			Button:      plain.Padding(0, 1).Border(lipgloss.NormalBorder(), false, true),
			ButtonKey:   plain,
			Selected:    plain.Reverse(true),
			Border:      lipgloss.NormalBorder(),
			BorderColor: lipgloss.NoColor{},
			Bullet:      "-",
			Cursor:      "> ",
		}
	default:
		return Theme{
			Name:        "classic",
			Title:       lipgloss.NewStyle().Bold(true),
			Muted:       lipgloss.NewStyle().Faint(true),
			Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Button:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4")).Padding(0, 1),
			ButtonKey:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("8"),
			Bullet:      "•",
			Cursor:      "> ",
		}
	}
}
