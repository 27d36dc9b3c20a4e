package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel frames lines with the current theme's border.
func Panel(lines ...string) string {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// Rule draws a horizontal separator of width cells.
func Rule(width int) string {
	if width < 1 {
		width = 1
	}
	return Current().Muted.Render(strings.Repeat(Current().Border.Top, width))
}

// Button renders a labelled control with its key hint, e.g. "f2 TodoList".
func Button(key, label string) string {
	t := Current()
	return t.ButtonKey.Render(key) + " " + t.Button.Render(label)
}
