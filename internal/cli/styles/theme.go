// Package styles provides reusable lipgloss-based CLI output styling.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme holds lipgloss colors and styles for CLI output.
type Theme struct {
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Error  lipgloss.Color
	Green  lipgloss.Color

	Title        lipgloss.Style
	Subtle       lipgloss.Style
	Value        lipgloss.Style
	Badge        lipgloss.Style
	ErrorStyle   lipgloss.Style
	SuccessStyle lipgloss.Style
}

// NewTheme builds the default dark theme.
func NewTheme() *Theme {
	t := &Theme{
		Text:   lipgloss.Color("#cdd6f4"),
		Muted:  lipgloss.Color("#6c7086"),
		Accent: lipgloss.Color("#89b4fa"),
		Error:  lipgloss.Color("#f38ba8"),
		Green:  lipgloss.Color("#a6e3a1"),
	}

	t.Title = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	t.Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	t.Value = lipgloss.NewStyle().Foreground(t.Text)
	t.Badge = lipgloss.NewStyle().
		Foreground(t.Accent).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Muted)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	t.SuccessStyle = lipgloss.NewStyle().Foreground(t.Green)

	return t
}
