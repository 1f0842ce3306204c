package cmd

import "github.com/charmbracelet/lipgloss"

// Theme holds all lipgloss styles for consistent UI across commands.
type Theme struct {
	// Colors
	Primary lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Subtle  lipgloss.Color
	Accent  lipgloss.Color
	White   lipgloss.Color
	Gold    lipgloss.Color

	// Common styles
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Info        lipgloss.Style
	ErrorText   lipgloss.Style
	HelpText    lipgloss.Style
	Description lipgloss.Style

	// Resolution output styles
	Path     lipgloss.Style
	Label    lipgloss.Style
	Template lipgloss.Style
	Command  lipgloss.Style
}

// DefaultTheme returns the default theme.
func DefaultTheme() *Theme {
	t := &Theme{
		Primary: lipgloss.Color("#7D56F4"),
		Success: lipgloss.Color("#73F59F"),
		Error:   lipgloss.Color("#FF6B6B"),
		Subtle:  lipgloss.Color("#626262"),
		Accent:  lipgloss.Color("#00D4FF"),
		White:   lipgloss.Color("#FAFAFA"),
		Gold:    lipgloss.Color("#FFD700"),
	}

	t.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.White).
		Background(t.Primary).
		Padding(0, 1)

	t.Dim = lipgloss.NewStyle().
		Foreground(t.Subtle)

	t.Info = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.ErrorText = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Error)

	t.HelpText = lipgloss.NewStyle().
		Italic(true).
		Foreground(t.Subtle)

	t.Description = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA"))

	t.Path = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.White)

	t.Label = lipgloss.NewStyle().
		Foreground(t.Subtle).
		Width(10)

	t.Template = lipgloss.NewStyle().
		Foreground(t.Gold)

	t.Command = lipgloss.NewStyle().
		Foreground(t.Success)

	return t
}

// theme is the default theme instance used by all commands.
var theme = DefaultTheme()
