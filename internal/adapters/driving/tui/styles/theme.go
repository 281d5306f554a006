// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is used for headings and topic labels.
	Secondary lipgloss.Color

	// Background is the background colour.
	Background lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Positive marks favourable sentiment.
	Positive lipgloss.Color

	// Negative marks unfavourable sentiment and errors.
	Negative lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#D97706"), // Amber
		Secondary:  lipgloss.Color("#0EA5E9"), // Sky
		Background: lipgloss.Color("#1C1917"), // Stone
		Foreground: lipgloss.Color("#E7E5E4"),
		Muted:      lipgloss.Color("#78716C"),
		Positive:   lipgloss.Color("#84CC16"), // Lime
		Negative:   lipgloss.Color("#F43F5E"), // Rose
		Warning:    lipgloss.Color("#FACC15"),
		Border:     lipgloss.Color("#44403C"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style

	// Positive and Negative colour sentiment values.
	Positive lipgloss.Style
	Negative lipgloss.Style

	// Topic renders topic summary lines.
	Topic lipgloss.Style

	InputField  lipgloss.Style
	ActiveInput lipgloss.Style
	StatusBar   lipgloss.Style
	Help        lipgloss.Style
	Border      lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Background).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Negative),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		Positive: lipgloss.NewStyle().
			Foreground(theme.Positive),

		Negative: lipgloss.NewStyle().
			Foreground(theme.Negative),

		Topic: lipgloss.NewStyle().
			Italic(true).
			Foreground(theme.Secondary),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		ActiveInput: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#0C0A09")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Sentiment returns the style for a compound sentiment value.
func (s *Styles) Sentiment(v float64) lipgloss.Style {
	switch {
	case v >= 0.05:
		return s.Positive
	case v <= -0.05:
		return s.Negative
	default:
		return s.Muted
	}
}
