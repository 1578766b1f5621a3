package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the kiosk color palette.
type Theme struct {
	Name string

	Background    string
	Surface       string
	SelectionBg   string
	SelectionText string
	Border        string

	Text    string
	Muted   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// Styles holds the lipgloss styles derived from a theme.
type Styles struct {
	Header   lipgloss.Style
	Footer   lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Danger   lipgloss.Style
	Selected lipgloss.Style
	Tag      lipgloss.Style
	TagOn    lipgloss.Style
	Panel    lipgloss.Style
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
		Text:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),
		Tag: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
		TagOn: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true).
			Padding(0, 1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),
	}
}

var themes = map[string]Theme{
	"Neon": {
		Name:          "Neon",
		Background:    "#0f0a1a",
		Surface:       "#1e1b2e",
		SelectionBg:   "#22d3ee",
		SelectionText: "#0f0a1a",
		Border:        "#3b3554",
		Text:          "#e2e8f0",
		Muted:         "#64748b",
		Accent:        "#22d3ee",
		Success:       "#4ade80",
		Warning:       "#facc15",
		Danger:        "#f87171",
	},
	"Slate": {
		Name:          "Slate",
		Background:    "#1a1b26",
		Surface:       "#24283b",
		SelectionBg:   "#7aa2f7",
		SelectionText: "#1a1b26",
		Border:        "#414868",
		Text:          "#c0caf5",
		Muted:         "#565f89",
		Accent:        "#7aa2f7",
		Success:       "#9ece6a",
		Warning:       "#e0af68",
		Danger:        "#f7768e",
	},
	"Mono": {
		Name:          "Mono",
		Background:    "#101010",
		Surface:       "#1c1c1c",
		SelectionBg:   "#d0d0d0",
		SelectionText: "#101010",
		Border:        "#444444",
		Text:          "#d0d0d0",
		Muted:         "#777777",
		Accent:        "#ffffff",
		Success:       "#b5bd68",
		Warning:       "#f0c674",
		Danger:        "#cc6666",
	},
}

var themeOrder = []string{"Neon", "Slate", "Mono"}

// GetTheme returns the theme by name, defaulting to the first known theme.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[themeOrder[0]]
}

// NextTheme returns the name following current in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}
