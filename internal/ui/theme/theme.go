package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette taken from the landing page gradient.
var (
	Primary   = lipgloss.Color("#E60000") // China red
	Secondary = lipgloss.Color("#D90429") // Gradient red
	Accent    = lipgloss.Color("#FFD700") // Confetti gold
	Indigo    = lipgloss.Color("#3B3A6E") // Gradient start
	Plum      = lipgloss.Color("#443C68")
	Crimson   = lipgloss.Color("#B21E35")
	USBlue    = lipgloss.Color("#3B82F6")
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#FFFFFF")
	TextDim   = lipgloss.Color("#9CA3AF") // gray-400
	BgDark    = lipgloss.Color("#1B1A33")
	BgCard    = lipgloss.Color("#2A2950")
	Border    = lipgloss.Color("#4B4A7E")
)

// Gradient is the page's hero gradient, left to right.
var Gradient = []string{"#3B3A6E", "#443C68", "#B21E35", "#D90429"}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Brand = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Checked = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Text)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(Primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 2)
)
