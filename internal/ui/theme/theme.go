package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: retro console, parchment on deep blue
var (
	Primary   = lipgloss.Color("#FFD700") // Gold
	Secondary = lipgloss.Color("#4FC3F7") // Sky Blue
	Accent    = lipgloss.Color("#CE93D8") // Lilac
	Success   = lipgloss.Color("#66BB6A") // Green
	Error     = lipgloss.Color("#EF5350") // Red
	HP        = lipgloss.Color("#E57373") // HP bar
	XP        = lipgloss.Color("#4DB6AC") // XP bar
	Text      = lipgloss.Color("#ECEFF1") // Near White
	TextDim   = lipgloss.Color("#90A4AE") // Blue Grey
	BgDark    = lipgloss.Color("#101425") // Midnight
	BgCard    = lipgloss.Color("#1C2240") // Night Slate
	Border    = lipgloss.Color("#39406B") // Indigo
)

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
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Dialog = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(Primary).
		Padding(1, 3)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Locked = lipgloss.NewStyle().
		Foreground(TextDim)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	HPFilled = lipgloss.NewStyle().
			Background(HP)

	XPFilled = lipgloss.NewStyle().
			Background(XP)

	BarEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
