package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette. Muted ink-and-vermilion tones rather than bright arcade
// colors, so the kanji glyphs stay the visual focus.
var (
	Primary   = lipgloss.Color("#E05252") // Vermilion
	Secondary = lipgloss.Color("#5EA3A3") // Pine Teal
	Accent    = lipgloss.Color("#D9A441") // Gold
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F5F0E8") // Washi Paper
	TextDim   = lipgloss.Color("#8A8578") // Faded Ink
	BgDark    = lipgloss.Color("#1A1814") // Sumi Ink
	BgCard    = lipgloss.Color("#2A2620") // Charcoal
	Border    = lipgloss.Color("#45403A") // Soft Edge
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

	// Glyph renders a large standalone kanji.
	Glyph = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent).
		Align(lipgloss.Center)
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

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
