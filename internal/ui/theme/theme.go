package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette tuned for dark and light terminals.
var (
	Primary   = lipgloss.Color("#38BDF8") // Sky Blue
	Secondary = lipgloss.Color("#A78BFA") // Violet
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#E2E8F0") // Light Slate
	TextDim   = lipgloss.Color("#64748B") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Emph = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary)

	Done = lipgloss.NewStyle().
		Foreground(Success)

	Carry = lipgloss.NewStyle().
		Foreground(Warning)
)

// DifficultyStyle returns the style used to render a difficulty tier.
func DifficultyStyle(tier string) lipgloss.Style {
	switch tier {
	case "Easy":
		return lipgloss.NewStyle().Foreground(Success)
	case "Medium":
		return lipgloss.NewStyle().Foreground(Warning)
	default:
		return lipgloss.NewStyle().Foreground(Error)
	}
}
