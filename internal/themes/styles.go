package themes

import "charm.land/lipgloss/v2"

// Styles are the lipgloss styles the session screen renders with,
// derived from one palette.
type Styles struct {
	Base        lipgloss.Style
	Untyped     lipgloss.Style
	Cursor      lipgloss.Style
	Correct     lipgloss.Style
	Incorrect   lipgloss.Style
	CurrentWord lipgloss.Style
}

// StylesFor derives render styles from a palette.
func StylesFor(p Palette) Styles {
	bg := lipgloss.Color(p.Background)
	return Styles{
		Base: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Text)).
			Background(bg),
		Untyped: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Text)).
			Background(bg).
			Faint(true),
		Cursor: lipgloss.NewStyle().
			Foreground(bg).
			Background(lipgloss.Color(p.Cursor)),
		Correct: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Correct)).
			Background(bg),
		Incorrect: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Incorrect)).
			Background(bg).
			Underline(true),
		CurrentWord: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.CurrentWord)).
			Background(bg).
			Bold(true),
	}
}
