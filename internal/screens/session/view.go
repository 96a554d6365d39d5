package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/typerush/typerush/internal/ui/components"
	"github.com/typerush/typerush/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.quitConfirm {
		return renderQuitConfirm(width, height)
	}

	switch s.phase {
	case phaseSetup:
		return s.renderSetup(width, height)
	case phaseSaving:
		return renderCentered(width, height,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Saving result..."))
	default:
		return s.renderTyping(width, height)
	}
}

func (s *SessionScreen) renderSetup(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Quick Play")

	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Pick a duration, then press Enter")

	content := title + "\n\n" + s.picker.View() + "\n\n" + hint
	cw := components.ContentWidth(width)
	return renderCentered(width, height, components.Card(content, cw))
}

func (s *SessionScreen) renderTyping(width, height int) string {
	var b strings.Builder

	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	tw := width - 8
	if tw < 20 {
		tw = 20
	}
	text := s.renderText(tw)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(tw).Render(text)))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", s.engine.Progress(), true, tw)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))

	return b.String()
}

// renderInfoLine shows the live clock and metrics.
func (s *SessionScreen) renderInfoLine(width int) string {
	clock := s.engine.Clock()
	m := s.engine.Metrics()

	display := clock.Display()
	timer := fmt.Sprintf("%d:%02d", display/60, display%60)

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", s.modeLabel()))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%.0f wpm  %.0f%%  %s %s",
			m.WPM,
			m.Accuracy,
			lipgloss.NewStyle().Foreground(theme.Accent).Render("T"),
			timer,
		))

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

func (s *SessionScreen) modeLabel() string {
	if s.params.Challenge != nil {
		return s.params.Challenge.Title
	}
	switch s.params.Mode {
	case "custom":
		return "Custom Text"
	case "generated":
		return "Generated Practice"
	default:
		return "Quick Play"
	}
}

// renderText renders the current window with per-character coloring
// from the active theme.
func (s *SessionScreen) renderText(width int) string {
	styles := s.deps.Theme.Styles()
	window := []rune(s.engine.Window())
	input := []rune(s.engine.Input())

	var b strings.Builder
	for i, ch := range window {
		c := string(ch)
		switch {
		case i < len(input) && input[i] == ch:
			b.WriteString(styles.Correct.Render(c))
		case i < len(input):
			b.WriteString(styles.Incorrect.Render(c))
		case i == len(input):
			b.WriteString(styles.Cursor.Render(c))
		default:
			b.WriteString(styles.Untyped.Render(c))
		}
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func renderQuitConfirm(width, height int) string {
	content := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Abandon this session?") +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Progress will not be saved.  [y/n]")
	cw := components.ContentWidth(width)
	return renderCentered(width, height, components.Card(content, cw))
}

func renderCentered(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
