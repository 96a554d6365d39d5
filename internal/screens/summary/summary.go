package summary

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/typerush/typerush/internal/router"
	"github.com/typerush/typerush/internal/screen"
	"github.com/typerush/typerush/internal/store"
	"github.com/typerush/typerush/internal/typing"
	"github.com/typerush/typerush/internal/ui/layout"
	"github.com/typerush/typerush/internal/ui/theme"
)

// Data is everything the summary screen renders.
type Data struct {
	Result    store.Result
	Challenge *typing.Challenge
	Passed    *bool
	CharStats []typing.CharStat
	SaveErr   error
}

// SummaryScreen displays a finished session.
type SummaryScreen struct {
	data  Data
	retry func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. retry builds a fresh session over the
// same content when the user presses R; nil disables the binding.
func New(data Data, retry func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{data: data, retry: retry}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
	if s.retry != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Try again"})
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "enter", "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "r", "R":
		if s.retry != nil {
			next := s.retry()
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	center := func(str string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, str))
		b.WriteString("\n")
	}

	heading := "Session complete!"
	if !s.data.Result.Completed {
		heading = "Time's up!"
	}
	center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(heading))
	b.WriteString("\n")

	r := s.data.Result
	center(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(
		fmt.Sprintf("%d WPM", r.WPM)))
	center(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Accuracy %.1f%%    Duration %d:%02d",
			r.Accuracy, r.DurationSec/60, r.DurationSec%60)))
	b.WriteString("\n")

	if s.data.Challenge != nil {
		center(s.renderVerdict())
		b.WriteString("\n")
	}

	if weak := s.weakest(5); len(weak) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 40)))
		center(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Trouble keys"))
		center(divider)
		for _, cs := range weak {
			total := cs.Correct + cs.Incorrect
			center(lipgloss.NewStyle().Foreground(theme.Text).Render(
				fmt.Sprintf("%-4s missed %d of %d", displayChar(cs.Char), cs.Incorrect, total)))
		}
	}

	if s.data.SaveErr != nil {
		b.WriteString("\n")
		center(lipgloss.NewStyle().Foreground(theme.Error).Render(
			"Could not save result: " + s.data.SaveErr.Error()))
	}

	return b.String()
}

func (s *SummaryScreen) renderVerdict() string {
	c := s.data.Challenge
	passed := s.data.Passed != nil && *s.data.Passed

	if passed {
		msg := fmt.Sprintf("Challenge passed! Reward: %s", c.Reward)
		return lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(msg)
	}
	return lipgloss.NewStyle().Foreground(theme.Error).Render(
		fmt.Sprintf("Challenge not passed (%s)", c.Description))
}

// weakest returns up to n characters ranked by misses.
func (s *SummaryScreen) weakest(n int) []typing.CharStat {
	missed := make([]typing.CharStat, 0, len(s.data.CharStats))
	for _, cs := range s.data.CharStats {
		if cs.Incorrect > 0 {
			missed = append(missed, cs)
		}
	}
	sort.Slice(missed, func(i, j int) bool {
		if missed[i].Incorrect != missed[j].Incorrect {
			return missed[i].Incorrect > missed[j].Incorrect
		}
		return missed[i].Char < missed[j].Char
	})
	if len(missed) > n {
		missed = missed[:n]
	}
	return missed
}

func displayChar(c string) string {
	if c == " " {
		return "␣"
	}
	return c
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
