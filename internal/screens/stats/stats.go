package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/typerush/typerush/internal/screen"
	"github.com/typerush/typerush/internal/stats"
	"github.com/typerush/typerush/internal/ui/layout"
	"github.com/typerush/typerush/internal/ui/theme"
)

// dashboardMsg delivers the loaded dashboard.
type dashboardMsg struct {
	Dashboard *stats.Dashboard
	Err       error
}

// chartRows is the height of the daily WPM chart.
const chartRows = 6

// StatsScreen renders the progress dashboard.
type StatsScreen struct {
	svc       *stats.Service
	dashboard *stats.Dashboard
	errMsg    string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(svc *stats.Service) *StatsScreen {
	return &StatsScreen{svc: svc}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		d, err := s.svc.Dashboard(context.Background(), time.Now())
		return dashboardMsg{Dashboard: d, Err: err}
	}
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(dashboardMsg); ok {
		if m.Err != nil {
			s.errMsg = m.Err.Error()
		} else {
			s.dashboard = m.Dashboard
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}
	if s.dashboard == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Loading stats..."))
	}

	var b strings.Builder
	center := func(str string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, str))
		b.WriteString("\n")
	}

	sum := s.dashboard.Summary
	if sum.Sessions == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("No sessions yet. Play a round first!"))
	}

	center(s.renderSummaryLine())
	b.WriteString("\n")

	center(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Last 30 days (avg WPM)"))
	for _, row := range s.renderChart() {
		center(row)
	}
	b.WriteString("\n")

	if len(s.dashboard.WeakKeys) > 0 {
		center(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Weakest keys"))
		for _, line := range s.renderWeakKeys(5) {
			center(line)
		}
	}

	return b.String()
}

func (s *StatsScreen) renderSummaryLine() string {
	sum := s.dashboard.Summary
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	val := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	hours := float64(sum.TotalTimeSec) / 3600

	parts := []string{
		dim.Render("Sessions ") + val.Render(fmt.Sprintf("%d", sum.Sessions)),
		dim.Render("Avg ") + val.Render(fmt.Sprintf("%d wpm", sum.AvgWPM)),
		dim.Render("Best ") + val.Render(fmt.Sprintf("%d wpm", sum.BestWPM)),
		dim.Render("Accuracy ") + val.Render(fmt.Sprintf("%.1f%%", sum.AvgAccuracy)),
		dim.Render("Time ") + val.Render(fmt.Sprintf("%.1fh", hours)),
	}
	return strings.Join(parts, "    ")
}

// renderChart builds a column chart of daily average WPM, one column
// per day, scaled to the best day in the window.
func (s *StatsScreen) renderChart() []string {
	daily := s.dashboard.Daily

	maxWPM := 1
	for _, d := range daily {
		if d.AvgWPM > maxWPM {
			maxWPM = d.AvgWPM
		}
	}

	filled := lipgloss.NewStyle().Foreground(theme.Secondary)
	empty := lipgloss.NewStyle().Foreground(theme.Border)

	rows := make([]string, 0, chartRows+1)
	for row := chartRows; row >= 1; row-- {
		var line strings.Builder
		for _, d := range daily {
			h := d.AvgWPM * chartRows / maxWPM
			if d.AvgWPM > 0 && h == 0 {
				h = 1
			}
			if h >= row {
				line.WriteString(filled.Render("█ "))
			} else {
				line.WriteString(empty.Render("· "))
			}
		}
		rows = append(rows, line.String())
	}

	axis := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("%s  →  %s",
			daily[0].Date.Format("Jan 2"),
			daily[len(daily)-1].Date.Format("Jan 2")))
	rows = append(rows, axis)
	return rows
}

func (s *StatsScreen) renderWeakKeys(n int) []string {
	keys := s.dashboard.WeakKeys
	if len(keys) > n {
		keys = keys[:n]
	}

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		label := k.Char
		if label == " " {
			label = "space"
		}
		line := fmt.Sprintf("%-6s %4.0f%% missed  (%d/%d)",
			label, k.MissRate()*100, k.Incorrect, k.Correct+k.Incorrect)
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Render(line))
	}
	return lines
}
