package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/typerush/typerush/internal/router"
	"github.com/typerush/typerush/internal/screen"
	"github.com/typerush/typerush/internal/screens/home"
	"github.com/typerush/typerush/internal/ui/theme"
)

const (
	tickInterval = 80 * time.Millisecond
	tagline      = "race your fingers. beat your best."
)

type tickMsg time.Time

// WelcomeScreen shows a splash that types out the tagline before
// transitioning to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	typed        int
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen
// produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{homeFactory: homeFactory}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.typed < len(tagline) {
			w.typed++
		}
		w.tickCount++
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		// Any key skips straight to the home screen.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, home.RenderBanner(width))
	sections = append(sections, "")

	// The tagline "types itself" with a block cursor.
	typed := tagline[:w.typed]
	line := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(typed)
	if w.typed < len(tagline) || w.tickCount%8 < 4 {
		line += lipgloss.NewStyle().
			Foreground(theme.BgDark).
			Background(theme.Secondary).
			Render(" ")
	}
	sections = append(sections, line)

	if w.typed >= len(tagline) {
		sections = append(sections, "")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to start")
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
