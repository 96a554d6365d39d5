package home

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/typerush/typerush/internal/challenges"
	"github.com/typerush/typerush/internal/config"
	"github.com/typerush/typerush/internal/content"
	"github.com/typerush/typerush/internal/router"
	"github.com/typerush/typerush/internal/screen"
	accountscreen "github.com/typerush/typerush/internal/screens/account"
	challengescreen "github.com/typerush/typerush/internal/screens/challenges"
	sessionscreen "github.com/typerush/typerush/internal/screens/session"
	statsscreen "github.com/typerush/typerush/internal/screens/stats"
	textsscreen "github.com/typerush/typerush/internal/screens/texts"
	themescreen "github.com/typerush/typerush/internal/screens/themes"
	"github.com/typerush/typerush/internal/stats"
	"github.com/typerush/typerush/internal/store"
	"github.com/typerush/typerush/internal/themes"
	"github.com/typerush/typerush/internal/ui/components"
)

// Deps are the shared services every screen reachable from home needs.
type Deps struct {
	Store      *store.Store
	Source     *content.Source
	Challenges *challenges.Service
	Stats      *stats.Service
	Library    *themes.Library
	Theme      *themes.Active
	Settings   config.Settings
	Account    *accountscreen.Deps
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps       Deps
	menu       components.Menu
	menuLabels []string
	sessions   int
	bestWPM    int
	streakDays int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. Lifetime stats shown on the menu are
// loaded once here, the same way the screen itself is built once per
// visit.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}

	if deps.Store != nil {
		if results, err := deps.Store.ResultsSince(context.Background(), time.Time{}); err == nil {
			sum := stats.Summarize(results)
			h.sessions = sum.Sessions
			h.bestWPM = sum.BestWPM
			h.streakDays = streak(results, time.Now())
		}
	}

	h.menuLabels = []string{
		"QUICK PLAY",
		"CHALLENGES",
		"CUSTOM TEXTS",
		"STATISTICS",
		"THEMES",
		"ACCOUNT",
		"QUIT",
	}

	items := []components.MenuItem{
		{Label: h.menuLabels[0], Action: func() tea.Cmd {
			return push(sessionscreen.NewSetup(h.sessionDeps(), deps.Settings.Duration))
		}},
		{Label: h.menuLabels[1], Action: func() tea.Cmd {
			return push(challengescreen.New(deps.Challenges, h.sessionDeps(), h.premium()))
		}},
		{Label: h.menuLabels[2], Action: func() tea.Cmd {
			return push(textsscreen.New(deps.Store, h.sessionDeps(), h.premium()))
		}},
		{Label: h.menuLabels[3], Action: func() tea.Cmd {
			return push(statsscreen.New(deps.Stats))
		}},
		{Label: h.menuLabels[4], Action: func() tea.Cmd {
			return push(themescreen.New(deps.Library, deps.Theme, h.premium()))
		}},
		{Label: h.menuLabels[5], Action: func() tea.Cmd {
			return push(accountscreen.New(deps.Account))
		}},
		{Label: h.menuLabels[6], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (h *HomeScreen) premium() bool {
	return h.deps.Account != nil && h.deps.Account.Premium()
}

func (h *HomeScreen) sessionDeps() sessionscreen.Deps {
	return sessionscreen.Deps{
		Store:      h.deps.Store,
		Source:     h.deps.Source,
		Challenges: h.deps.Challenges,
		Theme:      h.deps.Theme,
		Settings:   h.deps.Settings,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, RenderBanner(cw))
	sections = append(sections, renderStatsBar(h.sessions, h.bestWPM, h.streakDays, cw))
	sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))

	content := strings.Join(sections, "\n\n")
	return centerFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// streak counts consecutive days ending today (or yesterday, so an
// unplayed morning does not break it) with at least one session.
func streak(results []store.Result, now time.Time) int {
	days := make(map[string]bool, len(results))
	for _, r := range results {
		days[r.CreatedAt.UTC().Format("2006-01-02")] = true
	}

	day := now.UTC()
	if !days[day.Format("2006-01-02")] {
		day = day.AddDate(0, 0, -1)
	}

	count := 0
	for days[day.Format("2006-01-02")] {
		count++
		day = day.AddDate(0, 0, -1)
	}
	return count
}
