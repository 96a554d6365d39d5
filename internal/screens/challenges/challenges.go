package challenges

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/typerush/typerush/internal/challenges"
	"github.com/typerush/typerush/internal/router"
	"github.com/typerush/typerush/internal/screen"
	sessionscreen "github.com/typerush/typerush/internal/screens/session"
	"github.com/typerush/typerush/internal/store"
	"github.com/typerush/typerush/internal/typing"
	"github.com/typerush/typerush/internal/ui/layout"
	"github.com/typerush/typerush/internal/ui/theme"
)

// itemsMsg delivers the loaded catalog.
type itemsMsg struct {
	Items []challenges.Item
	Err   error
}

// ChallengesScreen lists the challenge catalog with completion state.
type ChallengesScreen struct {
	svc         *challenges.Service
	sessionDeps sessionscreen.Deps
	premium     bool

	items    []challenges.Item
	selected int
	errMsg   string
}

var _ screen.Screen = (*ChallengesScreen)(nil)
var _ screen.KeyHintProvider = (*ChallengesScreen)(nil)

// New creates a new ChallengesScreen.
func New(svc *challenges.Service, sessionDeps sessionscreen.Deps, premium bool) *ChallengesScreen {
	return &ChallengesScreen{
		svc:         svc,
		sessionDeps: sessionDeps,
		premium:     premium,
	}
}

func (c *ChallengesScreen) Init() tea.Cmd {
	return func() tea.Msg {
		items, err := c.svc.List(context.Background())
		return itemsMsg{Items: items, Err: err}
	}
}

func (c *ChallengesScreen) Title() string {
	return "Challenges"
}

func (c *ChallengesScreen) KeyHints() []layout.KeyHint {
	if !c.premium {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start challenge"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *ChallengesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsMsg:
		if msg.Err != nil {
			c.errMsg = msg.Err.Error()
			return c, nil
		}
		c.items = msg.Items
		return c, nil

	case tea.KeyMsg:
		if !c.premium {
			return c, nil
		}
		switch msg.String() {
		case "up", "k":
			if c.selected > 0 {
				c.selected--
			}
		case "down", "j":
			if c.selected < len(c.items)-1 {
				c.selected++
			}
		case "enter":
			return c, c.startSelected()
		}
	}
	return c, nil
}

func (c *ChallengesScreen) startSelected() tea.Cmd {
	if c.selected < 0 || c.selected >= len(c.items) {
		return nil
	}
	item := c.items[c.selected]
	ch := item.Challenge

	params := sessionscreen.Params{
		Text:      c.svc.SessionText(&ch),
		Mode:      store.ModeChallenge,
		Challenge: &ch,
	}
	next := sessionscreen.New(c.sessionDeps, params)
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (c *ChallengesScreen) View(width, height int) string {
	if !c.premium {
		return renderUpgradePrompt(width, height)
	}
	if c.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(c.errMsg))
	}
	if len(c.items) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Loading challenges..."))
	}

	var b strings.Builder
	for i, item := range c.items {
		b.WriteString(c.renderItem(item, i == c.selected, width))
		b.WriteString("\n")
	}
	return b.String()
}

func (c *ChallengesScreen) renderItem(item challenges.Item, selected bool, width int) string {
	mark := lipgloss.NewStyle().Foreground(theme.TextDim).Render("○")
	if item.Completed {
		mark = lipgloss.NewStyle().Foreground(theme.Success).Render("●")
	}

	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(item.Title)
	if selected {
		title = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ " + item.Title)
	} else {
		title = "  " + title
	}

	target := lipgloss.NewStyle().Foreground(theme.Accent).Render(targetLabel(item.Challenge))
	desc := lipgloss.NewStyle().Foreground(theme.TextDim).Render(item.Description)
	reward := lipgloss.NewStyle().Foreground(theme.Secondary).Render("Reward: " + item.Reward)

	line1 := fmt.Sprintf("  %s %s  %s", mark, title, target)
	line2 := fmt.Sprintf("       %s  %s", desc, reward)
	return line1 + "\n" + line2 + "\n"
}

func targetLabel(c typing.Challenge) string {
	switch c.Type {
	case typing.ChallengeSpeed:
		return fmt.Sprintf("%.0f WPM", c.Target)
	case typing.ChallengeEndurance:
		return fmt.Sprintf("%.0f min", c.Target)
	default:
		return fmt.Sprintf("%.0f%% accuracy", c.Target)
	}
}

func renderUpgradePrompt(width, height int) string {
	content := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).Render("★ Premium feature") +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Render("Challenges are part of TypeRush Premium.") +
		"\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Run \"typerush upgrade\" to unlock them.")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
