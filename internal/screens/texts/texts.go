package texts

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/typerush/typerush/internal/router"
	"github.com/typerush/typerush/internal/screen"
	sessionscreen "github.com/typerush/typerush/internal/screens/session"
	"github.com/typerush/typerush/internal/store"
	"github.com/typerush/typerush/internal/ui/layout"
	"github.com/typerush/typerush/internal/ui/theme"
)

// textsMsg delivers the stored texts.
type textsMsg struct {
	Texts []store.StoredText
	Err   error
}

// TextsScreen lists imported custom texts and starts sessions on them.
type TextsScreen struct {
	store       *store.Store
	sessionDeps sessionscreen.Deps
	premium     bool

	texts    []store.StoredText
	loaded   bool
	selected int
	errMsg   string
}

var _ screen.Screen = (*TextsScreen)(nil)
var _ screen.KeyHintProvider = (*TextsScreen)(nil)

// New creates a new TextsScreen.
func New(st *store.Store, sessionDeps sessionscreen.Deps, premium bool) *TextsScreen {
	return &TextsScreen{
		store:       st,
		sessionDeps: sessionDeps,
		premium:     premium,
	}
}

func (t *TextsScreen) Init() tea.Cmd {
	return t.loadCmd()
}

func (t *TextsScreen) loadCmd() tea.Cmd {
	return func() tea.Msg {
		texts, err := t.store.CustomTexts(context.Background())
		return textsMsg{Texts: texts, Err: err}
	}
}

func (t *TextsScreen) Title() string {
	return "Custom Texts"
}

func (t *TextsScreen) KeyHints() []layout.KeyHint {
	if !t.premium || len(t.texts) == 0 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Practice"},
		{Key: "D", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (t *TextsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case textsMsg:
		t.loaded = true
		if msg.Err != nil {
			t.errMsg = msg.Err.Error()
			return t, nil
		}
		t.texts = msg.Texts
		if t.selected >= len(t.texts) {
			t.selected = len(t.texts) - 1
		}
		if t.selected < 0 {
			t.selected = 0
		}
		return t, nil

	case tea.KeyMsg:
		if !t.premium {
			return t, nil
		}
		switch msg.String() {
		case "up", "k":
			if t.selected > 0 {
				t.selected--
			}
		case "down", "j":
			if t.selected < len(t.texts)-1 {
				t.selected++
			}
		case "enter":
			return t, t.startSelected()
		case "d", "D":
			return t, t.deleteSelected()
		}
	}
	return t, nil
}

func (t *TextsScreen) startSelected() tea.Cmd {
	if t.selected < 0 || t.selected >= len(t.texts) {
		return nil
	}
	text := t.texts[t.selected]
	next := sessionscreen.New(t.sessionDeps, sessionscreen.Params{
		Text: text.Content,
		Mode: store.ModeCustom,
	})
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (t *TextsScreen) deleteSelected() tea.Cmd {
	if t.selected < 0 || t.selected >= len(t.texts) {
		return nil
	}
	id := t.texts[t.selected].ID
	return func() tea.Msg {
		if err := t.store.DeleteCustomText(context.Background(), id); err != nil {
			return textsMsg{Err: err}
		}
		texts, err := t.store.CustomTexts(context.Background())
		return textsMsg{Texts: texts, Err: err}
	}
}

func (t *TextsScreen) View(width, height int) string {
	if !t.premium {
		content := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).Render("★ Premium feature") +
			"\n\n" +
			lipgloss.NewStyle().Foreground(theme.Text).Render("Custom practice texts are part of TypeRush Premium.") +
			"\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Run \"typerush upgrade\" to unlock them.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}

	if t.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(t.errMsg))
	}
	if !t.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Loading texts..."))
	}
	if len(t.texts) == 0 {
		content := lipgloss.NewStyle().Foreground(theme.Text).Render("No custom texts yet.") +
			"\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Import some with \"typerush texts import <file.json>\"")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}

	var b strings.Builder
	for i, text := range t.texts {
		b.WriteString(t.renderRow(text, i == t.selected))
		b.WriteString("\n")
	}
	return b.String()
}

func (t *TextsScreen) renderRow(text store.StoredText, selected bool) string {
	title := text.Title
	if selected {
		title = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ " + title)
	} else {
		title = "  " + lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	}

	meta := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("%d chars · added %s", len(text.Content), text.CreatedAt.Local().Format("Jan 2, 2006")))

	preview := text.Content
	if len(preview) > 60 {
		preview = preview[:60] + "…"
	}
	previewLine := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(preview)

	return fmt.Sprintf("  %s  %s\n      %s\n", title, meta, previewLine)
}
