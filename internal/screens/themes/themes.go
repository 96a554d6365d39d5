package themes

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/typerush/typerush/internal/screen"
	"github.com/typerush/typerush/internal/themes"
	"github.com/typerush/typerush/internal/ui/layout"
	"github.com/typerush/typerush/internal/ui/theme"
)

// ThemesScreen lets the user preview and activate typing themes.
type ThemesScreen struct {
	lib     *themes.Library
	active  *themes.Active
	premium bool

	names    []string
	selected int
	errMsg   string
}

var _ screen.Screen = (*ThemesScreen)(nil)
var _ screen.KeyHintProvider = (*ThemesScreen)(nil)

// New creates a new ThemesScreen.
func New(lib *themes.Library, active *themes.Active, premium bool) *ThemesScreen {
	t := &ThemesScreen{
		lib:     lib,
		active:  active,
		premium: premium,
		names:   lib.Names(),
	}
	for i, name := range t.names {
		if name == active.Name() {
			t.selected = i
			break
		}
	}
	return t
}

func (t *ThemesScreen) Init() tea.Cmd {
	return nil
}

func (t *ThemesScreen) Title() string {
	return "Themes"
}

func (t *ThemesScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Preview"},
		{Key: "Enter", Description: "Activate"},
	}
	if t.selectedIsCustom() {
		hints = append(hints, layout.KeyHint{Key: "D", Description: "Delete"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (t *ThemesScreen) selectedIsCustom() bool {
	if t.selected < 0 || t.selected >= len(t.names) {
		return false
	}
	_, builtin := themes.Builtin(t.names[t.selected])
	return !builtin
}

func (t *ThemesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	t.errMsg = ""
	switch kmsg.String() {
	case "up", "k":
		if t.selected > 0 {
			t.selected--
		}
	case "down", "j":
		if t.selected < len(t.names)-1 {
			t.selected++
		}
	case "enter":
		t.activate()
	case "d", "D":
		t.deleteSelected()
	}
	return t, nil
}

func (t *ThemesScreen) activate() {
	name := t.names[t.selected]
	if !t.premium && name != themes.DefaultTheme {
		t.errMsg = "Themes beyond the default are a Premium feature. Run \"typerush upgrade\"."
		return
	}
	p, ok := t.lib.Resolve(name)
	if !ok {
		t.errMsg = "Theme not found"
		return
	}
	t.active.Set(name, p)
}

func (t *ThemesScreen) deleteSelected() {
	if !t.selectedIsCustom() {
		return
	}
	name := t.names[t.selected]
	if err := t.lib.Delete(name); err != nil {
		t.errMsg = err.Error()
		return
	}
	t.names = t.lib.Names()
	if t.selected >= len(t.names) {
		t.selected = len(t.names) - 1
	}
	if name == t.active.Name() {
		p, _ := themes.Builtin(themes.DefaultTheme)
		t.active.Set(themes.DefaultTheme, p)
	}
}

func (t *ThemesScreen) View(width, height int) string {
	var b strings.Builder

	for i, name := range t.names {
		b.WriteString(t.renderRow(name, i == t.selected))
		b.WriteString("\n")
	}

	if t.selected >= 0 && t.selected < len(t.names) {
		if p, ok := t.lib.Resolve(t.names[t.selected]); ok {
			b.WriteString("\n")
			b.WriteString(renderPreview(p, width))
		}
	}

	if t.errMsg != "" {
		b.WriteString("\n\n  ")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(t.errMsg))
	}

	return b.String()
}

func (t *ThemesScreen) renderRow(name string, selected bool) string {
	marker := "  "
	if name == t.active.Name() {
		marker = lipgloss.NewStyle().Foreground(theme.Success).Render("● ")
	}

	label := name
	if _, builtin := themes.Builtin(name); !builtin {
		label += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  (custom)")
	}

	if selected {
		return "  " + marker + lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ "+label)
	}
	return "  " + marker + "  " + lipgloss.NewStyle().Foreground(theme.Text).Render(label)
}

// renderPreview shows the palette swatches and a sample line styled
// with the selected theme.
func renderPreview(p themes.Palette, width int) string {
	swatch := func(hex string) string {
		return lipgloss.NewStyle().
			Background(lipgloss.Color(hex)).
			Render("   ")
	}

	swatches := strings.Join([]string{
		swatch(p.Background),
		swatch(p.Text),
		swatch(p.Cursor),
		swatch(p.Correct),
		swatch(p.Incorrect),
		swatch(p.CurrentWord),
	}, " ")

	styles := themes.StylesFor(p)
	sample := styles.Correct.Render("the quick brown ") +
		styles.Incorrect.Render("f") +
		styles.Cursor.Render("o") +
		styles.Untyped.Render("x jumps over the lazy dog")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2).
		Render(swatches + "\n\n" + sample)

	return lipgloss.NewStyle().MarginLeft(2).Render(box)
}
