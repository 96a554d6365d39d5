package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/typerush/typerush/internal/ui/theme"
)

// Picker is a horizontal option selector, used for session duration
// and similar small choice sets.
type Picker struct {
	Label    string
	Options  []string
	Selected int
}

// NewPicker creates a picker with the given options. The initial
// selection defaults to the first option when initial is out of range.
func NewPicker(label string, options []string, initial int) Picker {
	if initial < 0 || initial >= len(options) {
		initial = 0
	}
	return Picker{
		Label:    label,
		Options:  options,
		Selected: initial,
	}
}

// Update handles left/right navigation.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if p.Selected > 0 {
			p.Selected--
		}
	case "right", "l":
		if p.Selected < len(p.Options)-1 {
			p.Selected++
		}
	}

	return p, nil
}

// Value returns the currently selected option.
func (p Picker) Value() string {
	if p.Selected < 0 || p.Selected >= len(p.Options) {
		return ""
	}
	return p.Options[p.Selected]
}

// View renders the picker as a single line of options.
func (p Picker) View() string {
	parts := make([]string, 0, len(p.Options)+1)
	if p.Label != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Render(p.Label))
	}
	for i, opt := range p.Options {
		if i == p.Selected {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Padding(0, 1).
				Render(opt))
		} else {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.Text).
				Padding(0, 1).
				Render(opt))
		}
	}
	return strings.Join(parts, " ")
}
