// Package themes manages typing screen color palettes: the built-in set,
// user-defined palettes persisted as JSON, and the lipgloss styles
// derived from a palette.
package themes

import (
	"fmt"
	"regexp"
	"sort"
)

// Palette is the six-color scheme the session screen renders with.
type Palette struct {
	Background  string `json:"background"`
	Text        string `json:"text"`
	Cursor      string `json:"cursor"`
	Correct     string `json:"correct"`
	Incorrect   string `json:"incorrect"`
	CurrentWord string `json:"currentWord"`
}

// DefaultTheme is the theme used before any selection is made.
const DefaultTheme = "dark"

var builtin = map[string]Palette{
	"dark": {
		Background:  "#1E1E2E",
		Text:        "#CDD6F4",
		Cursor:      "#F5E0DC",
		Correct:     "#A6E3A1",
		Incorrect:   "#F38BA8",
		CurrentWord: "#89B4FA",
	},
	"light": {
		Background:  "#F8F9FA",
		Text:        "#212529",
		Cursor:      "#FD7E14",
		Correct:     "#28A745",
		Incorrect:   "#DC3545",
		CurrentWord: "#007BFF",
	},
	"sunset": {
		Background:  "#282C35",
		Text:        "#F8F8F2",
		Cursor:      "#FF79C6",
		Correct:     "#50FA7B",
		Incorrect:   "#FF5555",
		CurrentWord: "#BD93F9",
	},
	"ocean": {
		Background:  "#0A192F",
		Text:        "#E6F1FF",
		Cursor:      "#64FFDA",
		Correct:     "#8892B0",
		Incorrect:   "#FF6E6C",
		CurrentWord: "#5CCFE6",
	},
}

// Builtin returns a built-in palette by name.
func Builtin(name string) (Palette, bool) {
	p, ok := builtin[name]
	return p, ok
}

// BuiltinNames returns the built-in theme names, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validate checks that every color in the palette is a six-digit hex
// color.
func (p Palette) Validate() error {
	fields := map[string]string{
		"background":  p.Background,
		"text":        p.Text,
		"cursor":      p.Cursor,
		"correct":     p.Correct,
		"incorrect":   p.Incorrect,
		"currentWord": p.CurrentWord,
	}
	for name, v := range fields {
		if !hexColor.MatchString(v) {
			return fmt.Errorf("invalid %s color %q", name, v)
		}
	}
	return nil
}
