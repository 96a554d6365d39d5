package themes

// Active tracks the theme currently in use. The TUI mutates it from the
// themes screen and the session screen reads styles from it at render
// time, so a theme change applies to the next frame.
type Active struct {
	name    string
	palette Palette
	styles  Styles
}

// NewActive resolves name against the library, falling back to the
// default theme when the name is unknown.
func NewActive(lib *Library, name string) *Active {
	p, ok := lib.Resolve(name)
	if !ok {
		name = DefaultTheme
		p, _ = Builtin(DefaultTheme)
	}
	return &Active{name: name, palette: p, styles: StylesFor(p)}
}

func (a *Active) Name() string     { return a.name }
func (a *Active) Palette() Palette { return a.palette }
func (a *Active) Styles() Styles   { return a.styles }

// Set switches the active theme.
func (a *Active) Set(name string, p Palette) {
	a.name = name
	a.palette = p
	a.styles = StylesFor(p)
}
