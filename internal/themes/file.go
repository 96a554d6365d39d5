package themes

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// themeFile is the on-disk shape of the custom theme collection.
type themeFile struct {
	Themes map[string]Palette `json:"themes"`
}

// Library resolves palettes across the built-in set and a custom theme
// file.
type Library struct {
	path   string
	custom map[string]Palette
}

// LoadLibrary reads the custom theme file at path. A missing file yields
// an empty library. On a read or parse error the returned library is
// still usable and resolves the built-in themes, so callers can warn
// and carry on with defaults.
func LoadLibrary(path string) (*Library, error) {
	lib := &Library{path: path, custom: make(map[string]Palette)}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return lib, nil
	}
	if err != nil {
		return lib, fmt.Errorf("read themes: %w", err)
	}

	var f themeFile
	if err := json.Unmarshal(data, &f); err != nil {
		return lib, fmt.Errorf("parse themes: %w", err)
	}
	for name, p := range f.Themes {
		if err := p.Validate(); err != nil {
			return lib, fmt.Errorf("theme %q: %w", name, err)
		}
		lib.custom[name] = p
	}
	return lib, nil
}

// Resolve looks a theme up by name, built-ins first.
func (l *Library) Resolve(name string) (Palette, bool) {
	if p, ok := builtin[name]; ok {
		return p, true
	}
	p, ok := l.custom[name]
	return p, ok
}

// Names returns all known theme names, built-ins first, each group
// sorted.
func (l *Library) Names() []string {
	names := BuiltinNames()
	custom := make([]string, 0, len(l.custom))
	for name := range l.custom {
		custom = append(custom, name)
	}
	sort.Strings(custom)
	return append(names, custom...)
}

// Save validates and persists a custom palette. Built-in names cannot be
// overridden.
func (l *Library) Save(name string, p Palette) error {
	if name == "" {
		return errors.New("theme name is empty")
	}
	if _, ok := builtin[name]; ok {
		return fmt.Errorf("theme %q is built in", name)
	}
	if err := p.Validate(); err != nil {
		return err
	}

	l.custom[name] = p
	return l.flush()
}

// Delete removes a custom palette.
func (l *Library) Delete(name string) error {
	if _, ok := l.custom[name]; !ok {
		return fmt.Errorf("theme %q not found", name)
	}
	delete(l.custom, name)
	return l.flush()
}

func (l *Library) flush() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create theme dir: %w", err)
	}
	data, err := json.MarshalIndent(themeFile{Themes: l.custom}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode themes: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("write themes: %w", err)
	}
	return nil
}

// DefaultPath resolves the custom theme file location under the XDG
// config directory.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "typerush", "themes.json"), nil
}
