package themes

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinPalettes(t *testing.T) {
	names := BuiltinNames()
	if len(names) != 4 {
		t.Fatalf("got %d built-in themes, want 4", len(names))
	}
	for _, name := range names {
		p, ok := Builtin(name)
		if !ok {
			t.Fatalf("Builtin(%q) not found", name)
		}
		if err := p.Validate(); err != nil {
			t.Errorf("built-in %q invalid: %v", name, err)
		}
	}
	if _, ok := Builtin(DefaultTheme); !ok {
		t.Errorf("default theme %q is not built in", DefaultTheme)
	}
}

func TestPaletteValidate(t *testing.T) {
	p, _ := Builtin("dark")

	p.Cursor = "red"
	if err := p.Validate(); err == nil {
		t.Error("named color accepted")
	}
	p.Cursor = "#FFF"
	if err := p.Validate(); err == nil {
		t.Error("three-digit hex accepted")
	}
	p.Cursor = "#F5E0DC"
	if err := p.Validate(); err != nil {
		t.Errorf("valid palette rejected: %v", err)
	}
}

func TestLibraryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.json")

	lib, err := LoadLibrary(path)
	if err != nil {
		t.Fatalf("LoadLibrary on missing file: %v", err)
	}

	custom, _ := Builtin("ocean")
	custom.Cursor = "#FFFFFF"
	if err := lib.Save("midnight", custom); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Reload from disk.
	lib, err = LoadLibrary(path)
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}
	got, ok := lib.Resolve("midnight")
	if !ok {
		t.Fatal("saved theme not found after reload")
	}
	if got.Cursor != "#FFFFFF" {
		t.Errorf("cursor = %q, want #FFFFFF", got.Cursor)
	}

	names := lib.Names()
	if names[len(names)-1] != "midnight" {
		t.Errorf("custom name not listed last: %v", names)
	}

	if err := lib.Delete("midnight"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := lib.Delete("midnight"); err == nil {
		t.Error("deleting a missing theme did not error")
	}
}

func TestLoadLibraryMalformedFileStillUsable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	lib, err := LoadLibrary(path)
	if err == nil {
		t.Error("malformed file loaded without error")
	}
	if lib == nil {
		t.Fatal("no library returned for a malformed file")
	}

	// The built-ins must still resolve so the app can fall back to the
	// default theme.
	if _, ok := lib.Resolve(DefaultTheme); !ok {
		t.Error("default theme not resolvable")
	}
	if got, want := len(lib.Names()), len(BuiltinNames()); got != want {
		t.Errorf("names = %d, want the %d built-ins", got, want)
	}

	active := NewActive(lib, "midnight")
	if active.Name() != DefaultTheme {
		t.Errorf("active theme = %q, want %q", active.Name(), DefaultTheme)
	}
}

func TestLibraryRejectsBadSaves(t *testing.T) {
	lib, err := LoadLibrary(filepath.Join(t.TempDir(), "themes.json"))
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}

	p, _ := Builtin("dark")
	if err := lib.Save("", p); err == nil {
		t.Error("empty name accepted")
	}
	if err := lib.Save("dark", p); err == nil {
		t.Error("built-in override accepted")
	}
	p.Background = "nope"
	if err := lib.Save("broken", p); err == nil {
		t.Error("invalid palette accepted")
	}
}
