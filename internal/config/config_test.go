package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file errored: %v", err)
	}
	if cfg.Session.Duration != nil {
		t.Error("missing file produced non-empty config")
	}

	if _, err := Load(""); err == nil {
		t.Error("empty path accepted")
	}
}

func TestLoadAndResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[session]
duration = 30
theme = "ocean"
sound = false

[account]
server-url = "https://example.test"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	s := Resolve(cfg)
	if s.Duration != 30 || s.Theme != "ocean" || s.Sound || s.ServerURL != "https://example.test" {
		t.Errorf("resolved = %+v", s)
	}
}

func TestResolveDefaults(t *testing.T) {
	s := Resolve(FileConfig{})
	if s.Duration != DefaultDuration {
		t.Errorf("default duration = %d", s.Duration)
	}
	if s.Theme != "dark" || !s.Sound {
		t.Errorf("defaults = %+v", s)
	}

	// Out-of-range durations fall back to the default.
	bad := 45
	s = Resolve(FileConfig{Session: SessionConfig{Duration: &bad}})
	if s.Duration != DefaultDuration {
		t.Errorf("invalid duration accepted: %d", s.Duration)
	}
}
