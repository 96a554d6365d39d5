// Package config provides the TOML configuration file and XDG path
// helpers.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DurationOptions are the selectable session lengths in seconds.
var DurationOptions = []int{15, 30, 60}

// DefaultDuration is the session length used when none is configured.
const DefaultDuration = 60

// FileConfig represents the TOML configuration file. Pointer fields
// distinguish "unset" from zero values.
type FileConfig struct {
	Session SessionConfig `toml:"session"`
	Account AccountConfig `toml:"account"`
}

// SessionConfig maps typing session settings.
type SessionConfig struct {
	Duration *int    `toml:"duration"`
	Theme    *string `toml:"theme"`
	Sound    *bool   `toml:"sound"`
}

// AccountConfig maps account service settings.
type AccountConfig struct {
	ServerURL *string `toml:"server-url"`
}

// Load reads a TOML config from the given path. A missing file is not an
// error.
func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Settings is the resolved configuration with defaults applied.
type Settings struct {
	Duration  int
	Theme     string
	Sound     bool
	ServerURL string
}

// DefaultServerURL is the hosted account service.
const DefaultServerURL = "https://api.typerush.dev"

// Resolve applies defaults over the file config. An out-of-range duration
// falls back to the default rather than erroring.
func Resolve(f FileConfig) Settings {
	s := Settings{
		Duration:  DefaultDuration,
		Theme:     "dark",
		Sound:     true,
		ServerURL: DefaultServerURL,
	}
	if f.Session.Duration != nil && validDuration(*f.Session.Duration) {
		s.Duration = *f.Session.Duration
	}
	if f.Session.Theme != nil && *f.Session.Theme != "" {
		s.Theme = *f.Session.Theme
	}
	if f.Session.Sound != nil {
		s.Sound = *f.Session.Sound
	}
	if f.Account.ServerURL != nil && *f.Account.ServerURL != "" {
		s.ServerURL = *f.Account.ServerURL
	}
	return s
}

func validDuration(d int) bool {
	for _, opt := range DurationOptions {
		if d == opt {
			return true
		}
	}
	return false
}

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "typerush", "config.toml")
}

// DefaultTokenPath returns where the account session token is stored.
func DefaultTokenPath() string {
	return filepath.Join(XDGConfigHome(), "typerush", "token")
}
