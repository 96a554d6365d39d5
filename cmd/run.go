package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/typerush/typerush/internal/account"
	"github.com/typerush/typerush/internal/app"
	"github.com/typerush/typerush/internal/challenges"
	"github.com/typerush/typerush/internal/config"
	"github.com/typerush/typerush/internal/content"
	"github.com/typerush/typerush/internal/screen"
	accountscreen "github.com/typerush/typerush/internal/screens/account"
	"github.com/typerush/typerush/internal/screens/home"
	sessionscreen "github.com/typerush/typerush/internal/screens/session"
	"github.com/typerush/typerush/internal/stats"
	"github.com/typerush/typerush/internal/store"
	"github.com/typerush/typerush/internal/themes"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// initial, when non-nil, receives the session deps and returns the
// screen to start on instead of the welcome splash.
func runApp(cmd *cobra.Command, initial func(sessionscreen.Deps) screen.Screen) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	themePath, err := themes.DefaultPath()
	if err != nil {
		return fmt.Errorf("resolve theme path: %w", err)
	}
	// A broken theme file should not keep the app from starting. Warn
	// and fall back to the built-in themes.
	lib, err := themes.LoadLibrary(themePath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v, using built-in themes\n", err)
	}
	active := themes.NewActive(lib, settings.Theme)

	src := content.NewSource(time.Now().UnixNano())
	challengeSvc := challenges.NewService(st, src)
	statsSvc := stats.NewService(st)

	acct := loadAccount(settings, st)

	opts := app.Options{
		Home: home.Deps{
			Store:      st,
			Source:     src,
			Challenges: challengeSvc,
			Stats:      statsSvc,
			Library:    lib,
			Theme:      active,
			Settings:   settings,
			Account:    acct,
		},
		Account: acct,
	}

	if initial != nil {
		opts.InitialScreen = initial(sessionscreen.Deps{
			Store:      st,
			Source:     src,
			Challenges: challengeSvc,
			Theme:      active,
			Settings:   settings,
		})
	}

	return app.Run(opts)
}

// loadAccount restores the saved session token and fetches the user
// profile. Failures leave the app in the logged-out state.
func loadAccount(settings config.Settings, st *store.Store) *accountscreen.Deps {
	deps := &accountscreen.Deps{
		ServerURL: settings.ServerURL,
		TokenPath: config.DefaultTokenPath(),
		Store:     st,
	}

	token, err := account.LoadToken(deps.TokenPath)
	if err != nil || token == "" {
		return deps
	}
	deps.Token = token

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if user, err := account.NewClient(deps.ServerURL, token).Me(ctx); err == nil {
		deps.User = user
	}
	return deps
}
