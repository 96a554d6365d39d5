package cmd

import (
	"github.com/spf13/cobra"

	"github.com/typerush/typerush/internal/config"
	"github.com/typerush/typerush/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "typerush",
	Short: "Terminal typing speed trainer",
	Long:  "TypeRush: practice typing in your terminal, track your WPM, and take on challenges.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TYPERUSH_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(challengesCmd)
	rootCmd.AddCommand(textsCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(upgradeCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then TYPERUSH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveSettings loads the config file honoring the --config flag.
func resolveSettings(cmd *cobra.Command) (config.Settings, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}
	fc, err := config.Load(path)
	if err != nil {
		return config.Settings{}, err
	}
	return config.Resolve(fc), nil
}
