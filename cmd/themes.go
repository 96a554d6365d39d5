package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/typerush/typerush/internal/themes"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Manage typing themes",
}

var themesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := loadThemeLibrary()
		if err != nil {
			return err
		}
		for _, name := range lib.Names() {
			kind := "custom"
			if _, builtin := themes.Builtin(name); builtin {
				kind = "built-in"
			}
			fmt.Printf("%-20s %s\n", name, kind)
		}
		return nil
	},
}

var themesAddCmd = &cobra.Command{
	Use:   "add <name> <palette.json>",
	Short: "Add a custom theme from a palette file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("read palette: %w", err)
		}

		var p themes.Palette
		if err := json.Unmarshal(data, &p); err != nil {
			return fmt.Errorf("parse palette: %w", err)
		}

		lib, err := loadThemeLibrary()
		if err != nil {
			return err
		}
		if err := lib.Save(args[0], p); err != nil {
			return err
		}
		fmt.Printf("Saved theme %q.\n", args[0])
		return nil
	},
}

var themesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a custom theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := loadThemeLibrary()
		if err != nil {
			return err
		}
		if err := lib.Delete(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted.")
		return nil
	},
}

func init() {
	themesCmd.AddCommand(themesListCmd)
	themesCmd.AddCommand(themesAddCmd)
	themesCmd.AddCommand(themesDeleteCmd)
}

func loadThemeLibrary() (*themes.Library, error) {
	path, err := themes.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("resolve theme path: %w", err)
	}
	lib, err := themes.LoadLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("load themes: %w", err)
	}
	return lib, nil
}
