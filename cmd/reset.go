package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all local data",
	Long:  "Delete the local database: results, per-key stats, custom texts, and challenge progress. Config and themes are kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}

		if !resetYes {
			fmt.Printf("This deletes all local data at %s.\n", path)
			fmt.Println("Re-run with --yes to confirm.")
			return nil
		}

		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				fmt.Println("No local data to delete.")
				return nil
			}
			return fmt.Errorf("delete database: %w", err)
		}

		fmt.Println("Local data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "confirm deletion")
}
