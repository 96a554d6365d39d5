package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/typerush/typerush/internal/content"
	"github.com/typerush/typerush/internal/store"
)

var textsCmd = &cobra.Command{
	Use:   "texts",
	Short: "Manage custom practice texts",
}

var textsImportCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import custom texts from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read file: %w", err)
		}

		texts, err := content.ImportCustomTexts(data)
		if err != nil {
			return fmt.Errorf("validate texts: %w", err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		for _, t := range texts {
			id, err := st.AddCustomText(ctx, t)
			if err != nil {
				return fmt.Errorf("store %q: %w", t.Title, err)
			}
			fmt.Printf("Imported %q (%s)\n", t.Title, id)
		}
		return nil
	},
}

var textsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored custom texts",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		texts, err := st.CustomTexts(context.Background())
		if err != nil {
			return fmt.Errorf("list texts: %w", err)
		}
		if len(texts) == 0 {
			fmt.Println("No custom texts. Import some with \"typerush texts import <file.json>\".")
			return nil
		}

		for _, t := range texts {
			fmt.Printf("%s  %-30s %5d chars  %s\n",
				t.ID, t.Title, len(t.Content), t.CreatedAt.Local().Format("2006-01-02"))
		}
		return nil
	},
}

var textsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a custom text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.DeleteCustomText(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted.")
		return nil
	},
}

func init() {
	textsCmd.AddCommand(textsImportCmd)
	textsCmd.AddCommand(textsListCmd)
	textsCmd.AddCommand(textsDeleteCmd)
}

// openStore opens the store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
