package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate a practice paragraph with the configured LLM",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := generateParagraph(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}
