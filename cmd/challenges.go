package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/typerush/typerush/internal/challenges"
	"github.com/typerush/typerush/internal/content"
	"github.com/typerush/typerush/internal/typing"
)

var challengesCmd = &cobra.Command{
	Use:   "challenges",
	Short: "List challenges and their completion state",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := challenges.NewService(st, content.NewSource(time.Now().UnixNano()))
		items, err := svc.List(context.Background())
		if err != nil {
			return fmt.Errorf("list challenges: %w", err)
		}

		for _, item := range items {
			mark := " "
			if item.Completed {
				mark = "✓"
			}
			fmt.Printf("[%s] %-12s %-20s %-16s %s\n",
				mark, item.ID, item.Title, challengeTarget(item.Challenge), item.Reward)
		}
		fmt.Println()
		fmt.Println("Attempt one with \"typerush play --challenge <id>\".")
		return nil
	},
}

func challengeTarget(c typing.Challenge) string {
	switch c.Type {
	case typing.ChallengeSpeed:
		return fmt.Sprintf("%.0f wpm", c.Target)
	case typing.ChallengeEndurance:
		return fmt.Sprintf("%.0f minutes", c.Target)
	default:
		return fmt.Sprintf("%.0f%% accuracy", c.Target)
	}
}
