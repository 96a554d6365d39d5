package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/typerush/typerush/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show typing statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		d, err := stats.NewService(st).Dashboard(context.Background(), time.Now())
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		sum := d.Summary
		if sum.Sessions == 0 {
			fmt.Println("No sessions yet. Run \"typerush play\" first.")
			return nil
		}

		fmt.Printf("Sessions:    %d (%d completed)\n", sum.Sessions, sum.Completed)
		fmt.Printf("Average:     %d wpm\n", sum.AvgWPM)
		fmt.Printf("Best:        %d wpm\n", sum.BestWPM)
		fmt.Printf("Accuracy:    %.1f%%\n", sum.AvgAccuracy)
		fmt.Printf("Time typed:  %s\n", formatDuration(sum.TotalTimeSec))
		fmt.Printf("Characters:  %d\n", sum.TotalChars)

		if len(d.WeakKeys) > 0 {
			fmt.Println()
			fmt.Println("Weakest keys")
			fmt.Println(strings.Repeat("─", 36))
			limit := len(d.WeakKeys)
			if limit > 10 {
				limit = 10
			}
			for _, k := range d.WeakKeys[:limit] {
				label := k.Char
				if label == " " {
					label = "space"
				}
				fmt.Printf("%-8s %5.1f%% missed  (%d/%d)\n",
					label, k.MissRate()*100, k.Incorrect, k.Correct+k.Incorrect)
			}
		}

		return nil
	},
}

func formatDuration(sec int) string {
	if sec < 3600 {
		return fmt.Sprintf("%dm %ds", sec/60, sec%60)
	}
	return fmt.Sprintf("%dh %dm", sec/3600, (sec%3600)/60)
}
