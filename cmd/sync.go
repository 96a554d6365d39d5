package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push local results to your account",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := resolveSettings(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		client, err := authedClient(settings)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		pending, err := st.UnsyncedResults(ctx)
		if err != nil {
			return fmt.Errorf("load pending results: %w", err)
		}
		if len(pending) == 0 {
			fmt.Println("Nothing to sync.")
			return nil
		}

		synced := 0
		for _, r := range pending {
			if err := client.SyncResult(ctx, r); err != nil {
				return fmt.Errorf("sync result %s (%d synced): %w", r.ID, synced, err)
			}
			if err := st.MarkSynced(ctx, r.ID); err != nil {
				return fmt.Errorf("mark result %s synced: %w", r.ID, err)
			}
			synced++
		}

		fmt.Printf("Synced %d result(s).\n", synced)
		return nil
	},
}
