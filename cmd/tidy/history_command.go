package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tidy/internal/journal"
)

const historyTimeLayout = "2006-01-02 15:04:05"

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent moves recorded in the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := journal.Open(cfg.JournalPath())
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			defer store.Close()

			entries, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No moves recorded")
				return nil
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "When", "Run", "Directory", "Source", "Target"},
				historyRows(entries),
				[]columnAlignment{alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Maximum number of moves to show (0 for all)")
	return cmd
}

func historyRows(entries []journal.Entry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			fmt.Sprintf("%d", entry.ID),
			entry.MovedAt.Local().Format(historyTimeLayout),
			shortRunID(entry.RunID),
			entry.Directory,
			entry.Source,
			entry.Target,
		})
	}
	return rows
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
