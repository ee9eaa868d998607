package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var (
		limit   int
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the most recent recorded operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openHistory()
			if err != nil {
				return err
			}
			if store == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "History is disabled; enable it in the configuration file to record operations.")
				return nil
			}
			defer store.Close()

			ops, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, ops)
			}

			if len(ops) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No operations recorded yet.")
				return nil
			}
			rows := make([][]string, 0, len(ops))
			for _, op := range ops {
				rows = append(rows, []string{
					op.CreatedAt.Local().Format(time.RFC3339),
					op.Verb,
					op.SourcePath,
					op.TargetPath,
					op.Detail,
				})
			}
			headers := []string{"When", "Verb", "Source", "Target", "Detail"}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, nil))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of operations to show")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}
