package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rppedit/internal/project"
)

func newInfoCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "info FILE",
		Short: "Show project-level attributes of a REAPER project file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := project.Load(args[0], ctx.ensureLogger())
			if err != nil {
				return err
			}
			info := p.Info()

			if jsonOut {
				return writeJSON(cmd, info)
			}

			rows := [][]string{
				{"Version", info.Version},
				{"REAPER version", info.ReaperVersion},
				{"Tracks", fmt.Sprintf("%d", info.TrackCount)},
				{"Tracks incl. master", fmt.Sprintf("%d", info.TotalTrackCount)},
				{"Master effects", formatBool(info.HasMasterEffects)},
				{"Tempo", formatFloat(info.Tempo)},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}
