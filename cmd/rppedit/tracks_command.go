package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"rppedit/internal/project"
)

type trackSummary struct {
	TrackID   string   `json:"track_id"`
	Name      string   `json:"name"`
	Volume    float64  `json:"volume"`
	Pan       float64  `json:"pan"`
	Mute      bool     `json:"mute"`
	Solo      bool     `json:"solo"`
	IsMaster  bool     `json:"is_master"`
	Effects   []string `json:"effects"`
	Envelopes int      `json:"envelopes"`
}

func newTracksCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "tracks FILE",
		Short: "List all tracks with their mixer settings and effect chains",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := project.Load(args[0], ctx.ensureLogger())
			if err != nil {
				return err
			}

			summaries := make([]trackSummary, 0, len(p.Tracks()))
			for _, track := range p.Tracks() {
				summaries = append(summaries, summarizeTrack(track))
			}

			if jsonOut {
				return writeJSON(cmd, summaries)
			}

			rows := make([][]string, 0, len(summaries))
			for _, s := range summaries {
				rows = append(rows, []string{
					s.TrackID,
					s.Name,
					formatFloat(s.Volume),
					formatFloat(s.Pan),
					formatBool(s.Mute),
					formatBool(s.Solo),
					strconv.Itoa(len(s.Effects)),
					strconv.Itoa(s.Envelopes),
				})
			}
			headers := []string{"ID", "Name", "Vol", "Pan", "Mute", "Solo", "FX", "Env"}
			aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignLeft, alignRight, alignRight}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}

func summarizeTrack(track *project.TrackView) trackSummary {
	envelopes := len(track.ParameterEnvelopes)
	if track.VolumeEnvelope != nil {
		envelopes++
	}
	if track.PanEnvelope != nil {
		envelopes++
	}
	return trackSummary{
		TrackID:   track.TrackID,
		Name:      track.Name,
		Volume:    track.Volume,
		Pan:       track.Pan,
		Mute:      track.Mute,
		Solo:      track.Solo,
		IsMaster:  track.IsMaster,
		Effects:   track.EffectNames(),
		Envelopes: envelopes,
	}
}
