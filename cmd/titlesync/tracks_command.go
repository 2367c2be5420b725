package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"titlesync/internal/host/bridge"
	"titlesync/internal/timeline"
	"titlesync/internal/tracks"
)

type trackView struct {
	Kind   string `json:"kind"`
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Paired bool   `json:"paired"`
}

func newTracksCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "tracks",
		Short: "List video and caption tracks and their convention pairing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			var videoNames, captionNames []string
			err = ctx.withClient(func(client *bridge.Client) error {
				var listErr error
				if videoNames, listErr = client.TrackNames(cmd.Context(), timeline.TrackVideo); listErr != nil {
					return listErr
				}
				captionNames, listErr = client.TrackNames(cmd.Context(), timeline.TrackCaption)
				return listErr
			})
			if err != nil {
				return err
			}

			views := buildTrackViews(cfg.Markers.Prefix, videoNames, captionNames)
			if jsonOutput {
				return writeJSON(cmd, views)
			}

			out := cmd.OutOrStdout()
			if len(views) == 0 {
				fmt.Fprintln(out, "No tracks on the open timeline")
				return nil
			}
			headers := []string{"Kind", "Index", "Name", "Paired"}
			aligns := []columnAlignment{alignLeft, alignRight, alignLeft, alignLeft}
			rows := make([][]string, 0, len(views))
			for _, view := range views {
				rows = append(rows, []string{
					view.Kind,
					fmt.Sprintf("%d", view.Index),
					view.Name,
					yesNo(view.Paired),
				})
			}
			fmt.Fprintln(out, renderTable(headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit tracks as JSON")
	return cmd
}

// buildTrackViews flags convention tracks whose counterpart of the other kind
// exists, which is the pairing the sync run requires.
func buildTrackViews(prefix string, videoNames, captionNames []string) []trackView {
	views := make([]trackView, 0, len(videoNames)+len(captionNames))
	for i, name := range videoNames {
		paired := false
		if strings.HasPrefix(name, prefix) {
			_, paired = tracks.Locate(captionNames, name)
		}
		views = append(views, trackView{Kind: "video", Index: i + 1, Name: name, Paired: paired})
	}
	for i, name := range captionNames {
		paired := false
		if strings.HasPrefix(name, prefix) {
			_, paired = tracks.Locate(videoNames, name)
		}
		views = append(views, trackView{Kind: "caption", Index: i + 1, Name: name, Paired: paired})
	}
	return views
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
