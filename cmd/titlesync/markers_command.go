package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"titlesync/internal/host/bridge"
	"titlesync/internal/markers"
	"titlesync/internal/timeline"
)

type markerView struct {
	Frame    int64  `json:"frame"`
	Duration int64  `json:"duration"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Track    string `json:"track,omitempty"`
	Template string `json:"template,omitempty"`
	Detail   string `json:"detail,omitempty"`
}

func newMarkersCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "markers",
		Short: "List timeline markers and how the naming convention reads them",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			parser := markers.NewParser(cfg.Markers.Prefix)

			var markerList []timeline.Marker
			err = ctx.withClient(func(client *bridge.Client) error {
				var listErr error
				markerList, listErr = client.Markers(cmd.Context())
				return listErr
			})
			if err != nil {
				return err
			}

			views := buildMarkerViews(parser, markerList)
			if jsonOutput {
				return writeJSON(cmd, views)
			}

			out := cmd.OutOrStdout()
			if len(views) == 0 {
				fmt.Fprintln(out, "No markers on the open timeline")
				return nil
			}
			headers := []string{"Frame", "Name", "Kind", "Track", "Template"}
			aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft}
			rows := make([][]string, 0, len(views))
			for _, view := range views {
				rows = append(rows, []string{
					fmt.Sprintf("%d", view.Frame),
					view.Name,
					view.Kind,
					view.Track,
					view.Template,
				})
			}
			fmt.Fprintln(out, renderTable(headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit markers as JSON")
	return cmd
}

func buildMarkerViews(parser markers.Parser, markerList []timeline.Marker) []markerView {
	views := make([]markerView, 0, len(markerList))
	for _, marker := range markerList {
		view := markerView{
			Frame:    marker.Frame,
			Duration: marker.Duration,
			Name:     marker.Name,
		}
		target, matched, err := parser.Parse(marker.Name)
		switch {
		case !matched:
			view.Kind = "unrelated"
		case err != nil:
			view.Kind = "malformed"
			view.Detail = err.Error()
		default:
			view.Kind = "target"
			view.Track = target.TrackName()
			view.Template = target.Template
		}
		views = append(views, view)
	}
	return views
}
