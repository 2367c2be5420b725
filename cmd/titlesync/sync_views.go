package main

import (
	"fmt"
	"strings"
	"time"

	"titlesync/internal/engine"
)

var markerResultHeaders = []string{"Frame", "Marker", "Track", "Template", "Status", "Matched", "Placed", "Removed", "Detail"}

var markerResultAligns = []columnAlignment{
	alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft,
}

func buildMarkerRows(results []engine.MarkerResult) [][]string {
	rows := make([][]string, 0, len(results))
	for _, result := range results {
		detail := result.Detail
		if detail == "" && result.Reason != "" {
			detail = string(result.Reason)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", result.Marker.Frame),
			result.Marker.Name,
			result.Track,
			result.Template,
			formatStatusLabel(string(result.Status)),
			fmt.Sprintf("%d", result.Matched),
			fmt.Sprintf("%d", result.Placed),
			fmt.Sprintf("%d", result.Removed),
			detail,
		})
	}
	return rows
}

func renderSummaryLines(summary *engine.Summary, colorize bool) []string {
	lines := []string{
		renderStatusLine("Timeline", statusInfo, summary.Timeline, colorize),
	}

	mode := "live"
	if summary.DryRun {
		mode = "dry run"
	}
	lines = append(lines, renderStatusLine("Mode", statusInfo, mode, colorize))
	lines = append(lines, renderStatusLine("Markers", statusInfo,
		fmt.Sprintf("%d on timeline, %d recognized", summary.TotalMarkers, summary.Recognized()), colorize))

	kind := statusOK
	switch {
	case summary.NeedsGuidance():
		kind = statusWarn
	case anyProblems(summary.Results):
		kind = statusWarn
	}
	lines = append(lines, renderStatusLine("Placed", kind,
		fmt.Sprintf("%d overlays (%d removed, %s)", summary.Placed(), summary.Removed(), formatElapsed(summary.Elapsed)), colorize))
	return lines
}

func renderGuidance(prefix string) []string {
	lines := []string{"", "No markers matched the naming convention. Check that:"}
	for _, condition := range engine.GuidanceConditions(prefix) {
		lines = append(lines, "  - "+condition)
	}
	return lines
}

func anyProblems(results []engine.MarkerResult) bool {
	for _, result := range results {
		if result.Status != engine.StatusPlaced {
			return true
		}
	}
	return false
}

func formatElapsed(elapsed time.Duration) string {
	return elapsed.Round(time.Millisecond).String()
}

func formatStatusLabel(status string) string {
	status = strings.TrimSpace(status)
	if status == "" {
		return ""
	}
	parts := strings.Split(status, "-")
	for i, part := range parts {
		lower := strings.ToLower(part)
		if lower == "" {
			continue
		}
		parts[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(parts, " ")
}

// syncReport is the JSON shape of one run summary.
type syncReport struct {
	RunID        string             `json:"run_id"`
	Timeline     string             `json:"timeline"`
	StartedAt    time.Time          `json:"started_at"`
	ElapsedMS    int64              `json:"elapsed_ms"`
	DryRun       bool               `json:"dry_run"`
	TotalMarkers int                `json:"total_markers"`
	Recognized   int                `json:"recognized"`
	Placed       int                `json:"placed"`
	Removed      int                `json:"removed"`
	Markers      []syncMarkerReport `json:"markers"`
}

type syncMarkerReport struct {
	Name              string `json:"name"`
	Frame             int64  `json:"frame"`
	Track             string `json:"track,omitempty"`
	Template          string `json:"template,omitempty"`
	Status            string `json:"status"`
	Reason            string `json:"reason,omitempty"`
	Detail            string `json:"detail,omitempty"`
	Matched           int    `json:"matched"`
	Placed            int    `json:"placed"`
	Removed           int    `json:"removed"`
	PlacementFailures int    `json:"placement_failures,omitempty"`
	TextFailures      int    `json:"text_failures,omitempty"`
}

func buildSyncReport(summary *engine.Summary) syncReport {
	report := syncReport{
		RunID:        summary.RunID,
		Timeline:     summary.Timeline,
		StartedAt:    summary.StartedAt,
		ElapsedMS:    summary.Elapsed.Milliseconds(),
		DryRun:       summary.DryRun,
		TotalMarkers: summary.TotalMarkers,
		Recognized:   summary.Recognized(),
		Placed:       summary.Placed(),
		Removed:      summary.Removed(),
		Markers:      make([]syncMarkerReport, 0, len(summary.Results)),
	}
	for _, result := range summary.Results {
		report.Markers = append(report.Markers, syncMarkerReport{
			Name:              result.Marker.Name,
			Frame:             result.Marker.Frame,
			Track:             result.Track,
			Template:          result.Template,
			Status:            string(result.Status),
			Reason:            string(result.Reason),
			Detail:            result.Detail,
			Matched:           result.Matched,
			Placed:            result.Placed,
			Removed:           result.Removed,
			PlacementFailures: result.PlacementFailures,
			TextFailures:      result.TextFailures,
		})
	}
	return report
}
