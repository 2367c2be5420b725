package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"titlesync/internal/host"
	"titlesync/internal/logging"
	"titlesync/internal/markers"
	"titlesync/internal/overwrite"
	"titlesync/internal/placement"
	"titlesync/internal/textattr"
	"titlesync/internal/tracks"
	"titlesync/internal/timeline"
)

// Options configures a Controller.
type Options struct {
	// Prefix is the marker naming prefix; empty falls back to the default.
	Prefix string
	// SkipHiddenText drops not-visible text attributes during resolution.
	SkipHiddenText bool
	// DryRun computes the full plan and summary without mutating the
	// timeline.
	DryRun bool
	Logger *slog.Logger
}

// Controller runs the marker-driven synchronization against one host.
type Controller struct {
	host     host.Host
	parser   markers.Parser
	resolver textattr.Resolver
	logger   *slog.Logger
	dryRun   bool
}

// New constructs a Controller.
func New(h host.Host, opts Options) *Controller {
	return &Controller{
		host:     h,
		parser:   markers.NewParser(opts.Prefix),
		resolver: textattr.Resolver{SkipHidden: opts.SkipHiddenText},
		logger:   logging.NewComponentLogger(opts.Logger, "engine"),
		dryRun:   opts.DryRun,
	}
}

// Run scans all markers in timeline order and processes every marker that
// matches the naming convention. It returns an error only when the host is
// unreachable or no timeline is open; everything else is reported in the
// summary.
func (c *Controller) Run(ctx context.Context) (*Summary, error) {
	started := time.Now()

	name, err := c.host.TimelineName(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve timeline: %w", err)
	}
	offset, err := c.host.StartFrame(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve timeline start: %w", err)
	}
	markerList, err := c.host.Markers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list markers: %w", err)
	}

	// Process in timeline order so diagnostics read top to bottom; host
	// declaration order breaks ties stably.
	sort.SliceStable(markerList, func(i, j int) bool {
		return markerList[i].Frame < markerList[j].Frame
	})

	summary := &Summary{
		RunID:        uuid.NewString(),
		Timeline:     name,
		StartedAt:    started.UTC(),
		DryRun:       c.dryRun,
		TotalMarkers: len(markerList),
	}

	c.logger.Info("run started",
		logging.String("run_id", summary.RunID),
		logging.String("timeline", name),
		logging.Int("markers", len(markerList)),
		logging.Bool("dry_run", c.dryRun))

	for _, marker := range markerList {
		target, matched, parseErr := c.parser.Parse(marker.Name)
		if !matched {
			continue
		}
		result, err := c.processMarker(ctx, marker, target, parseErr, offset)
		if err != nil {
			return nil, err
		}
		summary.Results = append(summary.Results, result)
	}

	summary.Elapsed = time.Since(started)
	c.logger.Info("run finished",
		logging.String("run_id", summary.RunID),
		logging.Int("recognized", summary.Recognized()),
		logging.Int("placed", summary.Placed()),
		logging.Int("removed", summary.Removed()),
		logging.Duration("elapsed", summary.Elapsed))
	return summary, nil
}

// processMarker handles one recognized marker. The returned error is reserved
// for host failures, which abort the run; marker-level problems land in the
// result.
func (c *Controller) processMarker(ctx context.Context, marker timeline.Marker, target markers.Target, parseErr error, offset int64) (MarkerResult, error) {
	result := MarkerResult{Marker: marker}

	if parseErr != nil {
		result.Status = StatusSkipped
		result.Reason = SkipMalformedName
		result.Detail = parseErr.Error()
		c.logger.Warn("marker skipped", c.markerAttrs(marker, result)...)
		return result, nil
	}
	result.Track = target.TrackName()
	result.Template = target.Template

	// Track indices are re-derived for every marker; names may repeat and
	// tracks may move between markers.
	videoIndex, captionIndex, locErr := c.locateTracks(ctx, target.TrackName())
	if locErr != nil {
		return result, locErr
	}
	if videoIndex == 0 || captionIndex == 0 {
		result.Status = StatusSkipped
		result.Reason = SkipTrackNotFound
		result.Detail = fmt.Sprintf("no video and caption track pair named %q", target.TrackName())
		c.logger.Warn("marker skipped", c.markerAttrs(marker, result)...)
		return result, nil
	}

	// Resolve the template before touching the timeline so a missing
	// template leaves the marker region untouched.
	library, err := c.host.TemplateLibrary(ctx)
	if err != nil {
		return result, fmt.Errorf("load template library: %w", err)
	}
	tmpl, found := placement.ResolveTemplate(library, target.Template)
	if !found {
		result.Status = StatusSkipped
		result.Reason = SkipTemplateNotFound
		result.Detail = fmt.Sprintf("template %q not in library", target.Template)
		c.logger.Warn("marker skipped", c.markerAttrs(marker, result)...)
		return result, nil
	}

	region := timeline.MarkerRegion(marker, offset)

	// Clear the full marker region first. The sweep covers the whole region
	// rather than per-caption sub-intervals so re-runs stay idempotent.
	removed, err := c.clearRegion(ctx, videoIndex, region)
	if err != nil {
		return result, err
	}
	result.Removed = removed

	captionItems, err := c.host.TrackItems(ctx, timeline.TrackCaption, captionIndex)
	if err != nil {
		return result, fmt.Errorf("list captions on track %d: %w", captionIndex, err)
	}
	matched := placement.SelectCaptions(captionItems, region)
	result.Matched = len(matched)
	if len(matched) == 0 {
		result.Status = StatusSkipped
		result.Reason = SkipNoCaptions
		c.logger.Info("marker skipped", c.markerAttrs(marker, result)...)
		return result, nil
	}

	instructions := placement.Plan(matched, tmpl, videoIndex)
	for _, instruction := range instructions {
		if c.dryRun {
			result.Placed++
			continue
		}
		if err := c.place(ctx, instruction, &result); err != nil {
			return result, err
		}
	}

	result.Status = StatusPlaced
	if result.PlacementFailures > 0 || result.TextFailures > 0 {
		result.Status = StatusPartial
	}
	c.logger.Info("marker processed", c.markerAttrs(marker, result)...)
	return result, nil
}

func (c *Controller) locateTracks(ctx context.Context, trackName string) (videoIndex, captionIndex int, err error) {
	videoNames, err := c.host.TrackNames(ctx, timeline.TrackVideo)
	if err != nil {
		return 0, 0, fmt.Errorf("list video tracks: %w", err)
	}
	captionNames, err := c.host.TrackNames(ctx, timeline.TrackCaption)
	if err != nil {
		return 0, 0, fmt.Errorf("list caption tracks: %w", err)
	}
	videoIndex, _ = tracks.Locate(videoNames, trackName)
	captionIndex, _ = tracks.Locate(captionNames, trackName)
	return videoIndex, captionIndex, nil
}

func (c *Controller) clearRegion(ctx context.Context, videoIndex int, region timeline.Interval) (int, error) {
	items, err := c.host.TrackItems(ctx, timeline.TrackVideo, videoIndex)
	if err != nil {
		return 0, fmt.Errorf("list overlays on track %d: %w", videoIndex, err)
	}
	removals := overwrite.PlanRemovals(items, region)
	if len(removals) == 0 || c.dryRun {
		return len(removals), nil
	}
	if err := c.host.DeleteItems(ctx, removals); err != nil {
		return 0, fmt.Errorf("delete %d overlays: %w", len(removals), err)
	}
	return len(removals), nil
}

// place realizes one instruction and writes its text. Placement and text
// failures are soft: they are counted and processing continues with the next
// caption.
func (c *Controller) place(ctx context.Context, instruction placement.Instruction, result *MarkerResult) error {
	ref, err := c.host.AppendOverlay(ctx, instruction.Placement())
	if err != nil {
		result.PlacementFailures++
		c.logger.Warn("placement failed",
			logging.String("template", instruction.Template.Name),
			logging.Int64("start", instruction.Start),
			logging.Error(err))
		return nil
	}

	components, err := c.host.OverlayComposition(ctx, ref)
	if err != nil {
		return fmt.Errorf("inspect overlay composition: %w", err)
	}
	target, strategy, ok := c.resolver.Resolve(components)
	if !ok {
		result.Placed++
		result.TextFailures++
		c.logger.Warn("text attribute unresolved",
			logging.String("template", instruction.Template.Name),
			logging.Int64("start", instruction.Start))
		return nil
	}
	if err := c.host.SetComponentText(ctx, ref, target, instruction.Text); err != nil {
		result.Placed++
		result.TextFailures++
		c.logger.Warn("text write failed",
			logging.String("template", instruction.Template.Name),
			logging.String("attribute", target.Attribute),
			logging.Error(err))
		return nil
	}

	result.Placed++
	c.logger.Debug("overlay placed",
		logging.String("template", instruction.Template.Name),
		logging.Int64("start", instruction.Start),
		logging.Int64("duration", instruction.Duration),
		logging.String("strategy", strategy))
	return nil
}

func (c *Controller) markerAttrs(marker timeline.Marker, result MarkerResult) []any {
	attrs := []logging.Attr{
		logging.String("marker", marker.Name),
		logging.Int64("frame", marker.Frame),
	}
	if result.Reason != "" {
		attrs = append(attrs, logging.String("reason", string(result.Reason)))
	}
	if result.Detail != "" {
		attrs = append(attrs, logging.String("detail", result.Detail))
	}
	if result.Status != StatusSkipped {
		attrs = append(attrs,
			logging.Int("matched", result.Matched),
			logging.Int("placed", result.Placed),
			logging.Int("removed", result.Removed))
	}
	return logging.Args(attrs...)
}
