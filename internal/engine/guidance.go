package engine

import "fmt"

// GuidanceConditions lists the setup the naming convention requires. The CLI
// prints these when a run recognized no markers at all.
func GuidanceConditions(prefix string) []string {
	return []string{
		fmt.Sprintf("a timeline marker is named %q followed by the track target, a hyphen, and a template name (for example %sMain-LowerThird)", prefix, prefix),
		fmt.Sprintf("a video track is named %q followed by the same track target (for example %sMain)", prefix, prefix),
		fmt.Sprintf("a caption track is named %q followed by the same track target and holds the subtitles to place", prefix),
	}
}
