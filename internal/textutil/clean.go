package textutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CleanCaption normalizes caption text for overlay rendering: NFC
// normalization, unified line endings, per-line trimming, collapsed space
// runs, and removal of blank lines. Line breaks inside a caption are kept;
// multi-line subtitles are intentional layout.
func CleanCaption(text string) string {
	if text == "" {
		return ""
	}
	normalized := norm.NFC.String(text)
	normalized = strings.ReplaceAll(normalized, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	lines := strings.Split(normalized, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = collapseSpaces(strings.TrimSpace(line))
		if line == "" {
			continue
		}
		cleaned = append(cleaned, line)
	}
	return strings.Join(cleaned, "\n")
}

func collapseSpaces(line string) string {
	if !strings.Contains(line, "  ") && !strings.Contains(line, "\t") {
		return line
	}
	return strings.Join(strings.Fields(line), " ")
}
