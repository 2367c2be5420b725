package tracks

// Locate returns the 1-based index of the first track whose name equals the
// target exactly, scanning names in the order the host reported them.
// Matching is case-sensitive; the second return value is false when no track
// matches.
func Locate(names []string, target string) (int, bool) {
	for i, name := range names {
		if name == target {
			return i + 1, true
		}
	}
	return 0, false
}
