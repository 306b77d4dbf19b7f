package harness

import "regexp"

// Timing lines in tool output ("finished in 1.23s") vary from run to run.
// References are maintained timing-free, so only the actual stdout gets
// scrubbed; stderr and the reference contents are compared exactly.
var timingPattern = regexp.MustCompile(`finished in \d+\.\d\ds`)

// ScrubTimings removes every timing substring from s and leaves everything
// else untouched. Substrings that merely resemble the pattern (wrong digit
// counts) pass through as-is.
func ScrubTimings(s string) string {
	return timingPattern.ReplaceAllString(s, "")
}
