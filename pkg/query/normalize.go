package query

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Normalize reduces text to its canonical form: lower-cased with every
// character outside [a-z0-9] stripped. This is the single normalization
// routine used everywhere text comparison occurs; it makes matching
// tolerant of punctuation, spacing, and small typos ("beraing" and
// "bearing?" both survive as-is but separator noise never does).
// Empty input normalizes to the empty string.
func Normalize(text string) string {
	return nonAlphanumeric.ReplaceAllString(strings.ToLower(text), "")
}
