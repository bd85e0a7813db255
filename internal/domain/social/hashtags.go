package social

import (
	"regexp"
	"strings"
)

var hashtagSeparators = regexp.MustCompile(`[,\s]+`)

// ParseHashtags splits editor input such as "Marketing, #AI Business".
func ParseHashtags(input string) []string {
	return NormalizeHashtags(hashtagSeparators.Split(input, -1))
}

// NormalizeHashtags strips a leading '#', drops blanks and de-duplicates
// while keeping first-seen order.
func NormalizeHashtags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, raw := range tags {
		for _, part := range hashtagSeparators.Split(raw, -1) {
			tag := strings.TrimLeft(strings.TrimSpace(part), "#")
			if tag == "" {
				continue
			}
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}
