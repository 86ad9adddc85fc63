package models

import "strings"

func trim(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeGenres returns genres as an ordered set: values are trimmed,
// blanks dropped, and later case-insensitive duplicates removed. The result
// is never nil so it persists as an empty JSON array.
func NormalizeGenres(genres []string) []string {
	out := make([]string, 0, len(genres))
	seen := make(map[string]struct{}, len(genres))
	for _, g := range genres {
		g = trim(g)
		if g == "" {
			continue
		}
		key := strings.ToLower(g)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, g)
	}
	return out
}

// ParseSeeking interprets a "seeking talent"/"seeking venue" form value.
// Checkbox style values count as true, anything else (including absent) as
// false.
func ParseSeeking(value string) bool {
	switch strings.ToLower(trim(value)) {
	case "y", "yes", "true", "on", "1":
		return true
	default:
		return false
	}
}
