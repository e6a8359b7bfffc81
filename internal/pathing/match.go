package pathing

import (
	"path/filepath"
	"strings"
)

// Match reports whether s matches pattern. The pattern language is
// deliberately small: '*' matches any run of characters (including none),
// '?' matches exactly one character, every other byte matches itself
// literally. There is no escaping; a literal '*' or '?' cannot be matched.
func Match(pattern, s string) bool {
	var starPat, starStr int

	p, i := 0, 0
	starPat, starStr = -1, -1

	for i < len(s) {
		switch {
		case p < len(pattern) && (pattern[p] == '?' || pattern[p] == s[i]):
			p++
			i++

		case p < len(pattern) && pattern[p] == '*':
			starPat = p
			starStr = i
			p++

		case starPat >= 0:
			// Backtrack: let the last '*' consume one more character.
			p = starPat + 1
			starStr++
			i = starStr

		default:
			return false
		}
	}

	for p < len(pattern) && pattern[p] == '*' {
		p++
	}

	return p == len(pattern)
}

// MatchAny reports whether s matches any of the given patterns, either as a
// wildcard match against the full string or its base element, or through
// plain substring containment as a fallback.
func MatchAny(patterns []string, s string) bool {
	base := filepath.Base(s)

	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		if Match(pattern, s) || Match(pattern, base) {
			return true
		}
		if strings.Contains(s, pattern) {
			return true
		}
	}

	return false
}
