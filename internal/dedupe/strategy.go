package dedupe

import (
	"fmt"
	"log/slog"
	"strings"
)

// Strategy names a canonical-selection policy for duplicate groups.
type Strategy string

const (
	// StrategyFirst keeps the first member encountered in traversal order.
	StrategyFirst Strategy = "first"

	// StrategyCanonical keeps the first member under the canonical path
	// prefix, falling back to traversal order with a warning if none is.
	StrategyCanonical Strategy = "canonical"

	// StrategyOldest keeps the member with the earliest modification time.
	StrategyOldest Strategy = "oldest"

	// StrategyNewest keeps the member with the latest modification time.
	StrategyNewest Strategy = "newest"

	// StrategyShortestPath keeps the member with the shortest path string.
	StrategyShortestPath Strategy = "shortest-path"

	// StrategyLongestPath keeps the member with the longest path string.
	StrategyLongestPath Strategy = "longest-path"
)

// resolveStrategy applies the defaulting rules: no strategy means "first",
// unless a canonical path was given, which implies "canonical".
func resolveStrategy(opts Options) (Strategy, error) {
	strategy := opts.Strategy

	if strategy == "" {
		if opts.CanonicalPath != "" {
			return StrategyCanonical, nil
		}

		return StrategyFirst, nil
	}

	switch strategy {
	case StrategyFirst, StrategyCanonical, StrategyOldest, StrategyNewest,
		StrategyShortestPath, StrategyLongestPath:
		return strategy, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}

// selectCanonical returns the index of the group member to retain. All
// comparisons are linear scans with first-member-wins on ties, so the
// choice is deterministic for a given traversal order.
func selectCanonical(group hashGroup, strategy Strategy, canonicalPath string) int {
	switch strategy {
	case StrategyCanonical:
		for idx, file := range group.files {
			if strings.HasPrefix(file.Path, canonicalPath) {
				return idx
			}
		}

		slog.Warn("No duplicate matches canonical path, keeping first encountered",
			"hash", group.hash,
			"canonicalPath", canonicalPath,
			"kept", group.files[0].Path,
		)

		return 0

	case StrategyOldest:
		best := 0
		for idx, file := range group.files {
			if file.ModTime.Before(group.files[best].ModTime) {
				best = idx
			}
		}

		return best

	case StrategyNewest:
		best := 0
		for idx, file := range group.files {
			if file.ModTime.After(group.files[best].ModTime) {
				best = idx
			}
		}

		return best

	case StrategyShortestPath:
		best := 0
		for idx, file := range group.files {
			if len(file.Path) < len(group.files[best].Path) {
				best = idx
			}
		}

		return best

	case StrategyLongestPath:
		best := 0
		for idx, file := range group.files {
			if len(file.Path) > len(group.files[best].Path) {
				best = idx
			}
		}

		return best

	case StrategyFirst:
		return 0

	default:
		return 0
	}
}
