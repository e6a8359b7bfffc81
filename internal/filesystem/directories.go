package filesystem

import (
	"log/slog"
	"path/filepath"

	"github.com/tidyfs/tidy/internal/pathing"
)

// PruneEmptyDirs removes all directories below root that are (or become)
// empty, deepest first. The root itself is protected and never removed,
// even when it ends up empty. Failures are logged and skipped; pruning is
// a best-effort cleanup and never fails the surrounding operation.
// Directory symlinks are not followed. It returns the removed paths.
func (f *Handler) PruneEmptyDirs(root string) []string {
	var removed []string

	f.pruneDir(pathing.NormalizePath(root), true, &removed)

	return removed
}

func (f *Handler) pruneDir(path string, isRoot bool, removed *[]string) {
	entries, err := f.OSOps.ReadDir(path)
	if err != nil {
		slog.Warn("Warning (cleanup): failure reading directory (skipped)",
			"path", path,
			"err", err,
		)

		return
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		f.pruneDir(filepath.Join(path, entry.Name()), false, removed)
	}

	if isRoot {
		return
	}

	isEmpty, err := f.IsEmptyDir(path)
	if err != nil {
		slog.Warn("Warning (cleanup): failure establishing directory emptiness (skipped)",
			"path", path,
			"err", err,
		)

		return
	}
	if !isEmpty {
		return
	}

	if err := f.OSOps.Remove(path); err != nil {
		slog.Warn("Warning (cleanup): failure removing empty directory (skipped)",
			"path", path,
			"err", err,
		)

		return
	}

	*removed = append(*removed, path)
}
