package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidyfs/tidy/internal/pathing"
	"github.com/tidyfs/tidy/internal/schema"
)

// Walk recursively enumerates all regular files below root, producing a
// [schema.WalkReport] with the files in traversal order and any per-entry
// failures accumulated as [schema.WalkError].
//
// Directory symlinks are resolved before descent; a real path that was
// already visited stops the descent there, which breaks symlink cycles
// without error. Symlinks to files are never recorded: a file enters the
// report exactly once, through its own directory entry, so a link and its
// target can never both appear. A maxDepth of 0 (or below) means
// unlimited; otherwise recursion stops past maxDepth levels from the root.
//
// Only a root that cannot be resolved or read is a fatal error. Every other
// failure (stat error, permission denied, broken symlink, unreadable
// subdirectory) is recorded and traversal continues with siblings.
func (f *Handler) Walk(root string, maxDepth int) (*schema.WalkReport, error) {
	rootPath := pathing.NormalizePath(root)

	realRoot, err := filepath.EvalSymlinks(rootPath)
	if err != nil {
		return nil, fmt.Errorf("(fs-walk) failed to resolve root %s: %w", rootPath, err)
	}

	entries, err := f.OSOps.ReadDir(rootPath)
	if err != nil {
		return nil, fmt.Errorf("(fs-walk) failed to read root %s: %w", rootPath, err)
	}

	report := &schema.WalkReport{}
	visited := map[string]struct{}{realRoot: {}}

	f.walkEntries(rootPath, entries, 1, maxDepth, visited, report)

	return report, nil
}

// walkEntries processes the entries of one directory at the given depth,
// appending into the shared report accumulator.
func (f *Handler) walkEntries(dir string, entries []os.DirEntry, depth, maxDepth int, visited map[string]struct{}, report *schema.WalkReport) {
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.Type()&os.ModeSymlink != 0 {
			info, err := f.OSOps.Stat(path)
			if err != nil {
				report.Errors = append(report.Errors, schema.WalkError{Path: path, Message: err.Error()})

				continue
			}

			if info.IsDir() {
				if maxDepth > 0 && depth >= maxDepth {
					continue
				}
				f.walkInto(path, depth+1, maxDepth, visited, report)
			}

			// A symlink to a file is not a file; its target is reached
			// through its own directory entry.
			continue
		}

		if entry.IsDir() {
			if maxDepth > 0 && depth >= maxDepth {
				continue
			}
			f.walkInto(path, depth+1, maxDepth, visited, report)

			continue
		}

		if !entry.Type().IsRegular() {
			continue
		}

		info, err := f.OSOps.Lstat(path)
		if err != nil {
			report.Errors = append(report.Errors, schema.WalkError{Path: path, Message: err.Error()})

			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}

		report.Files = append(report.Files, schema.NewFileRecord(dir, info))
	}
}

// walkInto descends into a single directory, guarding against symlink
// cycles through the visited set of resolved real paths.
func (f *Handler) walkInto(path string, depth, maxDepth int, visited map[string]struct{}, report *schema.WalkReport) {
	realPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		report.Errors = append(report.Errors, schema.WalkError{Path: path, Message: err.Error()})

		return
	}

	if _, seen := visited[realPath]; seen {
		return
	}
	visited[realPath] = struct{}{}

	entries, err := f.OSOps.ReadDir(path)
	if err != nil {
		report.Errors = append(report.Errors, schema.WalkError{Path: path, Message: err.Error()})

		return
	}

	f.walkEntries(path, entries, depth, maxDepth, visited, report)
}
