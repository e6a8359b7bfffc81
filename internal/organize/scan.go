package organize

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/tidyfs/tidy/internal/pathing"
	"github.com/tidyfs/tidy/internal/schema"
	"github.com/tidyfs/tidy/internal/validation"
)

// EmptyFileOptions configure a single zero-byte cleanup run.
type EmptyFileOptions struct {
	// DryRun simulates deletion without touching the filesystem.
	DryRun bool

	// Collect gathers the affected paths into the result.
	Collect bool
}

// EmptyFileResult is the aggregated report of one zero-byte cleanup run.
type EmptyFileResult struct {
	Scanned int
	Deleted int
	Paths   []string
	Errors  []schema.OperationError
}

// RemoveEmptyFiles deletes all files below root with a size of exactly
// zero bytes. Deletion failures are per-file and non-fatal.
func (h *Handler) RemoveEmptyFiles(ctx context.Context, root string, opts EmptyFileOptions) (*EmptyFileResult, error) {
	if err := validation.RequireDirectory(root); err != nil {
		return nil, fmt.Errorf("(empty-files) %w", err)
	}

	report, err := h.FSOps.Walk(pathing.NormalizePath(root), 0)
	if err != nil {
		return nil, fmt.Errorf("(empty-files) %w", err)
	}

	result := &EmptyFileResult{Scanned: len(report.Files)}
	for _, walkErr := range report.Errors {
		result.Errors = append(result.Errors, schema.OperationError(walkErr))
	}

	for _, file := range report.Files {
		if ctx.Err() != nil {
			break
		}

		if file.Size != 0 {
			continue
		}

		if !opts.DryRun {
			if err := h.OSOps.Remove(file.Path); err != nil {
				slog.Warn("Skipped file: failure during delete",
					"path", file.Path,
					"err", err,
				)
				result.Errors = append(result.Errors, schema.OperationError{Path: file.Path, Message: err.Error()})

				continue
			}
		}

		result.Deleted++
		if opts.Collect {
			result.Paths = append(result.Paths, file.Path)
		}
	}

	return result, nil
}

// LargeFileResult is the report of one oversized-file scan. Files holds at
// most the requested limit, sorted descending by size; TotalMatches counts
// every file at or above the threshold.
type LargeFileResult struct {
	TotalMatches int
	Files        []schema.FileRecord
	Errors       []schema.OperationError
}

// FindLargest returns the largest files below root that are at or above
// minSize bytes, up to limit entries. A limit of 0 or below returns all
// matches.
func (h *Handler) FindLargest(ctx context.Context, root string, minSize int64, limit int) (*LargeFileResult, error) {
	if err := validation.RequireDirectory(root); err != nil {
		return nil, fmt.Errorf("(large-files) %w", err)
	}
	if err := validation.RequirePositive("size threshold", minSize); err != nil {
		return nil, fmt.Errorf("(large-files) %w", err)
	}

	report, err := h.FSOps.Walk(pathing.NormalizePath(root), 0)
	if err != nil {
		return nil, fmt.Errorf("(large-files) %w", err)
	}

	result := &LargeFileResult{}
	for _, walkErr := range report.Errors {
		result.Errors = append(result.Errors, schema.OperationError(walkErr))
	}

	var matches []schema.FileRecord
	for _, file := range report.Files {
		if ctx.Err() != nil {
			break
		}

		if file.Size >= minSize {
			matches = append(matches, file)
		}
	}

	result.TotalMatches = len(matches)

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Size > matches[j].Size
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	result.Files = matches

	return result, nil
}
