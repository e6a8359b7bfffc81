package organize

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/tidyfs/tidy/internal/pathing"
	"github.com/tidyfs/tidy/internal/schema"
	"github.com/tidyfs/tidy/internal/validation"
)

// ArchiveOptions configure a single archive run.
type ArchiveOptions struct {
	// Dest is the flat destination directory, created if absent.
	Dest string

	// OlderThanDays selects files whose modification time is older than
	// now minus this many days.
	OlderThanDays int

	// DryRun computes and reports the full plan without moving anything.
	DryRun bool
}

// ArchiveResult is the aggregated report of one archive run.
type ArchiveResult struct {
	Scanned       int
	Archived      int
	BytesArchived int64
	Errors        []schema.OperationError
}

func (r *ArchiveResult) String() string {
	return fmt.Sprintf("scanned: %d, archived: %d (%s), errors: %d",
		r.Scanned, r.Archived, humanize.Bytes(uint64(r.BytesArchived)), len(r.Errors))
}

// Archive moves all files below root whose modification time is older than
// the configured age into a flat destination directory, resolving name
// collisions with numeric disambiguators.
func (h *Handler) Archive(ctx context.Context, root string, opts ArchiveOptions) (*ArchiveResult, error) {
	if err := validation.RequireDirectory(root); err != nil {
		return nil, fmt.Errorf("(archive) %w", err)
	}
	if err := validation.RequireNonEmpty("archive destination", opts.Dest); err != nil {
		return nil, fmt.Errorf("(archive) %w", err)
	}
	if err := validation.RequirePositive("duration days", int64(opts.OlderThanDays)); err != nil {
		return nil, fmt.Errorf("(archive) %w", err)
	}

	report, err := h.FSOps.Walk(pathing.NormalizePath(root), 0)
	if err != nil {
		return nil, fmt.Errorf("(archive) %w", err)
	}

	dest := pathing.NormalizePath(opts.Dest)
	cutoff := time.Now().AddDate(0, 0, -opts.OlderThanDays)

	result := &ArchiveResult{}
	for _, walkErr := range report.Errors {
		result.Errors = append(result.Errors, schema.OperationError(walkErr))
	}

	if !opts.DryRun {
		if err := h.OSOps.MkdirAll(dest, 0o755); err != nil {
			return nil, fmt.Errorf("(archive) failed to create destination %s: %w", dest, err)
		}
	}

	taken := make(map[string]struct{})

	for _, file := range report.Files {
		if ctx.Err() != nil {
			break
		}

		if !file.ModTime.Before(cutoff) {
			continue
		}
		result.Scanned++

		name := h.resolveCollision(dest, file.Name, taken)
		destPath := filepath.Join(dest, name)

		if opts.DryRun {
			slog.Info("Would archive:",
				"path", file.Path,
				"dest", destPath,
			)
			result.Archived++
			result.BytesArchived += file.Size

			continue
		}

		if err := h.MoveOps.Move(ctx, file.Path, destPath); err != nil {
			slog.Warn("Skipped file: failure during archive move",
				"path", file.Path,
				"dest", destPath,
				"err", err,
			)
			result.Errors = append(result.Errors, schema.OperationError{Path: file.Path, Message: err.Error()})

			continue
		}

		result.Archived++
		result.BytesArchived += file.Size
	}

	return result, nil
}
