package organize

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/tidyfs/tidy/internal/pathing"
	"github.com/tidyfs/tidy/internal/schema"
	"github.com/tidyfs/tidy/internal/validation"
)

// ConflictStrategy names how flatten resolves destination name collisions.
type ConflictStrategy string

const (
	// ConflictRename appends a numeric disambiguator on collision.
	ConflictRename ConflictStrategy = "rename"

	// ConflictOverwrite replaces an existing file of the same name.
	ConflictOverwrite ConflictStrategy = "overwrite"

	// ConflictSkip leaves a colliding file where it is.
	ConflictSkip ConflictStrategy = "skip"
)

// FlattenOptions configure a single flatten run.
type FlattenOptions struct {
	// MaxDepth limits the walk; 0 means unlimited.
	MaxDepth int

	// Conflict selects the collision strategy; empty means rename.
	Conflict ConflictStrategy

	// DeleteEmpty prunes now-empty directories after moving, protecting
	// the flatten root itself.
	DeleteEmpty bool

	// DryRun computes and reports the full plan without moving anything.
	DryRun bool
}

// Flatten moves all files from nested subdirectories directly under root.
// Files already directly under root are left alone; with no nested
// structure at all, the operation is a no-op reporting zero eligible
// files.
func (h *Handler) Flatten(ctx context.Context, root string, opts FlattenOptions) (*schema.OperationStats, error) {
	if err := validation.RequireDirectory(root); err != nil {
		return nil, fmt.Errorf("(flatten) %w", err)
	}

	conflict, err := resolveConflict(opts.Conflict)
	if err != nil {
		return nil, fmt.Errorf("(flatten) %w", err)
	}

	root = pathing.NormalizePath(root)

	report, err := h.FSOps.Walk(root, opts.MaxDepth)
	if err != nil {
		return nil, fmt.Errorf("(flatten) %w", err)
	}

	stats := &schema.OperationStats{}
	for _, walkErr := range report.Errors {
		stats.Errors = append(stats.Errors, schema.OperationError(walkErr))
	}

	taken := make(map[string]struct{})

	for _, file := range report.Files {
		if ctx.Err() != nil {
			break
		}

		if file.Dir == root {
			continue
		}
		stats.Scanned++

		switch conflict {
		case ConflictRename:
			name := h.resolveCollision(root, file.Name, taken)
			h.flattenMove(ctx, file, filepath.Join(root, name), opts.DryRun, stats)

		case ConflictSkip:
			if h.nameTaken(root, file.Name, taken) {
				stats.Skipped++

				continue
			}
			taken[file.Name] = struct{}{}
			h.flattenMove(ctx, file, filepath.Join(root, file.Name), opts.DryRun, stats)

		case ConflictOverwrite:
			dest := filepath.Join(root, file.Name)
			if !opts.DryRun {
				if err := h.OSOps.Remove(dest); err != nil && !errors.Is(err, fs.ErrNotExist) {
					stats.RecordError(file.Path, err)

					continue
				}
			}
			taken[file.Name] = struct{}{}
			h.flattenMove(ctx, file, dest, opts.DryRun, stats)
		}
	}

	if opts.DeleteEmpty && !opts.DryRun {
		h.FSOps.PruneEmptyDirs(root)
	}

	return stats, nil
}

func (h *Handler) flattenMove(ctx context.Context, file schema.FileRecord, dest string, dryRun bool, stats *schema.OperationStats) {
	if dryRun {
		stats.Moved++
		stats.BytesMoved += file.Size

		return
	}

	if err := h.MoveOps.Move(ctx, file.Path, dest); err != nil {
		slog.Warn("Skipped file: failure during move",
			"path", file.Path,
			"dest", dest,
			"err", err,
		)
		stats.RecordError(file.Path, err)

		return
	}

	stats.Moved++
	stats.BytesMoved += file.Size
}

func resolveConflict(conflict ConflictStrategy) (ConflictStrategy, error) {
	switch conflict {
	case "":
		return ConflictRename, nil
	case ConflictRename, ConflictOverwrite, ConflictSkip:
		return conflict, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownConflict, conflict)
	}
}
