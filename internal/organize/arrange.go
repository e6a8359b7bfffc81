package organize

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/tidyfs/tidy/internal/pathing"
	"github.com/tidyfs/tidy/internal/rules"
	"github.com/tidyfs/tidy/internal/schema"
	"github.com/tidyfs/tidy/internal/validation"
)

// ArrangeOptions configure a single arrange run.
type ArrangeOptions struct {
	// UserRules are merged over the system defaults with override-wins
	// semantics; nil means plain defaults.
	UserRules rules.CategoryRules

	// DryRun computes and reports the full plan without moving anything.
	DryRun bool

	// Observer, when set, fires after every planned file regardless of
	// outcome, receiving the plan and a snapshot of the running stats.
	Observer schema.MoveObserver
}

// Arrange classifies the files of the immediate directory into category
// folders. Directories themselves are skipped, never descended. A file
// already at its routed destination counts as skipped, which makes the
// operation idempotent.
func (h *Handler) Arrange(ctx context.Context, dir string, opts ArrangeOptions) (*schema.OperationStats, error) {
	if err := validation.RequireDirectory(dir); err != nil {
		return nil, fmt.Errorf("(arrange) %w", err)
	}

	router, err := rules.NewRouter(rules.Resolve(opts.UserRules))
	if err != nil {
		return nil, fmt.Errorf("(arrange) %w", err)
	}

	dir = pathing.NormalizePath(dir)

	entries, err := h.OSOps.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("(arrange) failed to read directory %s: %w", dir, err)
	}

	stats := &schema.OperationStats{}

	for _, entry := range entries {
		if ctx.Err() != nil {
			break
		}

		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			stats.RecordError(filepath.Join(dir, entry.Name()), err)

			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}

		file := schema.NewFileRecord(dir, info)
		plan := router.Route(file, dir)
		stats.Scanned++

		switch {
		case plan.DestPath == file.Path:
			stats.Skipped++

		case opts.DryRun:
			stats.Moved++
			stats.BytesMoved += file.Size

		default:
			if err := h.MoveOps.Move(ctx, file.Path, plan.DestPath); err != nil {
				slog.Warn("Skipped file: failure during move",
					"path", file.Path,
					"dest", plan.DestPath,
					"err", err,
				)
				stats.RecordError(file.Path, err)
			} else {
				stats.Moved++
				stats.BytesMoved += file.Size
			}
		}

		if opts.Observer != nil {
			opts.Observer.OnMove(plan, *stats)
		}
	}

	return stats, nil
}
