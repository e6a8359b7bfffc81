// Package dedupe implements content-based duplicate detection and removal:
// files are bucketed by size, same-size groups are digested, and all but
// one canonical member of each digest group are deleted.
package dedupe

import (
	"context"
	"fmt"
	"os"

	"github.com/tidyfs/tidy/internal/pathing"
	"github.com/tidyfs/tidy/internal/schema"
	"github.com/tidyfs/tidy/internal/validation"
)

type fsProvider interface {
	Walk(root string, maxDepth int) (*schema.WalkReport, error)
	PruneEmptyDirs(root string) []string
}

type osProvider interface {
	Open(name string) (*os.File, error)
	Remove(name string) error
}

// Observer receives per-group and per-error notifications while a dedupe
// run progresses. Implementations must not alter control flow.
type Observer interface {
	OnDuplicateFound(group Group)
	OnError(path string, err error)
}

// Options configure a single dedupe run.
type Options struct {
	// Strategy selects the canonical member of each duplicate group. An
	// empty strategy defaults to [StrategyFirst], or [StrategyCanonical]
	// when CanonicalPath is set.
	Strategy Strategy

	// CanonicalPath is the path prefix preferred by [StrategyCanonical].
	CanonicalPath string

	// IgnorePatterns excludes matching files from consideration.
	IgnorePatterns []string

	// DryRun computes and reports the full plan without deleting anything.
	DryRun bool

	// DeleteEmpty prunes now-empty directories after deletion.
	DeleteEmpty bool

	// Observer, when set, is notified of every duplicate group and error.
	Observer Observer
}

// Handler is the principal implementation of the deduplicator.
type Handler struct {
	FSOps fsProvider
	OSOps osProvider
}

// NewHandler returns a pointer to a new dedupe [Handler].
func NewHandler(fsOps fsProvider, osOps osProvider) *Handler {
	return &Handler{
		FSOps: fsOps,
		OSOps: osOps,
	}
}

// Dedupe walks root, groups identical files by content and deletes all
// non-canonical members of each duplicate group. Per-file failures are
// recorded in the result and never abort the run; only an invalid root,
// an unknown strategy or a failed walk are fatal.
func (d *Handler) Dedupe(ctx context.Context, root string, opts Options) (*Result, error) {
	if err := validation.RequireDirectory(root); err != nil {
		return nil, fmt.Errorf("(dedupe) %w", err)
	}

	strategy, err := resolveStrategy(opts)
	if err != nil {
		return nil, fmt.Errorf("(dedupe) %w", err)
	}

	report, err := d.FSOps.Walk(root, 0)
	if err != nil {
		return nil, fmt.Errorf("(dedupe) %w", err)
	}

	result := &Result{ScannedFiles: len(report.Files)}
	for _, walkErr := range report.Errors {
		result.recordError(walkErr.Path, walkErr.Message, opts.Observer)
	}

	candidates := make([]schema.FileRecord, 0, len(report.Files))
	for _, file := range report.Files {
		if pathing.MatchAny(opts.IgnorePatterns, file.Path) {
			continue
		}
		candidates = append(candidates, file)
	}

	for _, group := range d.groupByContent(ctx, candidates, result, opts.Observer) {
		canonical := selectCanonical(group, strategy, opts.CanonicalPath)

		d.processGroup(group, canonical, opts, result)

		if ctx.Err() != nil {
			break
		}
	}

	if opts.DeleteEmpty && !opts.DryRun {
		d.FSOps.PruneEmptyDirs(root)
	}

	return result, nil
}

// processGroup deletes (or, on a dry run, only accounts for) all
// non-canonical members of one duplicate group.
func (d *Handler) processGroup(group hashGroup, canonical int, opts Options, result *Result) {
	detail := Group{
		Hash:      group.hash,
		Canonical: group.files[canonical],
	}

	for idx, file := range group.files {
		if idx == canonical {
			continue
		}
		detail.Duplicates = append(detail.Duplicates, file)
		detail.BytesReclaimable += file.Size
	}

	if opts.Observer != nil {
		opts.Observer.OnDuplicateFound(detail)
	}

	for _, file := range detail.Duplicates {
		if !opts.DryRun {
			if err := d.OSOps.Remove(file.Path); err != nil {
				result.recordError(file.Path, err.Error(), opts.Observer)

				continue
			}
		}

		result.FilesDeleted++
		result.SpaceSaved += file.Size
	}

	result.Groups = append(result.Groups, detail)
}
