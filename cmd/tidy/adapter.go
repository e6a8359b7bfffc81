package main

import (
	"log/slog"

	"github.com/tidyfs/tidy/internal/dedupe"
	"github.com/tidyfs/tidy/internal/schema"
	"github.com/tidyfs/tidy/internal/ui"
)

type progressPublisher interface {
	Publish(progress ui.Progress)
}

// moveTracker adapts the engine's move observer events into [ui.Progress]
// snapshots; without a publisher it stays silent, the engine logs on its
// own.
type moveTracker struct {
	publisher progressPublisher
	operation string

	processed int
}

func newMoveTracker(publisher progressPublisher, operation string) *moveTracker {
	return &moveTracker{
		publisher: publisher,
		operation: operation,
	}
}

func (t *moveTracker) OnMove(plan schema.MovePlan, stats schema.OperationStats) {
	t.processed++

	if t.publisher == nil {
		return
	}

	t.publisher.Publish(ui.Progress{
		Operation: t.operation,
		Current:   plan.Source.Path,
		Processed: t.processed,
		Total:     stats.Scanned + len(stats.Errors),
		Moved:     stats.Moved,
		Skipped:   stats.Skipped,
		Errors:    len(stats.Errors),
		Bytes:     stats.BytesMoved,
	})
}

// finish publishes the terminal snapshot of the operation, flipping the
// interface into its finished state.
func (t *moveTracker) finish(stats schema.OperationStats) {
	if t.publisher == nil {
		return
	}

	t.publisher.Publish(ui.Progress{
		Operation: t.operation,
		Processed: t.processed,
		Total:     stats.Scanned + len(stats.Errors),
		Moved:     stats.Moved,
		Skipped:   stats.Skipped,
		Errors:    len(stats.Errors),
		Bytes:     stats.BytesMoved,
		Finished:  true,
	})
}

// dedupeTracker adapts the dedupe observer events for the UI and logs
// every found duplicate group.
type dedupeTracker struct {
	publisher progressPublisher

	groups  int
	deleted int
	bytes   int64
	errors  int
}

func newDedupeTracker(publisher progressPublisher) *dedupeTracker {
	return &dedupeTracker{
		publisher: publisher,
	}
}

func (t *dedupeTracker) OnDuplicateFound(group dedupe.Group) {
	t.groups++
	t.deleted += len(group.Duplicates)
	t.bytes += group.BytesReclaimable

	slog.Info("Duplicate group found:",
		"hash", group.Hash,
		"canonical", group.Canonical.Path,
		"duplicates", len(group.Duplicates),
	)

	if t.publisher == nil {
		return
	}

	t.publisher.Publish(ui.Progress{
		Operation: "Dedupe",
		Current:   group.Canonical.Path,
		Processed: t.groups,
		Moved:     t.deleted,
		Errors:    t.errors,
		Bytes:     t.bytes,
	})
}

func (t *dedupeTracker) OnError(path string, err error) {
	t.errors++

	if t.publisher == nil {
		return
	}

	t.publisher.Publish(ui.Progress{
		Operation: "Dedupe",
		Current:   path,
		Processed: t.groups,
		Moved:     t.deleted,
		Errors:    t.errors,
		Bytes:     t.bytes,
	})
}

// finish publishes the terminal snapshot of the dedupe run.
func (t *dedupeTracker) finish() {
	if t.publisher == nil {
		return
	}

	t.publisher.Publish(ui.Progress{
		Operation: "Dedupe",
		Processed: t.groups,
		Moved:     t.deleted,
		Errors:    t.errors,
		Bytes:     t.bytes,
		Finished:  true,
	})
}
