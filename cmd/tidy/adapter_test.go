package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidyfs/tidy/internal/dedupe"
	"github.com/tidyfs/tidy/internal/schema"
	"github.com/tidyfs/tidy/internal/ui"
)

// fakePublisher is a fake implementation of progressPublisher. It collects
// all published snapshots.
type fakePublisher struct {
	snapshots []ui.Progress
}

func (fp *fakePublisher) Publish(progress ui.Progress) {
	fp.snapshots = append(fp.snapshots, progress)
}

// TestMoveTracker_Success tests that per-file events publish running
// snapshots and that finish publishes exactly one terminal snapshot.
func TestMoveTracker_Success(t *testing.T) {
	t.Parallel()

	fp := &fakePublisher{}
	tracker := newMoveTracker(fp, "Arrange")

	plan := schema.MovePlan{Source: schema.FileRecord{Path: "/data/a.txt", Size: 4}}
	stats := schema.OperationStats{Scanned: 1, Moved: 1, BytesMoved: 4}

	tracker.OnMove(plan, stats)
	tracker.finish(stats)

	require.Len(t, fp.snapshots, 2)

	assert.Equal(t, "/data/a.txt", fp.snapshots[0].Current)
	assert.False(t, fp.snapshots[0].Finished)

	assert.True(t, fp.snapshots[1].Finished)
	assert.Equal(t, 1, fp.snapshots[1].Moved)
	assert.Equal(t, int64(4), fp.snapshots[1].Bytes)
}

// TestMoveTracker_Success_NoPublisher tests that the tracker stays silent
// without a publisher.
func TestMoveTracker_Success_NoPublisher(t *testing.T) {
	t.Parallel()

	tracker := newMoveTracker(nil, "Arrange")

	tracker.OnMove(schema.MovePlan{}, schema.OperationStats{})
	tracker.finish(schema.OperationStats{})

	assert.Equal(t, 1, tracker.processed)
}

// TestDedupeTracker_Success tests accumulation across group and error
// events plus the terminal snapshot.
func TestDedupeTracker_Success(t *testing.T) {
	t.Parallel()

	fp := &fakePublisher{}
	tracker := newDedupeTracker(fp)

	tracker.OnDuplicateFound(dedupe.Group{
		Hash:             "abc",
		Canonical:        schema.FileRecord{Path: "/data/keep.txt"},
		Duplicates:       []schema.FileRecord{{Path: "/data/dup.txt", Size: 8}},
		BytesReclaimable: 8,
	})
	tracker.OnError("/data/bad.txt", assert.AnError)
	tracker.finish()

	require.Len(t, fp.snapshots, 3)

	assert.Equal(t, "/data/keep.txt", fp.snapshots[0].Current)
	assert.Equal(t, 1, fp.snapshots[1].Errors)

	final := fp.snapshots[2]
	assert.True(t, final.Finished)
	assert.Equal(t, 1, final.Processed)
	assert.Equal(t, 1, final.Moved)
	assert.Equal(t, int64(8), final.Bytes)
}
