package organize

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFlatten_Success tests moving nested files to the root with numeric
// disambiguation on name collisions.
func TestFlatten_Success(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "root copy")
	writeFile(t, filepath.Join(root, "sub", "a.txt"), "nested copy")
	writeFile(t, filepath.Join(root, "sub", "deep", "a.txt"), "deeper copy")
	writeFile(t, filepath.Join(root, "sub", "b.txt"), "unique")

	handler := newTestHandler()

	stats, err := handler.Flatten(context.Background(), root, FlattenOptions{})
	require.NoError(t, err)
	require.Empty(t, stats.Errors)

	assert.Equal(t, 3, stats.Scanned)
	assert.Equal(t, 3, stats.Moved)

	content, err := os.ReadFile(filepath.Join(root, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "root copy", string(content))

	assert.FileExists(t, filepath.Join(root, "a-(2).txt"))
	assert.FileExists(t, filepath.Join(root, "a-(3).txt"))
	assert.FileExists(t, filepath.Join(root, "b.txt"))
}

// TestFlatten_Success_NoNesting tests the no-op on an already flat tree.
func TestFlatten_Success_NoNesting(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "flat")

	handler := newTestHandler()

	stats, err := handler.Flatten(context.Background(), root, FlattenOptions{})
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Scanned)
	assert.Equal(t, 0, stats.Moved)
	assert.FileExists(t, filepath.Join(root, "a.txt"))
}

// TestFlatten_Success_SkipConflict tests that colliding files stay in place
// under the skip strategy.
func TestFlatten_Success_SkipConflict(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "root copy")
	writeFile(t, filepath.Join(root, "sub", "a.txt"), "nested copy")
	writeFile(t, filepath.Join(root, "sub", "b.txt"), "unique")

	handler := newTestHandler()

	stats, err := handler.Flatten(context.Background(), root, FlattenOptions{Conflict: ConflictSkip})
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Moved)
	assert.Equal(t, 1, stats.Skipped)

	assert.FileExists(t, filepath.Join(root, "sub", "a.txt"))
	assert.FileExists(t, filepath.Join(root, "b.txt"))
}

// TestFlatten_Success_OverwriteConflict tests that the nested file replaces
// the root file under the overwrite strategy.
func TestFlatten_Success_OverwriteConflict(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "root copy")
	writeFile(t, filepath.Join(root, "sub", "a.txt"), "nested copy")

	handler := newTestHandler()

	stats, err := handler.Flatten(context.Background(), root, FlattenOptions{Conflict: ConflictOverwrite})
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Moved)

	content, err := os.ReadFile(filepath.Join(root, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "nested copy", string(content))
	assert.NoFileExists(t, filepath.Join(root, "sub", "a.txt"))
}

// TestFlatten_Success_DeleteEmpty tests pruning of emptied directories with
// the root itself protected.
func TestFlatten_Success_DeleteEmpty(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sub", "deep", "a.txt"), "nested")

	handler := newTestHandler()

	_, err := handler.Flatten(context.Background(), root, FlattenOptions{DeleteEmpty: true})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(root, "a.txt"))
	assert.NoDirExists(t, filepath.Join(root, "sub"))
	assert.DirExists(t, root)
}

// TestFlatten_Success_DryRun tests that a dry run plans without moving.
func TestFlatten_Success_DryRun(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sub", "a.txt"), "nested")

	handler := newTestHandler()

	stats, err := handler.Flatten(context.Background(), root, FlattenOptions{DryRun: true, DeleteEmpty: true})
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Moved)
	assert.FileExists(t, filepath.Join(root, "sub", "a.txt"))
	assert.NoFileExists(t, filepath.Join(root, "a.txt"))
}

// TestFlatten_Error_UnknownConflict tests the fatal tier for a conflict
// strategy typo.
func TestFlatten_Error_UnknownConflict(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()

	_, err := handler.Flatten(context.Background(), t.TempDir(), FlattenOptions{Conflict: "replace"})
	require.ErrorIs(t, err, ErrUnknownConflict)
}
