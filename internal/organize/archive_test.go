package organize

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ageFile(t *testing.T, path string, age time.Duration) {
	t.Helper()

	past := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, past, past))
}

// TestArchive_Success tests moving only stale files into a flat archive
// directory.
func TestArchive_Success(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	dest := filepath.Join(t.TempDir(), "archive")
	writeFile(t, filepath.Join(root, "old.txt"), "stale")
	writeFile(t, filepath.Join(root, "sub", "older.txt"), "very stale")
	writeFile(t, filepath.Join(root, "fresh.txt"), "recent")

	ageFile(t, filepath.Join(root, "old.txt"), 72*time.Hour)
	ageFile(t, filepath.Join(root, "sub", "older.txt"), 240*time.Hour)

	handler := newTestHandler()

	result, err := handler.Archive(context.Background(), root, ArchiveOptions{
		Dest:          dest,
		OlderThanDays: 2,
	})
	require.NoError(t, err)
	require.Empty(t, result.Errors)

	assert.Equal(t, 2, result.Scanned)
	assert.Equal(t, 2, result.Archived)

	assert.FileExists(t, filepath.Join(dest, "old.txt"))
	assert.FileExists(t, filepath.Join(dest, "older.txt"))
	assert.FileExists(t, filepath.Join(root, "fresh.txt"))
	assert.NoFileExists(t, filepath.Join(root, "old.txt"))
}

// TestArchive_Success_Collision tests numeric disambiguation when stale
// files from different directories share a name.
func TestArchive_Success_Collision(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	dest := filepath.Join(t.TempDir(), "archive")
	writeFile(t, filepath.Join(root, "report.pdf"), "q1")
	writeFile(t, filepath.Join(root, "sub", "report.pdf"), "q2")

	ageFile(t, filepath.Join(root, "report.pdf"), 240*time.Hour)
	ageFile(t, filepath.Join(root, "sub", "report.pdf"), 240*time.Hour)

	handler := newTestHandler()

	result, err := handler.Archive(context.Background(), root, ArchiveOptions{
		Dest:          dest,
		OlderThanDays: 7,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Archived)
	assert.FileExists(t, filepath.Join(dest, "report.pdf"))
	assert.FileExists(t, filepath.Join(dest, "report-(2).pdf"))
}

// TestArchive_Success_DryRun tests that a dry run neither moves files nor
// creates the destination.
func TestArchive_Success_DryRun(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	dest := filepath.Join(t.TempDir(), "archive")
	writeFile(t, filepath.Join(root, "old.txt"), "stale")
	ageFile(t, filepath.Join(root, "old.txt"), 240*time.Hour)

	handler := newTestHandler()

	result, err := handler.Archive(context.Background(), root, ArchiveOptions{
		Dest:          dest,
		OlderThanDays: 7,
		DryRun:        true,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Archived)
	assert.FileExists(t, filepath.Join(root, "old.txt"))
	assert.NoDirExists(t, dest)
}

// TestArchive_Error_Validation tests the fatal preconditions.
func TestArchive_Error_Validation(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	handler := newTestHandler()

	_, err := handler.Archive(context.Background(), root, ArchiveOptions{
		OlderThanDays: 7,
	})
	require.Error(t, err)

	_, err = handler.Archive(context.Background(), root, ArchiveOptions{
		Dest: filepath.Join(root, "archive"),
	})
	require.Error(t, err)

	_, err = handler.Archive(context.Background(), filepath.Join(root, "missing"), ArchiveOptions{
		Dest:          filepath.Join(root, "archive"),
		OlderThanDays: 7,
	})
	require.Error(t, err)
}
