package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidyfs/tidy/internal/schema"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func filePaths(report *schema.WalkReport) []string {
	paths := make([]string, 0, len(report.Files))
	for _, file := range report.Files {
		paths = append(paths, file.Path)
	}

	return paths
}

// TestWalk_Success tests full traversal in deterministic order.
func TestWalk_Success(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a")
	writeFile(t, filepath.Join(root, "sub", "b.txt"), "b")
	writeFile(t, filepath.Join(root, "sub", "deep", "c.txt"), "c")

	handler := NewHandler(&schema.OS{})

	report, err := handler.Walk(root, 0)
	require.NoError(t, err)
	require.Empty(t, report.Errors)

	assert.Equal(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "sub", "b.txt"),
		filepath.Join(root, "sub", "deep", "c.txt"),
	}, filePaths(report))

	record := report.Files[0]
	assert.Equal(t, "a.txt", record.Name)
	assert.Equal(t, "txt", record.Ext)
	assert.Equal(t, int64(1), record.Size)
	assert.Equal(t, filepath.Clean(root), record.Dir)
	assert.False(t, record.ModTime.IsZero())
}

// TestWalk_Success_MaxDepth tests that recursion stops past the depth limit.
func TestWalk_Success_MaxDepth(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a")
	writeFile(t, filepath.Join(root, "sub", "b.txt"), "b")
	writeFile(t, filepath.Join(root, "sub", "deep", "c.txt"), "c")

	handler := NewHandler(&schema.OS{})

	report, err := handler.Walk(root, 1)
	require.NoError(t, err)
	assert.Len(t, report.Files, 1)

	report, err = handler.Walk(root, 2)
	require.NoError(t, err)
	assert.Len(t, report.Files, 2)
}

// TestWalk_Success_SymlinkCycle tests that a symlink pointing back to an
// ancestor terminates traversal without duplicate entries.
func TestWalk_Success_SymlinkCycle(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a")
	writeFile(t, filepath.Join(root, "sub", "b.txt"), "b")

	require.NoError(t, os.Symlink(root, filepath.Join(root, "sub", "loop")))

	handler := NewHandler(&schema.OS{})

	report, err := handler.Walk(root, 0)
	require.NoError(t, err)
	require.Empty(t, report.Errors)

	assert.Len(t, report.Files, 2)
}

// TestWalk_Success_FileSymlink tests that a symlink pointing at a file is
// never recorded as a file; only the target's own entry enters the report.
func TestWalk_Success_FileSymlink(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	target := filepath.Join(root, "real.txt")
	writeFile(t, target, "real content")

	require.NoError(t, os.Symlink(target, filepath.Join(root, "link.txt")))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.Symlink(target, filepath.Join(root, "sub", "link.txt")))

	handler := NewHandler(&schema.OS{})

	report, err := handler.Walk(root, 0)
	require.NoError(t, err)
	require.Empty(t, report.Errors)

	assert.Equal(t, []string{target}, filePaths(report))
}

// TestWalk_Success_BrokenSymlink tests that a broken symlink is recorded as
// a per-entry error while traversal continues.
func TestWalk_Success_BrokenSymlink(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a")

	require.NoError(t, os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "dangling")))

	handler := NewHandler(&schema.OS{})

	report, err := handler.Walk(root, 0)
	require.NoError(t, err)

	assert.Len(t, report.Files, 1)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, filepath.Join(root, "dangling"), report.Errors[0].Path)
}

// TestWalk_Error_MissingRoot tests the fatal tier for an unresolvable root.
func TestWalk_Error_MissingRoot(t *testing.T) {
	t.Parallel()

	handler := NewHandler(&schema.OS{})

	_, err := handler.Walk(filepath.Join(t.TempDir(), "missing"), 0)
	require.Error(t, err)
}
