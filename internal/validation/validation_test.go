package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRequireDirectory tests the directory precondition in all three
// outcomes.
func TestRequireDirectory(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	require.NoError(t, RequireDirectory(root))

	err := RequireDirectory(filepath.Join(root, "missing"))
	require.ErrorIs(t, err, ErrNotADirectory)

	file := filepath.Join(root, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	err = RequireDirectory(file)
	require.ErrorIs(t, err, ErrNotADirectory)
}

// TestRequirePositive tests the positive-value precondition.
func TestRequirePositive(t *testing.T) {
	t.Parallel()

	require.NoError(t, RequirePositive("days", 1))
	require.ErrorIs(t, RequirePositive("days", 0), ErrNotPositive)
	require.ErrorIs(t, RequirePositive("days", -7), ErrNotPositive)
}

// TestRequireNonEmpty tests the non-empty string precondition.
func TestRequireNonEmpty(t *testing.T) {
	t.Parallel()

	require.NoError(t, RequireNonEmpty("dest", "/archive"))
	require.ErrorIs(t, RequireNonEmpty("dest", ""), ErrEmptyValue)
}
