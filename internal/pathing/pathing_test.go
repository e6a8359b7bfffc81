package pathing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNormalizeExt_Success tests extension extraction and lowercasing.
func TestNormalizeExt_Success(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "jpg", NormalizeExt("photo.JPG"))
	assert.Equal(t, "gz", NormalizeExt("backup.tar.gz"))
	assert.Equal(t, "", NormalizeExt("Makefile"))
	assert.Equal(t, "txt", NormalizeExt("notes.txt"))
}

// TestNormalizeRuleExt_Success tests rule extension canonicalization.
func TestNormalizeRuleExt_Success(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "jpg", NormalizeRuleExt(" .JPG "))
	assert.Equal(t, "png", NormalizeRuleExt("png"))
	assert.Equal(t, "", NormalizeRuleExt("  "))
}

// TestNormalizePath_Success tests path cleanup.
func TestNormalizePath_Success(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/data/docs", NormalizePath("/data//docs/"))
	assert.Equal(t, "/data", NormalizePath("/data/docs/.."))
}
