// Package pathing provides pure path normalization helpers and the wildcard
// pattern matcher used for ignore filtering. It performs no I/O.
package pathing

import (
	"path/filepath"
	"strings"
)

// NormalizePath canonicalizes a path's separators and removes redundant
// elements. It does not resolve symlinks and performs no I/O.
func NormalizePath(path string) string {
	return filepath.Clean(filepath.FromSlash(path))
}

// NormalizeExt returns the extension of a file name, lowercased and without
// the leading dot. A name without extension yields an empty string.
func NormalizeExt(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// NormalizeRuleExt canonicalizes an extension as written in a rule set:
// lowercased, surrounding whitespace and any leading dot removed.
func NormalizeRuleExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
