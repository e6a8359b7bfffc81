// Package filesystem implements the directory traversal and empty-directory
// cleanup primitives that every higher-level operation builds upon.
package filesystem

import (
	"fmt"
	"os"
)

type osProvider interface {
	ReadDir(name string) ([]os.DirEntry, error)
	Stat(name string) (os.FileInfo, error)
	Lstat(name string) (os.FileInfo, error)
	Remove(name string) error
}

// Handler is the principal implementation of the filesystem services.
type Handler struct {
	OSOps osProvider
}

// NewHandler returns a pointer to a new filesystem [Handler].
func NewHandler(osOps osProvider) *Handler {
	return &Handler{
		OSOps: osOps,
	}
}

// IsEmptyDir reports whether the directory at path contains no entries.
func (f *Handler) IsEmptyDir(path string) (bool, error) {
	entries, err := f.OSOps.ReadDir(path)
	if err != nil {
		return false, fmt.Errorf("(fs) failed to readdir: %w", err)
	}

	return len(entries) == 0, nil
}
