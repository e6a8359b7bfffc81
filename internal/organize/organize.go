// Package organize implements the higher-level operations of the engine:
// arranging by category, flattening nested trees, archiving stale files and
// scanning for empty or oversized files. Each operation walks, plans and
// then moves sequentially, accumulating statistics and per-file errors.
package organize

import (
	"context"
	"os"

	"github.com/tidyfs/tidy/internal/schema"
)

type fsProvider interface {
	Walk(root string, maxDepth int) (*schema.WalkReport, error)
	PruneEmptyDirs(root string) []string
}

type moveProvider interface {
	Move(ctx context.Context, src, dst string) error
}

type osProvider interface {
	ReadDir(name string) ([]os.DirEntry, error)
	Stat(name string) (os.FileInfo, error)
	Remove(name string) error
	MkdirAll(path string, perm os.FileMode) error
}

// Handler is the principal implementation of the organizing operations.
type Handler struct {
	FSOps   fsProvider
	MoveOps moveProvider
	OSOps   osProvider
}

// NewHandler returns a pointer to a new organize [Handler].
func NewHandler(fsOps fsProvider, moveOps moveProvider, osOps osProvider) *Handler {
	return &Handler{
		FSOps:   fsOps,
		MoveOps: moveOps,
		OSOps:   osOps,
	}
}
