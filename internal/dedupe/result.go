package dedupe

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/tidyfs/tidy/internal/schema"
)

// Group is the full detail of one duplicate group: files sharing a content
// hash, of which exactly one canonical member is retained.
type Group struct {
	Hash             string
	Canonical        schema.FileRecord
	Duplicates       []schema.FileRecord
	BytesReclaimable int64
}

// Result is the aggregated report of one dedupe run. On a dry run,
// FilesDeleted and SpaceSaved report what would have happened.
type Result struct {
	ScannedFiles int
	Groups       []Group
	FilesDeleted int
	SpaceSaved   int64
	Errors       []schema.OperationError
}

func (r *Result) recordError(path, message string, observer Observer) {
	r.Errors = append(r.Errors, schema.OperationError{Path: path, Message: message})

	if observer != nil {
		observer.OnError(path, fmt.Errorf("%s", message))
	}
}

func (r *Result) String() string {
	return fmt.Sprintf("scanned: %d, duplicate groups: %d, deleted: %d, reclaimed: %s, errors: %d",
		r.ScannedFiles, len(r.Groups), r.FilesDeleted, humanize.Bytes(uint64(r.SpaceSaved)), len(r.Errors))
}
