package schema

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// OperationError is a non-fatal, per-file failure recorded while an
// operation processed its plan.
type OperationError struct {
	Path    string
	Message string
}

// OperationStats is the accumulated report of one mutating operation. It is
// built incrementally while the operation runs and returned to the caller
// once the operation has run to completion.
type OperationStats struct {
	Scanned    int
	Moved      int
	Skipped    int
	BytesMoved int64
	Errors     []OperationError
}

// RecordError appends a per-file failure to the stats.
func (s *OperationStats) RecordError(path string, err error) {
	s.Errors = append(s.Errors, OperationError{Path: path, Message: err.Error()})
}

func (s *OperationStats) String() string {
	return fmt.Sprintf("scanned: %d, moved: %d, skipped: %d, errors: %d (%s)",
		s.Scanned, s.Moved, s.Skipped, len(s.Errors), humanize.Bytes(uint64(s.BytesMoved)))
}
