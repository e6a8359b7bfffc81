// Package schema defines the shared data model of the organizing engine,
// as well as implementations of the operating system call providers.
package schema

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileRecord describes a single regular file discovered during a walk.
// It is immutable once produced and owned by the requesting operation.
type FileRecord struct {
	// Path is the full, normalized path of the file.
	Path string

	// Name is the base name of the file.
	Name string

	// Ext is the file's extension, lowercased and without the dot.
	Ext string

	// Size is the file size in bytes.
	Size int64

	// Dir is the directory containing the file.
	Dir string

	// ModTime is the file's last modification time.
	ModTime time.Time
}

// NewFileRecord returns a [FileRecord] for a file in dir, as described by
// the given [os.FileInfo].
func NewFileRecord(dir string, info os.FileInfo) FileRecord {
	name := info.Name()

	return FileRecord{
		Path:    filepath.Join(dir, name),
		Name:    name,
		Ext:     strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")),
		Size:    info.Size(),
		Dir:     dir,
		ModTime: info.ModTime(),
	}
}

// WalkError is a non-fatal, per-entry failure encountered during a walk.
type WalkError struct {
	Path    string
	Message string
}

// WalkReport is the accumulated outcome of one directory walk. Files appear
// in traversal order; per-entry failures are collected, never raised.
type WalkReport struct {
	Files  []FileRecord
	Errors []WalkError
}

// MovePlan is a single planned relocation of a file. It is ephemeral,
// computed per operation and discarded after execution.
type MovePlan struct {
	Source   FileRecord
	DestDir  string
	DestPath string
}

// MoveObserver receives a notification after every planned file of an
// operation, regardless of the outcome. Implementations must not alter
// control flow; they exist for progress reporting only.
type MoveObserver interface {
	OnMove(plan MovePlan, stats OperationStats)
}
