// Package io implements the atomic, cross-device-safe file mover used by
// all mutating operations of the organizing engine.
package io

import (
	"os"

	"golang.org/x/sys/unix"
)

type osProvider interface {
	Open(name string) (*os.File, error)
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
	Stat(name string) (os.FileInfo, error)
	Remove(name string) error
	Rename(oldpath, newpath string) error
	MkdirAll(path string, perm os.FileMode) error
}

type unixProvider interface {
	UtimesNano(path string, times []unix.Timespec) error
}

// Handler is the principal implementation of the file mover.
type Handler struct {
	OSOps   osProvider
	UnixOps unixProvider
}

// NewHandler returns a pointer to a new mover [Handler].
func NewHandler(osOps osProvider, unixOps unixProvider) *Handler {
	return &Handler{
		OSOps:   osOps,
		UnixOps: unixOps,
	}
}
