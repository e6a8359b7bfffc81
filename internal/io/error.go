package io

import "errors"

var (
	// ErrDestinationExists is an error that occurs when the move destination
	// already exists; the mover never silently overwrites, naming conflicts
	// must be resolved by the caller beforehand.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrHashMismatch is an error that occurs on a source/destination hash
	// mismatch after a copy, which usually means underlying transfer or
	// hardware issues.
	ErrHashMismatch = errors.New("hash mismatch")

	// ErrRenameExists is an error that occurs when the intermediate file is
	// to be renamed to its final filename, but that final filename has
	// appeared on the destination in the meantime.
	ErrRenameExists = errors.New("rename destination already exists")
)
