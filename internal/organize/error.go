package organize

import "errors"

var (
	// ErrUnknownConflict is an error that occurs when an unrecognized
	// flatten conflict strategy is requested.
	ErrUnknownConflict = errors.New("unknown conflict strategy")
)
