package dedupe

import "errors"

var (
	// ErrUnknownStrategy is an error that occurs when an unrecognized
	// canonical-selection strategy is requested.
	ErrUnknownStrategy = errors.New("unknown canonical-selection strategy")
)
