package rules

import "errors"

var (
	// ErrDuplicateExtension is an error that occurs when the same extension
	// is assigned to more than one category in a resolved rule set.
	ErrDuplicateExtension = errors.New("extension assigned to multiple categories")
)
