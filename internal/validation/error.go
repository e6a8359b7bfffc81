package validation

import "errors"

var (
	// ErrNotADirectory occurs when a given root path does not exist or is
	// not a directory.
	ErrNotADirectory = errors.New("path does not exist or is not a directory")

	// ErrNotPositive occurs when a required numeric setting is zero or
	// negative.
	ErrNotPositive = errors.New("value must be positive")

	// ErrEmptyValue occurs when a required string setting is empty.
	ErrEmptyValue = errors.New("value must not be empty")
)
