// Package validation implements the fatal-tier precondition checks shared
// by all operations; nothing is attempted when any of these fail.
package validation

import (
	"fmt"
	"os"
)

// RequireDirectory fails unless path exists and is a directory.
func RequireDirectory(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("(validation) %w: %s: %w", ErrNotADirectory, path, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("(validation) %w: %s", ErrNotADirectory, path)
	}

	return nil
}

// RequirePositive fails unless value is greater than zero.
func RequirePositive(name string, value int64) error {
	if value <= 0 {
		return fmt.Errorf("(validation) %w: %s = %d", ErrNotPositive, name, value)
	}

	return nil
}

// RequireNonEmpty fails on an empty string value.
func RequireNonEmpty(name, value string) error {
	if value == "" {
		return fmt.Errorf("(validation) %w: %s", ErrEmptyValue, name)
	}

	return nil
}
