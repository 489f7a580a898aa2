package xerrors

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a failure caused by a missing resource.
var ErrNotFound = errors.New("resource not found")

// Wrapf prefixes err with a formatted message, keeping it matchable with Is.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is allows checking whether an error is a specific sentinel error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
