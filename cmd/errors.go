package cmd

import (
	"fmt"

	sharedErrors "github.com/khanhnv2901/pqcheck/internal/shared/errors"
)

// TargetError reports a domain argument that could not be parsed.
type TargetError struct {
	Target string
	Err    error
}

func (e *TargetError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("invalid target: %v", e.Err)
	}
	return fmt.Sprintf("invalid target %q: %v", e.Target, e.Err)
}

func (e *TargetError) Unwrap() error { return e.Err }

// FormatError signals an unknown --format value.
type FormatError struct {
	Format string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s %q (use text, json or yaml)", sharedErrors.ErrUnsupportedFormat, e.Format)
}

func (e *FormatError) Unwrap() error { return sharedErrors.ErrUnsupportedFormat }
