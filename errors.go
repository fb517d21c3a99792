// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package floors

import (
	"errors"
	"fmt"
)

// ErrSourceUnavailable is returned when the input cannot be opened or read.
type ErrSourceUnavailable struct {
	Op   string // open, read, close
	Path string
	Err  error
}

func (e *ErrSourceUnavailable) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ErrSourceUnavailable) Unwrap() error {
	return e.Err
}

// Error code constants for reporting.
const (
	ErrCodeSourceUnavailable = "SOURCE_UNAVAILABLE"
	ErrCodeUnknown           = "UNKNOWN"
)

// ErrorCode returns the error code string for a given error.
// Wrapped errors are unwrapped until a known type is found.
func ErrorCode(err error) string {
	var srcErr *ErrSourceUnavailable
	if errors.As(err, &srcErr) {
		return ErrCodeSourceUnavailable
	}
	return ErrCodeUnknown
}
