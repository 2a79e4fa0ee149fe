package models

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates a requested ticker has no matching holding.
var ErrNotFound = errors.New("holding not found")

// ErrInvalidArgument indicates malformed input rejected before computation.
var ErrInvalidArgument = errors.New("invalid argument")

// NotFoundError wraps ErrNotFound with the missing ticker so callers can
// report exactly what was requested.
func NotFoundError(ticker string) error {
	return fmt.Errorf("no holding with ticker %q: %w", ticker, ErrNotFound)
}

// InvalidArgumentError wraps ErrInvalidArgument with a reason.
func InvalidArgumentError(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrInvalidArgument)
}
