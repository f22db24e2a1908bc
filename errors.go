package astcql

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument matches every InvalidArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMixedCounter is wrapped when counter and non-counter statements meet in one batch.
	ErrMixedCounter = errors.New("cannot mix counter and non-counter operations in a batch")

	// ErrBindMarkerMismatch matches every BindMarkerMismatchError.
	ErrBindMarkerMismatch = errors.New("bind marker mismatch")
)

// InvalidArgumentError indicates a rejected statement, clause or identifier.
type InvalidArgumentError struct {
	Err    error
	Reason string
}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Reason)
}

// Is reports whether target is ErrInvalidArgument.
func (InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func (e InvalidArgumentError) Unwrap() error {
	return e.Err
}

// NewInvalidArgumentError creates an invalid argument error with the given reason.
func NewInvalidArgumentError(reason string) error {
	return InvalidArgumentError{Reason: reason}
}

// BindMarkerMismatchError indicates that the bound values cannot cover the
// markers implied by the batch.
type BindMarkerMismatchError struct {
	Expected int
	Got      int
}

func (e BindMarkerMismatchError) Error() string {
	return fmt.Sprintf("bind marker mismatch: %d markers, %d bound values", e.Expected, e.Got)
}

// Is reports whether target is ErrBindMarkerMismatch.
func (BindMarkerMismatchError) Is(target error) bool {
	return target == ErrBindMarkerMismatch
}

var errMixedCounter = InvalidArgumentError{Err: ErrMixedCounter, Reason: ErrMixedCounter.Error()}
