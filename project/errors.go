package project

import (
	"errors"
	"fmt"
)

var (
	ErrMissingFeedRate  = errors.New("arm speed is 0 and no feed rate (F) has been set")
	ErrInvalidFeedRate  = errors.New("feed rate (F) is not a usable speed")
	ErrNilSettings      = errors.New("settings are required")
	ErrCoordinateArity  = errors.New("coordinate must have exactly 3 values")
	ErrNegativeValue    = errors.New("value must not be negative")
	ErrDispatcherClosed = errors.New("dispatcher is closed")
)

// InvalidNumberError reports a coordinate token that is not a finite number.
type InvalidNumberError struct {
	Value string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("enter a valid number: '%s' cannot be converted to a number", e.Value)
}

// InvalidNameError reports an identifier with characters outside letters,
// digits and underscore.
type InvalidNameError struct {
	Field NameField
	Value string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("%s may only contain letters, digits and underscores, got %q", e.Field, e.Value)
}

type CoordinateArityError struct {
	Got int
}

func (e *CoordinateArityError) Error() string {
	return fmt.Sprintf("expected 3 values, got %d", e.Got)
}

func (e *CoordinateArityError) Unwrap() error {
	return ErrCoordinateArity
}

// LineError ties a per-line failure to its 1-based source line.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d (%q): %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
