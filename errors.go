package veloxquery

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors for paging and filtering.
var (
	// ErrMalformedCursor is returned when a cursor cannot be decoded.
	ErrMalformedCursor = errors.New("veloxquery: malformed cursor")

	// ErrConflictingPagingArgs is returned when both first and last are
	// supplied on a single connection request.
	ErrConflictingPagingArgs = errors.New("veloxquery: first and last cannot be used together")

	// ErrInvalidPagingArgs is returned for out of range paging arguments.
	ErrInvalidPagingArgs = errors.New("veloxquery: invalid paging arguments")
)

// MalformedCursorError describes why a cursor was rejected.
type MalformedCursorError struct {
	Cursor string // Raw cursor as received
	Reason string // Short description of the defect
	Err    error  // Optional underlying decode error
}

// Error returns the error string.
func (e *MalformedCursorError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("veloxquery: malformed cursor %q: %s: %v", e.Cursor, e.Reason, e.Err)
	}
	return fmt.Sprintf("veloxquery: malformed cursor %q: %s", e.Cursor, e.Reason)
}

// Is reports whether the target error matches MalformedCursorError.
// This allows errors.Is(err, ErrMalformedCursor) to return true.
func (e *MalformedCursorError) Is(err error) bool {
	return err == ErrMalformedCursor
}

// Unwrap returns the underlying error.
func (e *MalformedCursorError) Unwrap() error {
	return e.Err
}

// NewMalformedCursorError returns a new MalformedCursorError.
func NewMalformedCursorError(cursor, reason string, err error) *MalformedCursorError {
	return &MalformedCursorError{Cursor: cursor, Reason: reason, Err: err}
}

// IsMalformedCursor returns true if the error is a MalformedCursorError.
func IsMalformedCursor(err error) bool {
	if err == nil {
		return false
	}
	var e *MalformedCursorError
	return errors.As(err, &e) || errors.Is(err, ErrMalformedCursor)
}

// PagingArgsError represents a rejected paging argument.
type PagingArgsError struct {
	Arg string // Argument name (first, last, after, before)
	Msg string
	Err error // Sentinel the error matches
}

// Error returns the error string.
func (e *PagingArgsError) Error() string {
	if e.Arg == "" {
		return fmt.Sprintf("veloxquery: paging: %s", e.Msg)
	}
	return fmt.Sprintf("veloxquery: paging argument %q: %s", e.Arg, e.Msg)
}

// Is reports whether the target error matches the wrapped sentinel or
// ErrInvalidPagingArgs.
func (e *PagingArgsError) Is(err error) bool {
	return err == ErrInvalidPagingArgs || (e.Err != nil && err == e.Err)
}

// Unwrap returns the underlying error.
func (e *PagingArgsError) Unwrap() error {
	return e.Err
}

// NewPagingArgsError returns a new PagingArgsError for the given argument.
func NewPagingArgsError(arg, msg string) *PagingArgsError {
	return &PagingArgsError{Arg: arg, Msg: msg}
}

// IsPagingArgsError returns true if the error is a PagingArgsError.
func IsPagingArgsError(err error) bool {
	if err == nil {
		return false
	}
	var e *PagingArgsError
	return errors.As(err, &e) || errors.Is(err, ErrConflictingPagingArgs)
}

// ValidationError represents a validation error for a filter, sort term or
// configuration value.
type ValidationError struct {
	Name string // Field or option name
	Err  error  // Underlying validation error
}

// Error returns the error string.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("veloxquery: validator failed for %q: %s", e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError returns a new ValidationError for the given name.
func NewValidationError(name string, err error) *ValidationError {
	return &ValidationError{Name: name, Err: err}
}

// IsValidationError returns true if the error is a ValidationError.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var e *ValidationError
	return errors.As(err, &e)
}

// AggregateError represents multiple errors collected during an operation.
type AggregateError struct {
	Errors []error
}

// Error returns the error string.
func (e *AggregateError) Error() string {
	if len(e.Errors) == 0 {
		return "veloxquery: no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("veloxquery: multiple errors:")
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  [%d] %v", i+1, err)
	}
	return sb.String()
}

// Unwrap returns the collected errors so errors.Is and errors.As can
// inspect each of them.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// NewAggregateError returns a new AggregateError if there are errors,
// otherwise returns nil.
func NewAggregateError(errs ...error) error {
	var filtered []error
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &AggregateError{Errors: filtered}
}
