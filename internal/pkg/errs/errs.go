package errs

import (
	"fmt"
	"strings"
)

// sanitize removes line breaks from values interpolated into error messages
// so a single error always renders as a single log line.
func sanitize(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	return value
}

/* ObjectNotFoundError */

// ErrObjectNotFound is the sentinel error for lookups of objects that do not exist.
// Use errors.Is(err, ErrObjectNotFound) to classify errors of this kind.
var ErrObjectNotFound = fmt.Errorf("object not found")

// ObjectNotFoundError indicates that an object could not be found by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

/* DuplicateKeyError */

// ErrDuplicateKey is the sentinel error for inserts that collide with an existing key.
var ErrDuplicateKey = fmt.Errorf("duplicate key")

// DuplicateKeyError indicates that an object with the same identifier already exists.
type DuplicateKeyError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewDuplicateKeyError creates a DuplicateKeyError without an underlying cause.
func NewDuplicateKeyError(paramName string, id any) *DuplicateKeyError {
	return &DuplicateKeyError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewDuplicateKeyErrorWithCause creates a DuplicateKeyError wrapping an underlying cause.
func NewDuplicateKeyErrorWithCause(paramName string, id any, cause error) *DuplicateKeyError {
	return &DuplicateKeyError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *DuplicateKeyError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrDuplicateKey, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrDuplicateKey, e.ID))
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

/* InvalidTransitionError */

// ErrInvalidTransition is the sentinel error for status changes whose precondition
// did not hold. It covers both genuine bugs and expected races, such as losing a
// claim on an order that another driver took first; callers branch on it with
// errors.Is rather than treating it as fatal.
var ErrInvalidTransition = fmt.Errorf("invalid status transition")

// InvalidTransitionError indicates that an object was not in any of the statuses
// required for the requested transition.
type InvalidTransitionError struct {
	ID      any
	Current string
	Target  string
	Cause   error
}

// NewInvalidTransitionError creates an InvalidTransitionError without an underlying cause.
func NewInvalidTransitionError(id any, current, target string) *InvalidTransitionError {
	return &InvalidTransitionError{
		ID:      id,
		Current: current,
		Target:  target,
	}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError wrapping an underlying cause.
func NewInvalidTransitionErrorWithCause(id any, current, target string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{
		ID:      id,
		Current: current,
		Target:  target,
		Cause:   cause,
	}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: ID is: %s, %s -> %s (cause: %s)",
			ErrInvalidTransition, e.ID, e.Current, e.Target, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: ID is: %s, %s -> %s",
		ErrInvalidTransition, e.ID, e.Current, e.Target))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

/* TimeoutError */

// ErrTimeout is the sentinel error for producer queries that exceeded their bound.
var ErrTimeout = fmt.Errorf("operation timed out")

// TimeoutError indicates that an operation did not complete within its bounded wait.
type TimeoutError struct {
	Operation string
	Cause     error
}

// NewTimeoutError creates a TimeoutError without an underlying cause.
func NewTimeoutError(operation string) *TimeoutError {
	return &TimeoutError{Operation: operation}
}

// NewTimeoutErrorWithCause creates a TimeoutError wrapping an underlying cause.
func NewTimeoutErrorWithCause(operation string, cause error) *TimeoutError {
	return &TimeoutError{Operation: operation, Cause: cause}
}

func (e *TimeoutError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrTimeout, e.Operation, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrTimeout, e.Operation))
}

func (e *TimeoutError) Unwrap() error {
	return ErrTimeout
}

/* ValueIsInvalidError */

// ErrValueIsInvalid is the sentinel error for values that fail validation.
var ErrValueIsInvalid = fmt.Errorf("value is invalid")

// ValueIsInvalidError indicates that a provided value does not satisfy validation rules.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

/* ValueIsRequiredError */

// ErrValueIsRequired is the sentinel error for missing required values.
var ErrValueIsRequired = fmt.Errorf("value is required")

// ValueIsRequiredError indicates that a required value was not provided.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}
