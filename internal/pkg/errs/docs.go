// Package errs provides standardized error types for the food-delivery application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the scenarios the order core must
// distinguish:
//   - ObjectNotFoundError: an order (or other object) does not exist
//   - DuplicateKeyError: an identifier collision on creation
//   - InvalidTransitionError: a status precondition failed, including lost claims
//   - TimeoutError: a producer query exceeded its bounded wait
//   - ValueIsInvalidError / ValueIsRequiredError: input validation failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Errors that represent normal contention (a lost claim, nothing available)
// are returned as ordinary values and classified by callers with errors.Is;
// they never panic and never terminate a whole stream on their own.
package errs
