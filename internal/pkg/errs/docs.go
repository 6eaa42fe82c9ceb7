// Package errs provides standardized error types for the application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the codebase.
//
// The package covers the error taxonomy of the order coordination core:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//   - ObjectNotFoundError: an object cannot be found (or is hidden by
//     the visibility policy)
//   - UnauthenticatedError: no principal could be resolved for a request
//   - ForbiddenError: a role or ownership check failed
//   - ConflictError: a conditional update found its precondition no
//     longer holding (e.g. an order already accepted by another courier)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
package errs
