// Package errs provides standardized error types for the SwiftDrop backend.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the error kinds the API reports:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed,
//     missing or out-of-range input (reported as validation failures)
//   - ObjectNotFoundError: an object is absent or not owned by the caller
//   - ObjectAlreadyExistsError: a uniqueness rule would be violated
//   - UnauthorizedError: credentials or tokens were rejected
//   - InternalError: an unexpected failure whose details must not reach the caller
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works on kinds
package errs
