// Package errs provides standardized error types for the ordering application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ValueIsOutOfRangeError: for when a numeric value is outside its bounds
//   - ObjectNotFoundError: for when an object cannot be found
//   - ReferentialConflictError: for when an operation is rejected because
//     another object still references the target
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Expected failure paths in the domain (bad promo code, blank address field,
// deleting a category that still has items) are returned through these types,
// never panicked, so callers branch on them with errors.Is/errors.As.
package errs
