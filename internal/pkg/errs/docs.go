// Package errs provides standardized error types used across the application.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g., ErrValueIsRequired)
//   - a struct type carrying the error details
//   - constructor functions with and without a cause
//   - Error() for formatting and Unwrap() so errors.Is classification works
//
// Callers match failures with errors.Is against the sentinel values rather
// than comparing messages.
package errs
