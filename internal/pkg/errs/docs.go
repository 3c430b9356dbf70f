// Package errs provides standardized error types for the field-service
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the codebase.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - A struct type carrying the error details
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Higher layers classify failures by matching the sentinels: the HTTP
// adapter, for example, maps ErrObjectNotFound to 404 and
// ErrValueIsRequired/ErrValueIsInvalid to 400.
package errs
