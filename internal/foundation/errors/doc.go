// Package errors provides the classified error primitives used across ghsummary.
//
// Key features:
//   - ErrorCategory: Broad error classification (validation, table, sink, config, etc.)
//   - ErrorSeverity: Impact level (fatal, error)
//   - RetryStrategy: Retry behavior hint (ghsummary itself never retries)
//   - ClassifiedError: Structured error with category, severity, and context
//   - ErrorBuilder: Fluent API for creating classified errors
//   - CLI adapter for exit codes and error presentation
//
// An ErrorCategory is itself an error value, so callers can test for a
// category with the standard library:
//
//	err := errors.NewError(errors.CategoryTable, "row length mismatch").
//		WithContext("row", 2).
//		Build()
//	stderrors.Is(err, errors.CategoryTable) // true
package errors
