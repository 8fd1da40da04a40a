// Package errs provides standardized error types for the order lifecycle
// service. It implements a consistent pattern for error creation, formatting,
// and unwrapping that is used throughout the application.
//
// The package carries two groups of error types:
//   - Value errors shared by all layers: ValueIsRequiredError,
//     ValueIsInvalidError, ValueIsOutOfRangeError, ObjectNotFoundError,
//     VersionIsInvalidError
//   - Lifecycle errors raised by the order state machine and its coordinator:
//     InvalidTransitionError, PreconditionError, ConflictError,
//     AlreadyAppliedError, ConcurrentModificationError
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrInvalidTransition)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// All of these errors are recoverable at the caller: they describe a rejected
// administrative action, not a process failure. Infrastructure errors (store
// unreachable) pass through untouched and are not part of this taxonomy.
package errs
