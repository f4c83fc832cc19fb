// Package errs provides the error kinds surfaced by the fulfillment core.
//
// Every error returned to a caller belongs to exactly one kind:
//   - validation: ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//   - not found: ObjectNotFoundError
//   - invalid state: InvalidStateError
//   - conflict: ConflictError
//   - capacity: CapacityExceededError
//
// Each typed error unwraps to a sentinel (ErrValueIsRequired, ErrObjectNotFound,
// ErrInvalidState, ...), so callers classify with errors.Is and inspect details
// with errors.As. Errors produced by infrastructure (database, broker) carry no
// kind and are treated as internal failures by the transport layer.
package errs
