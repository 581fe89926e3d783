package apperr

import "errors"

// Error kinds surfaced by the settlement and reporting services. Transport
// layers translate these into HTTP status codes with errors.Is.
var (
	// ErrValidationFailed covers malformed input, failed monetary
	// reconciliation, empty item lists, and unrecognized enum values.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNotFound means the primary entity of the operation does not exist.
	ErrNotFound = errors.New("not found")

	// ErrReferenceNotFound means a referenced catalog item or guest does not
	// exist. Kept distinct from ErrNotFound of the primary entity.
	ErrReferenceNotFound = errors.New("referenced record not found")

	// ErrInconsistency marks an internal invariant violation. Never retried:
	// retrying a non-idempotent creation could duplicate monetary records.
	ErrInconsistency = errors.New("internal consistency violation")
)
