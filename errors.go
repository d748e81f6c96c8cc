package victor

import "github.com/emilianobilli/victor/index"

// NoneID is the identifier reported when a search finds no match.
const NoneID = index.NoneID

// Error kinds surfaced by index engines, re-exported so callers matching with
// errors.Is do not need to import the index package directly.
var (
	// ErrAllocationFailed indicates a table or bucket could not acquire its
	// backing storage; no partial state remains visible.
	ErrAllocationFailed = index.ErrAllocationFailed

	// ErrCapacityExhausted indicates an insert was attempted after the
	// maximum bucket count was reached; the table is left unchanged.
	ErrCapacityExhausted = index.ErrCapacityExhausted

	// ErrInvalidMetric indicates creation with an unrecognized metric.
	ErrInvalidMetric = index.ErrInvalidMetric

	// ErrInvalidN indicates a non-positive requested result count.
	ErrInvalidN = index.ErrInvalidN

	// ErrClosed indicates an operation on a closed index.
	ErrClosed = index.ErrClosed

	// ErrUnknownKind indicates a Kind with no implementation.
	ErrUnknownKind = index.ErrUnknownKind
)
