// Package index defines the contract shared by victor index kinds: the Index
// interface, the match result and identifier conventions, and the error kinds
// index engines surface.
package index

import (
	"context"
	"errors"
	"fmt"
)

// NoneID is the identifier reported when a search finds no match.
const NoneID int32 = -1

// Kind identifies an index family.
type Kind int

const (
	// KindFlat is the linear-scan index backed by bucketed arenas.
	KindFlat Kind = iota
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindFlat:
		return "Flat"
	default:
		return "Unknown"
	}
}

var (
	// ErrAllocationFailed is returned when a table or bucket cannot acquire
	// its backing storage; no partial state remains visible.
	ErrAllocationFailed = errors.New("allocation failed")

	// ErrCapacityExhausted is returned when an insert is attempted after the
	// maximum bucket count has been reached; the table is left unchanged.
	ErrCapacityExhausted = errors.New("capacity exhausted")

	// ErrInvalidMetric is returned when a table is created with an
	// unrecognized metric.
	ErrInvalidMetric = errors.New("invalid metric")

	// ErrInvalidN is returned when the requested result count is not positive.
	ErrInvalidN = errors.New("n must be positive")

	// ErrClosed is returned when operating on a closed index.
	ErrClosed = errors.New("index is closed")

	// ErrUnknownKind is returned when no implementation exists for a Kind.
	ErrUnknownKind = errors.New("unknown index kind")
)

// ErrDimensionMismatch indicates a vector/query dimensionality mismatch.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidDimension indicates an invalid configured dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

// ErrInvalidID indicates an identifier whose decoded location is out of
// bounds, was never assigned, or was already retired by a delete.
type ErrInvalidID struct {
	ID int32
}

func (e *ErrInvalidID) Error() string {
	return fmt.Sprintf("invalid identifier: %d", e.ID)
}

// MatchResult pairs an identifier with its computed score. The score is a
// distance or a similarity depending on the table's metric, so result
// ordering is metric-direction-dependent: ascending for L2, descending for
// cosine.
type MatchResult struct {
	ID    int32
	Score float32
}

// Index is the operation set every victor index kind fulfills. The façade in
// the root package routes generic calls to an implementation through this
// interface.
type Index interface {
	// Insert stores a copy of v and returns its permanent identifier.
	Insert(ctx context.Context, v []float32) (int32, error)

	// Delete tombstones the slot addressed by id. The identifier is retired
	// for good; it is never reassigned to a later insert.
	Delete(ctx context.Context, id int32) error

	// Search returns the best match for q, or (NoneID, worst sentinel) when
	// the index holds no vectors.
	Search(ctx context.Context, q []float32) (MatchResult, error)

	// SearchN returns the n best matches for q ordered best-first. Entries
	// beyond the number of stored vectors keep (NoneID, worst sentinel).
	SearchN(ctx context.Context, q []float32, n int) ([]MatchResult, error)

	// SearchWithin returns the first candidate in scan order whose score
	// beats threshold in the metric's favorable direction, or the best found
	// if none qualifies. The result is first-acceptable, not global-best.
	SearchWithin(ctx context.Context, q []float32, threshold float32) (MatchResult, error)

	// Close releases the index. Further calls fail with ErrClosed.
	Close() error
}
