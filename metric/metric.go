package metric

import (
	"errors"
	"math"

	"github.com/viant/vec/search"
)

// Kind selects the similarity metric a table is created with.
type Kind int

const (
	// L2 scores vectors by Euclidean distance; smaller is better.
	L2 Kind = iota
	// Cosine scores vectors by cosine similarity; larger is better.
	Cosine
)

// ErrUnknownKind is returned when no strategy exists for a Kind.
var ErrUnknownKind = errors.New("unknown metric kind")

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case L2:
		return "L2"
	case Cosine:
		return "Cosine"
	default:
		return "Unknown"
	}
}

// Strategy bundles a metric's score function with its ordering: which of two
// scores is the better match and the sentinel score that loses to every real
// comparison. Implementations are stateless and safe for concurrent use.
type Strategy interface {
	// Score computes the metric between two equal-length vectors.
	// Both vectors may carry zero padding beyond the caller's real
	// dimension; padding does not affect either built-in metric.
	Score(a, b []float32) float32

	// Better reports whether candidate is a strictly better match than current.
	Better(candidate, current float32) bool

	// Worst returns the sentinel score used to seed running-best accumulators.
	Worst() float32

	String() string
}

// New returns the strategy for the given kind.
func New(kind Kind) (Strategy, error) {
	switch kind {
	case L2:
		return l2{}, nil
	case Cosine:
		return cosine{}, nil
	default:
		return nil, ErrUnknownKind
	}
}

type l2 struct{}

func (l2) Score(a, b []float32) float32 {
	return search.Float32s(a).EuclideanDistance(b)
}

func (l2) Better(candidate, current float32) bool { return candidate < current }

func (l2) Worst() float32 { return float32(math.Inf(1)) }

func (l2) String() string { return L2.String() }

type cosine struct{}

func (cosine) Score(a, b []float32) float32 {
	// CosineDistance reports 1.0 when either vector has zero magnitude,
	// so degenerate vectors score a similarity of 0.
	return 1 - search.Float32s(a).CosineDistance(b)
}

func (cosine) Better(candidate, current float32) bool { return candidate > current }

func (cosine) Worst() float32 { return -1.0 }

func (cosine) String() string { return Cosine.String() }
