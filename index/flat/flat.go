// Package flat implements victor's linear-scan index: vectors stored in an
// append-only chain of fixed-capacity bucket arenas, guarded by a single
// read/write lock, scanned exhaustively at query time.
//
// The flat index trades query cost for exactness and simplicity: every search
// visits every occupied slot, which keeps recall at 100% and is effective for
// small and medium collections.
package flat

import (
	"context"
	"fmt"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/emilianobilli/victor/index"
	"github.com/emilianobilli/victor/metric"
)

// Compile-time check that Table satisfies the index contract.
var _ index.Index = (*Table)(nil)

// Options contains configuration options for a flat table.
type Options struct {
	// Dimension is the fixed vector dimensionality for this table.
	// It must be > 0 and is enforced for all inserts and searches.
	Dimension int

	// Metric selects the similarity strategy. Fixed once the table exists.
	Metric metric.Kind
}

// DefaultOptions contains the default configuration options for a flat table.
var DefaultOptions = Options{
	Dimension: 0,
	Metric:    metric.L2,
}

// Table stores fixed-dimension vectors and answers best-match, top-N and
// threshold queries over them. Mutations take the write lock; searches share
// the read lock, so concurrent searches proceed in parallel while an insert
// or delete excludes everything until it completes.
//
// Identifiers encode the physical location of a slot and are assigned once:
// deletion tombstones the slot and retires the identifier permanently.
type Table struct {
	mu sync.RWMutex

	dims        int
	alignedDims int
	capacity    int // vectors per bucket

	strategy metric.Strategy

	buckets []*bucket
	current int // index of the last-allocated bucket

	retired *roaring.Bitmap // identifiers permanently retired by Delete
	closed  bool
}

// New creates a flat table. Dimension is required; Metric defaults to L2.
func New(optFns ...func(o *Options)) (*Table, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Dimension <= 0 {
		return nil, &index.ErrInvalidDimension{Dimension: opts.Dimension}
	}

	strategy, err := metric.New(opts.Metric)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", index.ErrInvalidMetric, opts.Metric)
	}

	alignedDims := index.AlignDims(opts.Dimension)
	capacity := bucketCapacity(alignedDims)
	if capacity == 0 {
		// Dimension so large that a bucket region holds no vector at all.
		return nil, fmt.Errorf("%w: dimension %d exceeds bucket region", index.ErrAllocationFailed, opts.Dimension)
	}

	t := &Table{
		dims:        opts.Dimension,
		alignedDims: alignedDims,
		capacity:    capacity,
		strategy:    strategy,
		retired:     roaring.New(),
	}
	t.buckets = append(t.buckets, newBucket(capacity, alignedDims))

	return t, nil
}

// Insert copies v into the next free slot and returns its identifier.
//
// When the current bucket is full a new one is allocated, up to maxBuckets;
// past that Insert fails with ErrCapacityExhausted and the table is left
// unchanged. Identical vectors may coexist under distinct identifiers; no
// duplicate detection is performed.
func (t *Table) Insert(ctx context.Context, v []float32) (int32, error) {
	if err := ctx.Err(); err != nil {
		return index.NoneID, err
	}
	if len(v) != t.dims {
		return index.NoneID, &index.ErrDimensionMismatch{Expected: t.dims, Actual: len(v)}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return index.NoneID, index.ErrClosed
	}

	b := t.buckets[t.current]
	if b.cursor >= t.capacity {
		if t.current+1 >= maxBuckets {
			return index.NoneID, index.ErrCapacityExhausted
		}
		b = newBucket(t.capacity, t.alignedDims)
		t.buckets = append(t.buckets, b)
		t.current++
	}

	id := encodeID(int8(t.current), uint32(b.cursor))

	// The boxed copy owns an aligned buffer with zeroed padding, so writing
	// it covers the slot's full aligned width.
	boxed := index.MakeVector(id, v)
	copy(b.slot(b.cursor, t.alignedDims), boxed.Data)
	b.live[b.cursor] = true
	b.cursor++

	return id, nil
}

// Delete tombstones the slot addressed by id: its memory is zeroed and the
// slot marked absent. Storage is never compacted and the slot is never reused
// by later inserts, so the identifier is retired for the table's lifetime.
//
// An identifier that is out of range, was never assigned, or is already
// retired fails with ErrInvalidID.
func (t *Table) Delete(ctx context.Context, id int32) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return index.ErrClosed
	}

	bi, slot := decodeID(id)
	if bi < 0 || bi >= len(t.buckets) || slot >= t.capacity {
		return &index.ErrInvalidID{ID: id}
	}
	b := t.buckets[bi]
	if slot >= b.cursor || !b.live[slot] {
		return &index.ErrInvalidID{ID: id}
	}

	b.clear(slot, t.alignedDims)
	t.retired.Add(uint32(id))

	return nil
}

// Close releases every bucket. It is safe to call on a nil or already-closed
// table; any later operation fails with ErrClosed.
func (t *Table) Close() error {
	if t == nil {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.buckets = nil
	t.current = 0
	t.closed = true

	return nil
}

// Dimension returns the table's configured vector dimension.
func (t *Table) Dimension() int { return t.dims }

// Metric returns the name of the table's similarity strategy.
func (t *Table) Metric() string { return t.strategy.String() }

// alignedQuery returns q padded with zeros up to the aligned dimension.
// When no padding is needed the caller's slice is used as is.
func (t *Table) alignedQuery(q []float32) []float32 {
	if len(q) == t.alignedDims {
		return q
	}
	buf := make([]float32, t.alignedDims)
	copy(buf, q)
	return buf
}
