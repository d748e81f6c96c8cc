package flat

// storeSize is the fixed byte size of one bucket's backing region. Per-bucket
// vector capacity is storeSize divided by the aligned vector footprint, so
// larger dimensions yield fewer vectors per bucket.
const storeSize = 1 << 20

// bucket is a fixed-capacity arena of aligned vector slots. All slots live in
// one contiguous zero-initialized store and are addressed by slot index, not
// pointer. live tracks per-slot occupancy; cursor is the next never-used slot
// and only grows, so tombstoned slots are never handed out again.
type bucket struct {
	store  []float32
	live   []bool
	cursor int
}

// bucketCapacity returns how many aligned vectors fit in one store region.
func bucketCapacity(alignedDims int) int {
	return storeSize / (alignedDims * 4)
}

func newBucket(capacity, alignedDims int) *bucket {
	return &bucket{
		store: make([]float32, capacity*alignedDims),
		live:  make([]bool, capacity),
	}
}

// slot returns the storage backing slot i.
func (b *bucket) slot(i, alignedDims int) []float32 {
	off := i * alignedDims
	return b.store[off : off+alignedDims]
}

// clear zeroes slot i and marks it absent.
func (b *bucket) clear(i, alignedDims int) {
	s := b.slot(i, alignedDims)
	for j := range s {
		s[j] = 0
	}
	b.live[i] = false
}
