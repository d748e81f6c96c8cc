package flat

// Stats is a point-in-time snapshot of a table's storage.
type Stats struct {
	Dimension        int
	AlignedDimension int
	Metric           string

	Buckets        int // buckets allocated so far
	BucketCapacity int // vectors per bucket
	Live           int // occupied slots
	Tombstones     int // slots retired by Delete
}

// Stats reports the table's current storage statistics.
func (t *Table) Stats() Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	live := 0
	for _, b := range t.buckets {
		for s := 0; s < b.cursor; s++ {
			if b.live[s] {
				live++
			}
		}
	}

	return Stats{
		Dimension:        t.dims,
		AlignedDimension: t.alignedDims,
		Metric:           t.strategy.String(),
		Buckets:          len(t.buckets),
		BucketCapacity:   t.capacity,
		Live:             live,
		Tombstones:       int(t.retired.GetCardinality()),
	}
}

// Retired reports whether id was retired by a Delete on this table.
func (t *Table) Retired(id int32) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.retired.Contains(uint32(id))
}
