package flat

import (
	"context"

	"github.com/emilianobilli/victor/index"
)

// Search scans every occupied slot in allocation order and returns the best
// match for q under the table's metric. An empty table yields
// (index.NoneID, worst sentinel) without error.
func (t *Table) Search(ctx context.Context, q []float32) (index.MatchResult, error) {
	if err := ctx.Err(); err != nil {
		return index.MatchResult{}, err
	}
	if len(q) != t.dims {
		return index.MatchResult{}, &index.ErrDimensionMismatch{Expected: t.dims, Actual: len(q)}
	}

	query := t.alignedQuery(q)

	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.closed {
		return index.MatchResult{}, index.ErrClosed
	}

	best := index.MatchResult{ID: index.NoneID, Score: t.strategy.Worst()}
	for bi, b := range t.buckets {
		for s := 0; s < b.cursor; s++ {
			if !b.live[s] {
				continue
			}
			score := t.strategy.Score(b.slot(s, t.alignedDims), query)
			if t.strategy.Better(score, best.Score) {
				best.ID = encodeID(int8(bi), uint32(s))
				best.Score = score
			}
		}
	}

	return best, nil
}

// SearchN returns the n best matches for q ordered best-first.
//
// The result window is a fixed-size buffer maintained by rank insertion: each
// candidate that beats an entry shifts the weaker tail right by one and takes
// its place. O(candidates x n), deliberately simpler than a heap since n is
// expected small relative to the collection. When fewer than n vectors are
// stored, trailing entries keep (index.NoneID, worst sentinel).
//
// The entire scan runs under one shared-lock acquisition.
func (t *Table) SearchN(ctx context.Context, q []float32, n int) ([]index.MatchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, index.ErrInvalidN
	}
	if len(q) != t.dims {
		return nil, &index.ErrDimensionMismatch{Expected: t.dims, Actual: len(q)}
	}

	query := t.alignedQuery(q)

	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.closed {
		return nil, index.ErrClosed
	}

	results := make([]index.MatchResult, n)
	for i := range results {
		results[i] = index.MatchResult{ID: index.NoneID, Score: t.strategy.Worst()}
	}

	for bi, b := range t.buckets {
		for s := 0; s < b.cursor; s++ {
			if !b.live[s] {
				continue
			}
			score := t.strategy.Score(b.slot(s, t.alignedDims), query)
			for k := range results {
				if t.strategy.Better(score, results[k].Score) {
					copy(results[k+1:], results[k:n-1])
					results[k] = index.MatchResult{ID: encodeID(int8(bi), uint32(s)), Score: score}
					break
				}
			}
		}
	}

	return results, nil
}

// SearchWithin scans like Search but stops at the first candidate whose score
// beats threshold in the metric's favorable direction (strictly below it for
// L2, strictly above it for cosine) and returns that candidate immediately.
//
// Because the scan follows bucket/slot allocation order, the returned match
// is the first qualifying one encountered, not necessarily the global best.
// If no candidate qualifies, the best found over the full scan is returned.
func (t *Table) SearchWithin(ctx context.Context, q []float32, threshold float32) (index.MatchResult, error) {
	if err := ctx.Err(); err != nil {
		return index.MatchResult{}, err
	}
	if len(q) != t.dims {
		return index.MatchResult{}, &index.ErrDimensionMismatch{Expected: t.dims, Actual: len(q)}
	}

	query := t.alignedQuery(q)

	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.closed {
		return index.MatchResult{}, index.ErrClosed
	}

	best := index.MatchResult{ID: index.NoneID, Score: t.strategy.Worst()}
	for bi, b := range t.buckets {
		for s := 0; s < b.cursor; s++ {
			if !b.live[s] {
				continue
			}
			score := t.strategy.Score(b.slot(s, t.alignedDims), query)
			if t.strategy.Better(score, best.Score) {
				best.ID = encodeID(int8(bi), uint32(s))
				best.Score = score
				if t.strategy.Better(best.Score, threshold) {
					return best, nil
				}
			}
		}
	}

	return best, nil
}
