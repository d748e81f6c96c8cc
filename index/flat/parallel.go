package flat

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/emilianobilli/victor/index"
)

// SearchParallel is Search with the scan fanned out across buckets: one
// goroutine per allocated bucket computes its local best and the coordinator
// merges them. The whole fan-out runs under a single shared-lock acquisition,
// so the result contract is identical to Search.
//
// Worth it only when several buckets are populated; a single-bucket table
// degenerates to the sequential scan.
func (t *Table) SearchParallel(ctx context.Context, q []float32) (index.MatchResult, error) {
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

	locals := make([]index.MatchResult, len(t.buckets))

	g, ctx := errgroup.WithContext(ctx)
	for bi, b := range t.buckets {
		bi, b := bi, b
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			local := index.MatchResult{ID: index.NoneID, Score: t.strategy.Worst()}
			for s := 0; s < b.cursor; s++ {
				if !b.live[s] {
					continue
				}
				score := t.strategy.Score(b.slot(s, t.alignedDims), query)
				if t.strategy.Better(score, local.Score) {
					local.ID = encodeID(int8(bi), uint32(s))
					local.Score = score
				}
			}
			locals[bi] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return index.MatchResult{}, err
	}

	best := index.MatchResult{ID: index.NoneID, Score: t.strategy.Worst()}
	for _, local := range locals {
		if local.ID == index.NoneID {
			continue
		}
		if t.strategy.Better(local.Score, best.Score) {
			best = local
		}
	}

	return best, nil
}
