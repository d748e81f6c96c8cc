package victor

import (
	"context"
	"fmt"

	"github.com/emilianobilli/victor/index"
	"github.com/emilianobilli/victor/index/flat"
)

// Victor routes generic insert, delete and search calls to the configured
// index kind through the index.Index contract. Only the flat (exact,
// linear-scan) kind exists today; alternative index families plug in behind
// the same six operations plus Close.
type Victor struct {
	idx    index.Index
	kind   index.Kind
	dims   int
	logger *Logger
}

// New creates an index for dims-dimensional vectors.
// Defaults: flat index, L2 metric, no logging.
func New(dims int, optFns ...Option) (*Victor, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	var idx index.Index
	switch opts.kind {
	case index.KindFlat:
		t, err := flat.New(func(o *flat.Options) {
			o.Dimension = dims
			o.Metric = opts.metric
		})
		if err != nil {
			return nil, err
		}
		idx = t
	default:
		return nil, fmt.Errorf("%w: %d", index.ErrUnknownKind, opts.kind)
	}

	return &Victor{
		idx:    idx,
		kind:   opts.kind,
		dims:   dims,
		logger: opts.logger,
	}, nil
}

// Kind returns the index family this instance routes to.
func (v *Victor) Kind() index.Kind { return v.kind }

// Dimension returns the configured vector dimension.
func (v *Victor) Dimension() int { return v.dims }

// Insert stores a copy of vec and returns its permanent identifier.
func (v *Victor) Insert(ctx context.Context, vec []float32) (int32, error) {
	id, err := v.idx.Insert(ctx, vec)
	v.logger.LogInsert(ctx, id, len(vec), err)
	return id, err
}

// Delete tombstones the vector addressed by id. The identifier is retired
// permanently; deleting it again fails with an invalid-identifier error.
func (v *Victor) Delete(ctx context.Context, id int32) error {
	err := v.idx.Delete(ctx, id)
	v.logger.LogDelete(ctx, id, err)
	return err
}

// Search returns the best match for q, or (NoneID, worst sentinel) when the
// index holds no vectors.
func (v *Victor) Search(ctx context.Context, q []float32) (index.MatchResult, error) {
	m, err := v.idx.Search(ctx, q)
	v.logger.LogSearch(ctx, 1, err)
	return m, err
}

// SearchN returns the n best matches for q ordered best-first.
func (v *Victor) SearchN(ctx context.Context, q []float32, n int) ([]index.MatchResult, error) {
	results, err := v.idx.SearchN(ctx, q, n)
	v.logger.LogSearch(ctx, n, err)
	return results, err
}

// SearchWithin returns the first candidate in scan order whose score beats
// threshold in the metric's favorable direction, or the best found if none
// qualifies. The result is first-acceptable, not global-best: callers that
// need the optimum within a bound must use SearchN and filter.
func (v *Victor) SearchWithin(ctx context.Context, q []float32, threshold float32) (index.MatchResult, error) {
	m, err := v.idx.SearchWithin(ctx, q, threshold)
	v.logger.LogSearch(ctx, 1, err)
	return m, err
}

// Close releases the underlying index. Safe to call more than once.
func (v *Victor) Close() error {
	if v == nil {
		return nil
	}
	return v.idx.Close()
}
