package victor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilianobilli/victor/index"
	"github.com/emilianobilli/victor/metric"
)

func TestNew(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		db, err := New(128)
		require.NoError(t, err)
		defer db.Close()

		assert.Equal(t, index.KindFlat, db.Kind())
		assert.Equal(t, 128, db.Dimension())
	})

	t.Run("UnknownKind", func(t *testing.T) {
		_, err := New(128, WithKind(index.Kind(7)))
		assert.ErrorIs(t, err, ErrUnknownKind)
	})

	t.Run("InvalidMetric", func(t *testing.T) {
		_, err := New(128, WithMetric(metric.Kind(7)))
		assert.ErrorIs(t, err, ErrInvalidMetric)
	})

	t.Run("InvalidDimension", func(t *testing.T) {
		_, err := New(0)
		var invalid *index.ErrInvalidDimension
		assert.ErrorAs(t, err, &invalid)
	})
}

func TestVictor(t *testing.T) {
	ctx := context.Background()

	t.Run("InsertSearchDelete", func(t *testing.T) {
		db, err := New(4)
		require.NoError(t, err)
		defer db.Close()

		id, err := db.Insert(ctx, []float32{1, 0, 0, 0})
		require.NoError(t, err)

		best, err := db.Search(ctx, []float32{1, 0, 0, 0})
		require.NoError(t, err)
		assert.Equal(t, id, best.ID)
		assert.InDelta(t, 0.0, best.Score, 1e-6)

		require.NoError(t, db.Delete(ctx, id))

		best, err = db.Search(ctx, []float32{1, 0, 0, 0})
		require.NoError(t, err)
		assert.Equal(t, NoneID, best.ID)
	})

	t.Run("DeleteInvalidID", func(t *testing.T) {
		db, err := New(4)
		require.NoError(t, err)
		defer db.Close()

		err = db.Delete(ctx, 12345)
		var invalid *index.ErrInvalidID
		assert.ErrorAs(t, err, &invalid)
	})

	t.Run("CosineMetric", func(t *testing.T) {
		db, err := New(2, WithMetric(metric.Cosine))
		require.NoError(t, err)
		defer db.Close()

		first, err := db.Insert(ctx, []float32{1, 0})
		require.NoError(t, err)
		_, err = db.Insert(ctx, []float32{0, 1})
		require.NoError(t, err)

		best, err := db.Search(ctx, []float32{1, 0})
		require.NoError(t, err)
		assert.Equal(t, first, best.ID)
		assert.InDelta(t, 1.0, best.Score, 1e-6)
	})

	t.Run("SearchN", func(t *testing.T) {
		db, err := New(4)
		require.NoError(t, err)
		defer db.Close()

		for i := 1; i <= 3; i++ {
			_, err := db.Insert(ctx, []float32{float32(i), 0, 0, 0})
			require.NoError(t, err)
		}

		results, err := db.SearchN(ctx, []float32{0, 0, 0, 0}, 2)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.LessOrEqual(t, results[0].Score, results[1].Score)
	})

	t.Run("SearchWithin", func(t *testing.T) {
		db, err := New(4)
		require.NoError(t, err)
		defer db.Close()

		id, err := db.Insert(ctx, []float32{1, 0, 0, 0})
		require.NoError(t, err)

		hit, err := db.SearchWithin(ctx, []float32{0, 0, 0, 0}, 2.0)
		require.NoError(t, err)
		assert.Equal(t, id, hit.ID)
	})

	t.Run("WithLogger", func(t *testing.T) {
		db, err := New(4, WithLogger(nil))
		require.NoError(t, err)
		defer db.Close()

		_, err = db.Insert(ctx, []float32{1, 0, 0, 0})
		assert.NoError(t, err)
	})
}
