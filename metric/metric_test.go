package metric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("L2", func(t *testing.T) {
		s, err := New(L2)
		require.NoError(t, err)
		assert.Equal(t, "L2", s.String())
	})

	t.Run("Cosine", func(t *testing.T) {
		s, err := New(Cosine)
		require.NoError(t, err)
		assert.Equal(t, "Cosine", s.String())
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := New(Kind(42))
		assert.ErrorIs(t, err, ErrUnknownKind)
	})
}

func TestL2(t *testing.T) {
	s, err := New(L2)
	require.NoError(t, err)

	t.Run("Score", func(t *testing.T) {
		assert.InDelta(t, 0.0, s.Score([]float32{1, 2, 3, 4}, []float32{1, 2, 3, 4}), 1e-6)
		assert.InDelta(t, 5.0, s.Score([]float32{0, 0, 0, 0}, []float32{3, 4, 0, 0}), 1e-6)
	})

	t.Run("PaddingDoesNotAffectScore", func(t *testing.T) {
		a := []float32{1, 2, 0, 0}
		b := []float32{4, 6, 0, 0}
		assert.InDelta(t, 5.0, s.Score(a, b), 1e-6)
	})

	t.Run("Ordering", func(t *testing.T) {
		assert.True(t, s.Better(1.0, 2.0))
		assert.False(t, s.Better(2.0, 1.0))
		assert.False(t, s.Better(1.0, 1.0))
	})

	t.Run("Worst", func(t *testing.T) {
		assert.True(t, math.IsInf(float64(s.Worst()), 1))
		assert.True(t, s.Better(1e30, s.Worst()))
	})
}

func TestCosine(t *testing.T) {
	s, err := New(Cosine)
	require.NoError(t, err)

	t.Run("Score", func(t *testing.T) {
		assert.InDelta(t, 1.0, s.Score([]float32{1, 0, 0, 0}, []float32{1, 0, 0, 0}), 1e-6)
		assert.InDelta(t, 0.0, s.Score([]float32{1, 0, 0, 0}, []float32{0, 1, 0, 0}), 1e-6)
		assert.InDelta(t, -1.0, s.Score([]float32{1, 0, 0, 0}, []float32{-1, 0, 0, 0}), 1e-6)
	})

	t.Run("ScaleInvariance", func(t *testing.T) {
		assert.InDelta(t, 1.0, s.Score([]float32{1, 2, 3, 0}, []float32{2, 4, 6, 0}), 1e-6)
	})

	t.Run("ZeroMagnitude", func(t *testing.T) {
		assert.InDelta(t, 0.0, s.Score([]float32{0, 0, 0, 0}, []float32{1, 2, 3, 4}), 1e-6)
	})

	t.Run("Ordering", func(t *testing.T) {
		assert.True(t, s.Better(0.9, 0.5))
		assert.False(t, s.Better(0.5, 0.9))
		assert.False(t, s.Better(0.5, 0.5))
	})

	t.Run("Worst", func(t *testing.T) {
		assert.Equal(t, float32(-1.0), s.Worst())
		assert.True(t, s.Better(-0.999999, s.Worst()))
	})
}
