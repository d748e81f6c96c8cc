package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlignDims(t *testing.T) {
	cases := map[int]int{
		1:   4,
		2:   4,
		3:   4,
		4:   4,
		5:   8,
		8:   8,
		9:   12,
		128: 128,
		130: 132,
	}
	for dims, want := range cases {
		assert.Equal(t, want, AlignDims(dims), "dims=%d", dims)
	}
}

func TestMakeVector(t *testing.T) {
	t.Run("PadsAndCopies", func(t *testing.T) {
		src := []float32{1, 2, 3}
		v := MakeVector(7, src)

		assert.Equal(t, int32(7), v.ID)
		assert.Equal(t, 3, v.Dims)
		assert.Equal(t, []float32{1, 2, 3, 0}, v.Data)

		// The copy owns its storage.
		src[0] = 99
		assert.Equal(t, float32(1), v.Data[0])
	})

	t.Run("AlreadyAligned", func(t *testing.T) {
		v := MakeVector(0, []float32{1, 2, 3, 4})
		assert.Equal(t, 4, v.Dims)
		assert.Len(t, v.Data, 4)
	})
}
