package index

// AlignQuantum is the dimension alignment unit. Vector storage rounds the
// caller's dimension up to the next multiple of AlignQuantum floats so SIMD
// kernels can operate on full lanes; padding elements are always zero.
const AlignQuantum = 4

// AlignDims rounds dims up to the next multiple of AlignQuantum.
func AlignDims(dims int) int {
	return (dims + AlignQuantum - 1) &^ (AlignQuantum - 1)
}

// Vector is a heap-owned, aligned copy of a caller's vector paired with its
// identifier, as handed across the façade boundary.
type Vector struct {
	ID   int32
	Dims int
	Data []float32 // len = AlignDims(Dims), padding zeroed
}

// MakeVector copies src into a freshly allocated aligned buffer.
// The copy keeps len(src) as its real dimension; padding stays zero.
func MakeVector(id int32, src []float32) *Vector {
	data := make([]float32, AlignDims(len(src)))
	copy(data, src)
	return &Vector{
		ID:   id,
		Dims: len(src),
		Data: data,
	}
}
