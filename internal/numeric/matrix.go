package numeric

// Matrix is a read-only view over a contiguous row-major table of T, the
// representation X and Y are passed in and handed down to tiles and kernels
// as. It never copies or owns backing storage beyond the slice it wraps.
type Matrix[T Float] struct {
	Rows int
	Cols int
	Data []T
}

// NewMatrix wraps data as a Rows x Cols row-major matrix. The caller must
// ensure len(data) == Rows*Cols; this is a plumbing type, not a validated
// public constructor (validation happens once, at the k-NN entry point).
func NewMatrix[T Float](rows, cols int, data []T) Matrix[T] {
	return Matrix[T]{Rows: rows, Cols: cols, Data: data}
}

// Row returns the i-th row as a Cols-length slice sharing the backing array.
func (m Matrix[T]) Row(i int) []T {
	return m.Data[i*m.Cols : (i+1)*m.Cols]
}

// Slice returns the sub-matrix spanning rows [start, end), sharing the
// backing array. Used to hand a worker its X-tile or Y-tile without a copy.
func (m Matrix[T]) Slice(start, end int) Matrix[T] {
	return Matrix[T]{
		Rows: end - start,
		Cols: m.Cols,
		Data: m.Data[start*m.Cols : end*m.Cols],
	}
}
