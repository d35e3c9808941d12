package argkmin

import "github.com/mbatoul/argkmin/internal/numeric"

// Matrix is a read-only row-major view over query or reference data: Rows
// rows, Cols columns, Data of length Rows*Cols. It is an alias for the
// internal representation the kernel tiles operate on directly, so callers
// never pay a copy to hand X or Y to ArgKMin.
type Matrix[T numeric.Float] = numeric.Matrix[T]

// NewMatrix wraps data as a Rows x Cols row-major matrix. len(data) must
// equal Rows*Cols; ArgKMin validates this before any internal package sees
// the matrix.
func NewMatrix[T numeric.Float](rows, cols int, data []T) Matrix[T] {
	return numeric.NewMatrix(rows, cols, data)
}
