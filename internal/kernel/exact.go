package kernel

import (
	"math"

	"github.com/mbatoul/argkmin/internal/numeric"
	"github.com/mbatoul/argkmin/internal/workerpool"
)

// ExactDistances is the exact-distance pass (C4). Given the final indices
// table, it recomputes true Euclidean distances in place with a
// fused-subtract-square-accumulate loop over the d components, instead of
// trusting the reduced distance g kept during the chunked pass: g subtracts
// a potentially large positive quantity from another, which suffers
// catastrophic cancellation for near-identical vectors. A direct
// squared-difference loop is numerically stable.
//
// Embarrassingly parallel over query rows; runs on pool.
func ExactDistances[T numeric.Float](pool *workerpool.Pool, x, y numeric.Matrix[T], indices []int, k int, distances []T) {
	n := x.Rows
	pool.ParallelFor(n, func(work workerpool.Tile) {
		for i := work.Start; i < work.End(); i++ {
			xi := x.Row(i)
			row := indices[i*k : (i+1)*k]
			out := distances[i*k : (i+1)*k]
			for t, ref := range row {
				out[t] = euclidean(xi, y.Row(ref))
			}
		}
	})
}

// euclidean computes the Euclidean distance between a and b with 4-way
// accumulator unrolling on the squared-difference sum, the same
// accumulate-then-reduce shape used in the GEMM adapter's dot product, with
// a scalar tail loop for d not a multiple of 4.
func euclidean[T numeric.Float](a, b []T) T {
	n := len(a)
	var s0, s1, s2, s3 T
	var i int
	for ; i+4 <= n; i += 4 {
		d0 := a[i] - b[i]
		d1 := a[i+1] - b[i+1]
		d2 := a[i+2] - b[i+2]
		d3 := a[i+3] - b[i+3]
		s0 += d0 * d0
		s1 += d1 * d1
		s2 += d2 * d2
		s3 += d3 * d3
	}
	sum := s0 + s1 + s2 + s3
	for ; i < n; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return sqrtT(sum)
}

func sqrtT[T numeric.Float](v T) T {
	return T(math.Sqrt(float64(v)))
}
