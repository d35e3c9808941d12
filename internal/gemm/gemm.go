// Package gemm is the GEMM adapter (spec component C2): a thin, monomorphized
// stand-in for an external BLAS level-3 primitive. The GEMM implementation
// itself is, per the kernel's design, an out-of-scope collaborator consumed
// as a black box — this package plays that role with a compact kernel
// written in the reference material's idiom (register-blocked rows,
// multi-accumulator unrolling along the contraction dimension) rather than
// a full multi-architecture SIMD dispatch tree, since nothing else in this
// module needs one.
package gemm

import "github.com/mbatoul/argkmin/internal/numeric"

// rowBlock is how many rows of x are processed together per outer-loop
// iteration, sharing each load of a y row across four independent
// accumulators.
const rowBlock = 4

// Gemm computes out <- alpha*x*y^T + beta*out, row-major, where x is p x d,
// y is q x d (both K-last / "no-trans x trans" layout, so no transpose step
// is needed) and out is p x q. This is the adapter's full contract; the
// k-NN chunk kernel only ever calls it with alpha=-2, beta=0 (see
// CrossTerm), but the general form matches what a real BLAS binding would
// expose.
func Gemm[T numeric.Float](x, y numeric.Matrix[T], out []T, alpha, beta T) {
	p, q := x.Rows, y.Rows
	if len(out) < p*q {
		panic("gemm: out slice too short")
	}

	var i int
	for ; i+rowBlock <= p; i += rowBlock {
		x0, x1, x2, x3 := x.Row(i), x.Row(i+1), x.Row(i+2), x.Row(i+3)
		out0 := out[i*q : (i+1)*q]
		out1 := out[(i+1)*q : (i+2)*q]
		out2 := out[(i+2)*q : (i+3)*q]
		out3 := out[(i+3)*q : (i+4)*q]

		for j := 0; j < q; j++ {
			yj := y.Row(j)
			s0, s1, s2, s3 := dot4(x0, x1, x2, x3, yj)
			out0[j] = alpha*s0 + beta*out0[j]
			out1[j] = alpha*s1 + beta*out1[j]
			out2[j] = alpha*s2 + beta*out2[j]
			out3[j] = alpha*s3 + beta*out3[j]
		}
	}

	for ; i < p; i++ {
		xi := x.Row(i)
		outRow := out[i*q : (i+1)*q]
		for j := 0; j < q; j++ {
			outRow[j] = alpha*dot(xi, y.Row(j)) + beta*outRow[j]
		}
	}
}

// CrossTerm computes out <- -2*x*y^T, the reduced-distance cross-term the
// chunk kernel folds Y squared-norms into.
func CrossTerm[T numeric.Float](x, y numeric.Matrix[T], out []T) {
	var alpha T = -2
	Gemm(x, y, out, alpha, 0)
}

// dot4 computes the inner product of b against four rows at once, sharing
// each load of b across four running sums.
func dot4[T numeric.Float](a0, a1, a2, a3, b []T) (T, T, T, T) {
	n := len(b)
	var s0, s1, s2, s3 T
	for p := 0; p < n; p++ {
		bp := b[p]
		s0 += a0[p] * bp
		s1 += a1[p] * bp
		s2 += a2[p] * bp
		s3 += a3[p] * bp
	}
	return s0, s1, s2, s3
}

// dot computes a plain inner product with 4-way accumulator unrolling, used
// for the tail rows that don't fill a full row block.
func dot[T numeric.Float](a, b []T) T {
	n := len(b)
	var sum0, sum1, sum2, sum3 T
	var i int
	for ; i+4 <= n; i += 4 {
		sum0 += a[i] * b[i]
		sum1 += a[i+1] * b[i+1]
		sum2 += a[i+2] * b[i+2]
		sum3 += a[i+3] * b[i+3]
	}
	sum := sum0 + sum1 + sum2 + sum3
	for ; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
