// Package numeric holds the float-width constraint shared by the k-NN
// kernel packages (heap, gemm, kernel, driver). Keeping it in one place
// means every package monomorphizes on exactly the same two widths.
package numeric

// Float is the constraint the k-NN core is monomorphized over. Only the two
// Go-native floating point widths are supported; there is no half-precision
// path here (unlike a general SIMD library) because heap comparisons and
// the exact-distance pass need direct arithmetic, not promoted math.
type Float interface {
	~float32 | ~float64
}
