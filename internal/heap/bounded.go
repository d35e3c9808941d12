// Package heap implements the bounded per-row candidate heap the k-NN
// kernel folds GEMM cross-terms into. Each row of a query tile owns one
// Bounded[T]: a max-heap of the k smallest (distance, index) pairs seen so
// far, ordered so the worst of the k kept candidates sits at the root and
// can be rejected in O(1).
package heap

import (
	"math"

	"github.com/mbatoul/argkmin/internal/numeric"
)

// Bounded holds the k smallest (distance, index) pairs observed for one
// query row, as two parallel slices ordered as a max-heap on distance.
// Empty slots are denoted by distance +Inf and index -1.
type Bounded[T numeric.Float] struct {
	dist []T
	idx  []int
}

// New allocates a Bounded heap of size k, sentinel-initialized.
func New[T numeric.Float](k int) Bounded[T] {
	b := Bounded[T]{
		dist: make([]T, k),
		idx:  make([]int, k),
	}
	b.Reset()
	return b
}

// Reset restores the sentinel state (+Inf / -1) in every slot. A bulk
// byte-clear is not equivalent: the zero value of T is 0, not +Inf.
func (b *Bounded[T]) Reset() {
	inf := T(math.Inf(1))
	for i := range b.dist {
		b.dist[i] = inf
		b.idx[i] = -1
	}
}

// Len reports k, the heap's fixed capacity.
func (b *Bounded[T]) Len() int {
	return len(b.dist)
}

// Worst returns the distance currently at the root: the largest of the k
// kept candidates, or +Inf if the heap has not been filled yet.
func (b *Bounded[T]) Worst() T {
	return b.dist[0]
}

// Push offers a candidate (d, i) to the heap. If d is not smaller than the
// current worst kept distance, the candidate is discarded in O(1). Otherwise
// it replaces the root and sifts down to restore the max-heap property.
func (b *Bounded[T]) Push(d T, i int) {
	if d >= b.dist[0] {
		return
	}
	b.dist[0] = d
	b.idx[0] = i
	b.siftDown(0)
}

// siftDown restores the max-heap property starting at root. At each node it
// picks the child with the larger distance, breaking ties toward the left
// child, and stops as soon as the candidate is no smaller than that child.
func (b *Bounded[T]) siftDown(root int) {
	n := len(b.dist)
	for {
		left := 2*root + 1
		if left >= n {
			return
		}
		largest := left
		if right := left + 1; right < n && b.dist[right] > b.dist[left] {
			largest = right
		}
		if b.dist[largest] <= b.dist[root] {
			return
		}
		b.dist[root], b.dist[largest] = b.dist[largest], b.dist[root]
		b.idx[root], b.idx[largest] = b.idx[largest], b.idx[root]
		root = largest
	}
}

// SimultaneousSort reorders the heap's two parallel slices into ascending
// order of distance, permuting indices identically. Ties between equal
// distances are broken by ascending index, so the result is deterministic
// regardless of insertion order. k is expected to be small relative to n
// and m, so a plain insertion sort on the two arrays is both simple and
// fast enough — no need to build a generic sort.Interface around them.
func (b *Bounded[T]) SimultaneousSort() {
	for i := 1; i < len(b.dist); i++ {
		d, idx := b.dist[i], b.idx[i]
		j := i - 1
		for j >= 0 && less(d, idx, b.dist[j], b.idx[j]) {
			b.dist[j+1] = b.dist[j]
			b.idx[j+1] = b.idx[j]
			j--
		}
		b.dist[j+1] = d
		b.idx[j+1] = idx
	}
}

func less[T numeric.Float](d1 T, i1 int, d2 T, i2 int) bool {
	if d1 != d2 {
		return d1 < d2
	}
	return i1 < i2
}

// Distances exposes the backing distance slice. Callers in this module use
// it read-only after SimultaneousSort, or as scratch during Push.
func (b *Bounded[T]) Distances() []T {
	return b.dist
}

// Indices exposes the backing index slice.
func (b *Bounded[T]) Indices() []int {
	return b.idx
}
