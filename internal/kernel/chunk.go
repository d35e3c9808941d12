// Package kernel implements the chunk kernel (C3) and the exact-distance
// pass (C4): the two pieces of work both drivers repeat over tiles.
package kernel

import (
	"github.com/mbatoul/argkmin/internal/gemm"
	"github.com/mbatoul/argkmin/internal/heap"
	"github.com/mbatoul/argkmin/internal/numeric"
)

// Chunk folds one (X-tile, Y-tile) pair into the p per-row heaps. middle is
// caller-owned scratch sized p*q; ySqNormsTile holds the squared norms for
// exactly the q rows of yTile, aligned 1:1. yOffset is yTile's absolute row
// offset into the full reference matrix Y, so candidate indices landing in
// the heaps are global, not tile-local.
//
// On exit, heaps[i] holds the k smallest values of g(x_i, y) observed so far
// across every tile processed for row i, root being the largest of those k.
func Chunk[T numeric.Float](xTile, yTile numeric.Matrix[T], yOffset int, ySqNormsTile []T, middle []T, heaps []heap.Bounded[T]) {
	p, q := xTile.Rows, yTile.Rows
	gemm.CrossTerm(xTile, yTile, middle)

	for i := 0; i < p; i++ {
		row := middle[i*q : (i+1)*q]
		h := &heaps[i]
		for j := 0; j < q; j++ {
			h.Push(row[j]+ySqNormsTile[j], yOffset+j)
		}
	}
}
