package driver

import (
	"github.com/mbatoul/argkmin/internal/heap"
	"github.com/mbatoul/argkmin/internal/kernel"
	"github.com/mbatoul/argkmin/internal/numeric"
	"github.com/mbatoul/argkmin/internal/workerpool"
)

// ChunkOnX is the chunk_on_X driver (C5). The outer loop over X-tiles is
// parallel with static scheduling; each worker owns its own scratch
// (a GEMM cross-term buffer and a row of bounded heaps) and writes only to
// its own disjoint row range of indices, so no synchronization is needed
// between workers. indices is the flat n*k output table.
func ChunkOnX[T numeric.Float](pool *workerpool.Pool, x, y numeric.Matrix[T], ySqNorms []T, k, chunkSize int, indices []int) {
	xTiles := tileRanges(x.Rows, chunkSize)
	yTiles := tileRanges(y.Rows, chunkSize)
	maxP := maxTileLen(x.Rows, chunkSize)
	maxQ := maxTileLen(y.Rows, chunkSize)

	pool.ParallelFor(len(xTiles), func(work workerpool.Tile) {
		// Scratch is sized once per worker, for the largest X-tile it could
		// ever be handed, and reused across every X-tile in work's range:
		// reset between tiles, not reallocated (spec §9, "scratch
		// buffers are freed on worker exit", not on every tile).
		heaps := make([]heap.Bounded[T], maxP)
		for i := range heaps {
			heaps[i] = heap.New[T](k)
		}
		middle := make([]T, maxP*maxQ)

		for ti := work.Start; ti < work.End(); ti++ {
			xt := xTiles[ti]
			xTile := x.Slice(xt.Start, xt.Start+xt.Len)
			rowHeaps := heaps[:xt.Len]
			for i := range rowHeaps {
				rowHeaps[i].Reset()
			}

			for _, yt := range yTiles {
				yTile := y.Slice(yt.Start, yt.Start+yt.Len)
				kernel.Chunk(xTile, yTile, yt.Start, ySqNorms[yt.Start:yt.Start+yt.Len], middle[:xt.Len*yt.Len], rowHeaps)
			}

			for i := 0; i < xt.Len; i++ {
				rowHeaps[i].SimultaneousSort()
				row := indices[(xt.Start+i)*k : (xt.Start+i+1)*k]
				copy(row, rowHeaps[i].Indices())
			}
		}
	})
}
