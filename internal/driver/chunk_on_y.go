package driver

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mbatoul/argkmin/internal/heap"
	"github.com/mbatoul/argkmin/internal/kernel"
	"github.com/mbatoul/argkmin/internal/numeric"
	"github.com/mbatoul/argkmin/internal/workerpool"
)

// ChunkOnY is the chunk_on_Y driver (C6), used when n is small relative to
// the available parallel width. The outer loop over X-tiles is serial; the
// inner loop over Y-tiles is parallel with static scheduling. Because
// multiple workers contribute candidates for the same X rows concurrently,
// each worker folds its Y-tile range into a private heap and only reduces
// into the shared per-row heap once its range is done, under a per-row
// mutex. Reduction order does not affect which distances are kept: Push
// accepts a candidate only if it is strictly smaller than the current
// worst, so each shared heap ends with the k smallest distances offered.
// When several candidates tie with the k-th smallest distance, the ones
// reduced first are kept, so which of the tied indices are returned can
// depend on the order in which workers reduce.
//
// The returned error is always nil today: sorting a fixed-size heap and
// copying its indices out cannot fail. It is threaded through because the
// per-row sort-and-copy fan-out below uses errgroup.Group for its
// cancellation-on-first-error semantics, and a future error-producing step
// in that fan-out (e.g. a context-cancellable variant) would slot in without
// changing this function's signature.
func ChunkOnY[T numeric.Float](pool *workerpool.Pool, x, y numeric.Matrix[T], ySqNorms []T, k, chunkSize int, indices []int) error {
	xTiles := tileRanges(x.Rows, chunkSize)
	yTiles := tileRanges(y.Rows, chunkSize)
	maxQ := maxTileLen(y.Rows, chunkSize)

	for _, xt := range xTiles {
		xTile := x.Slice(xt.Start, xt.Start+xt.Len)

		shared := make([]heap.Bounded[T], xt.Len)
		for i := range shared {
			shared[i] = heap.New[T](k)
		}
		rowLocks := make([]sync.Mutex, xt.Len)

		pool.ParallelFor(len(yTiles), func(work workerpool.Tile) {
			local := make([]heap.Bounded[T], xt.Len)
			for i := range local {
				local[i] = heap.New[T](k)
			}
			middle := make([]T, xt.Len*maxQ)

			for ti := work.Start; ti < work.End(); ti++ {
				yt := yTiles[ti]
				yTile := y.Slice(yt.Start, yt.Start+yt.Len)
				kernel.Chunk(xTile, yTile, yt.Start, ySqNorms[yt.Start:yt.Start+yt.Len], middle[:xt.Len*yt.Len], local)
			}

			for i := 0; i < xt.Len; i++ {
				reduceRow(&rowLocks[i], &shared[i], &local[i])
			}
		})

		g := new(errgroup.Group)
		for i := 0; i < xt.Len; i++ {
			i := i
			g.Go(func() error {
				shared[i].SimultaneousSort()
				row := indices[(xt.Start+i)*k : (xt.Start+i+1)*k]
				copy(row, shared[i].Indices())
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}
	return nil
}

// reduceRow merges one worker's local heap entries for a row into the
// shared heap for that row, serialized so no two workers touch the same
// row's shared heap concurrently. Empty local slots (index -1) are skipped;
// Push would reject their +Inf distance anyway, since a shared heap that is
// not yet full has +Inf at its root.
func reduceRow[T numeric.Float](lock *sync.Mutex, shared, local *heap.Bounded[T]) {
	lock.Lock()
	defer lock.Unlock()

	dist, idx := local.Distances(), local.Indices()
	for slot := range dist {
		if idx[slot] < 0 {
			continue
		}
		shared.Push(dist[slot], idx[slot])
	}
}
