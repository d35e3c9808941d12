// Package argkmin implements a blocked, parallel, GEMM-accelerated
// k-nearest-neighbors kernel: given query matrix X (n×d) and reference
// matrix Y (m×d), it returns for every row of X the indices (and
// optionally the Euclidean distances) of its k nearest rows in Y.
package argkmin

import (
	"github.com/mbatoul/argkmin/internal/driver"
	"github.com/mbatoul/argkmin/internal/kernel"
	"github.com/mbatoul/argkmin/internal/numeric"
	"github.com/mbatoul/argkmin/internal/threads"
	"github.com/mbatoul/argkmin/internal/workerpool"
)

// Result is the output of a single ArgKMin call: a flat n*k index table,
// row i occupying Indices[i*k:(i+1)*k] in ascending-distance order, plus
// the matching Euclidean distances when WithReturnDistance(true) was set.
type Result[T numeric.Float] struct {
	Indices   []int
	Distances []T
}

// ArgKMin finds, for every row of x, the k nearest rows of y under
// Euclidean distance.
//
// It validates x and y, resolves the effective thread count and
// parallelization strategy, dispatches to the chunk_on_X or chunk_on_Y
// driver, and optionally recomputes exact distances before returning.
func ArgKMin[T numeric.Float](x, y numeric.Matrix[T], k int, opts ...Option) (Result[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validate(x, y, k); err != nil {
		return Result[T]{}, err
	}

	n, m := x.Rows, y.Rows

	ySqNorms := make([]T, m)
	for j := 0; j < m; j++ {
		var s T
		for _, v := range y.Row(j) {
			s += v * v
		}
		ySqNorms[j] = s
	}

	effectiveThreads := threads.Resolve(cfg.threads)

	strategy := cfg.strategy
	if strategy == StrategyAuto {
		if 4*cfg.chunkSize*effectiveThreads < n {
			strategy = StrategyChunkOnX
		} else {
			strategy = StrategyChunkOnY
		}
	}

	indices := make([]int, n*k)

	pool := workerpool.New(effectiveThreads)
	defer pool.Close()

	cfg.logger.Debugf("argkmin: strategy=%v threads=%d chunk_size=%d n=%d m=%d k=%d",
		strategy, effectiveThreads, cfg.chunkSize, n, m, k)

	switch strategy {
	case StrategyChunkOnX:
		driver.ChunkOnX(pool, x, y, ySqNorms, k, cfg.chunkSize, indices)
	case StrategyChunkOnY:
		if err := driver.ChunkOnY(pool, x, y, ySqNorms, k, cfg.chunkSize, indices); err != nil {
			return Result[T]{}, err
		}
	default:
		return Result[T]{}, ErrInvalidStrategy
	}

	result := Result[T]{Indices: indices}
	if cfg.returnDistance {
		distances := make([]T, n*k)
		kernel.ExactDistances(pool, x, y, indices, k, distances)
		result.Distances = distances
	}
	return result, nil
}

// validate checks the preconditions spec §4.7 assigns to the public entry
// point: everything downstream of this call trusts its shapes.
func validate[T numeric.Float](x, y numeric.Matrix[T], k int) error {
	if x.Rows == 0 || y.Rows == 0 {
		return ErrEmptyInput
	}
	if x.Cols != y.Cols {
		return ErrDimensionMismatch
	}
	if len(x.Data) != x.Rows*x.Cols || len(y.Data) != y.Rows*y.Cols {
		return ErrDimensionMismatch
	}
	if k < 1 {
		return ErrInvalidK
	}
	if k > y.Rows {
		return ErrKExceedsReference
	}
	return nil
}

// String renders a Strategy as the name used in logs, matching the
// "auto"/"chunk_on_X"/"chunk_on_Y" vocabulary from the design this kernel
// follows.
func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyChunkOnX:
		return "chunk_on_X"
	case StrategyChunkOnY:
		return "chunk_on_Y"
	default:
		return "unknown"
	}
}
