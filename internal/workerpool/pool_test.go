// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestTileEnd(t *testing.T) {
	tile := Tile{Start: 5, Len: 3}
	if got := tile.End(); got != 8 {
		t.Errorf("End() = %d, want 8", got)
	}
}

func TestParallelForCoversEveryIndexExactlyOnce(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelFor(n, func(work Tile) {
		for i := work.Start; i < work.End(); i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

// TestParallelForOverTileSlice mirrors how the k-NN drivers actually call
// ParallelFor: n is the length of a []Tile produced by tiling a matrix's
// rows, and fn indexes back into that slice over its assigned work.Start..
// work.End() range rather than treating the Tile as raw data itself.
func TestParallelForOverTileSlice(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	rowTiles := []Tile{{0, 10}, {10, 10}, {20, 10}, {30, 10}, {40, 5}}
	touched := make([]int, len(rowTiles))

	pool.ParallelFor(len(rowTiles), func(work Tile) {
		for ti := work.Start; ti < work.End(); ti++ {
			touched[ti] = rowTiles[ti].Len
		}
	})

	for i, rt := range rowTiles {
		if touched[i] != rt.Len {
			t.Errorf("touched[%d] = %d, want %d", i, touched[i], rt.Len)
		}
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	// Test with n smaller than workers
	n := 3
	var count atomic.Int32

	pool.ParallelFor(n, func(work Tile) {
		count.Add(int32(work.Len))
	})

	if count.Load() != int32(n) {
		t.Errorf("count = %d, want %d", count.Load(), n)
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	pool.ParallelFor(0, func(work Tile) {
		called = true
	})

	if called {
		t.Error("ParallelFor with n=0 should not call fn")
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // Should not panic
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	n := 100
	results := make([]int, n)

	// Should still work (sequential fallback)
	pool.ParallelFor(n, func(work Tile) {
		for i := work.Start; i < work.End(); i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0) // Use GOMAXPROCS
	defer pool.Close()

	n := 1000

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ParallelFor(n, func(work Tile) {
			// Simulate work
			for j := work.Start; j < work.End(); j++ {
				_ = j * j
			}
		})
	}
}
