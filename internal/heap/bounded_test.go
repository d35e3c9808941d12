package heap

import (
	"math"
	"testing"
)

func TestNewSentinels(t *testing.T) {
	b := New[float32](3)
	for i, d := range b.Distances() {
		if !math.IsInf(float64(d), 1) {
			t.Errorf("dist[%d] = %v, want +Inf", i, d)
		}
	}
	for i, idx := range b.Indices() {
		if idx != -1 {
			t.Errorf("idx[%d] = %d, want -1", i, idx)
		}
	}
}

func TestPushRejectsWorse(t *testing.T) {
	b := New[float64](2)
	b.Push(5, 0)
	b.Push(3, 1)
	// Heap is full at (5,3); worst is 5. A candidate equal to or worse
	// than 5 must be rejected.
	b.Push(5, 2)
	b.Push(10, 3)

	found := map[int]bool{}
	for _, idx := range b.Indices() {
		found[idx] = true
	}
	if found[2] || found[3] {
		t.Fatalf("rejected candidates leaked into heap: %v", b.Indices())
	}
	if !found[0] || !found[1] {
		t.Fatalf("accepted candidates missing from heap: %v", b.Indices())
	}
}

func TestPushKeepsKSmallest(t *testing.T) {
	b := New[float32](3)
	vals := []float32{9, 2, 7, 1, 8, 3, 6, 4, 5, 0}
	for i, v := range vals {
		b.Push(v, i)
	}
	b.SimultaneousSort()

	want := []float32{0, 1, 2}
	for i, d := range b.Distances() {
		if d != want[i] {
			t.Errorf("dist[%d] = %v, want %v", i, d, want[i])
		}
	}
}

func TestSimultaneousSortOrdersAscending(t *testing.T) {
	b := New[float64](4)
	b.Push(3.0, 10)
	b.Push(1.0, 11)
	b.Push(4.0, 12)
	b.Push(2.0, 13)
	b.SimultaneousSort()

	wantDist := []float64{1.0, 2.0, 3.0, 4.0}
	wantIdx := []int{11, 13, 10, 12}
	for i := range wantDist {
		if b.Distances()[i] != wantDist[i] {
			t.Errorf("dist[%d] = %v, want %v", i, b.Distances()[i], wantDist[i])
		}
		if b.Indices()[i] != wantIdx[i] {
			t.Errorf("idx[%d] = %d, want %d", i, b.Indices()[i], wantIdx[i])
		}
	}
}

func TestSimultaneousSortBreaksTiesByIndex(t *testing.T) {
	b := New[float32](4)
	// Four candidates tie at distance 1, pushed out of index order.
	b.Push(1, 3)
	b.Push(1, 1)
	b.Push(1, 0)
	b.Push(1, 2)
	b.SimultaneousSort()

	wantIdx := []int{0, 1, 2, 3}
	for i, idx := range b.Indices() {
		if idx != wantIdx[i] {
			t.Errorf("idx[%d] = %d, want %d", i, idx, wantIdx[i])
		}
	}
}

func TestResetRestoresSentinels(t *testing.T) {
	b := New[float32](2)
	b.Push(1, 0)
	b.Push(2, 1)
	b.Reset()

	for i, d := range b.Distances() {
		if !math.IsInf(float64(d), 1) {
			t.Errorf("dist[%d] = %v after Reset, want +Inf", i, d)
		}
	}
	for i, idx := range b.Indices() {
		if idx != -1 {
			t.Errorf("idx[%d] = %d after Reset, want -1", i, idx)
		}
	}
}

func TestKEqualsOne(t *testing.T) {
	b := New[float64](1)
	b.Push(5, 0)
	b.Push(1, 1)
	b.Push(9, 2)
	b.SimultaneousSort()

	if b.Distances()[0] != 1 || b.Indices()[0] != 1 {
		t.Fatalf("k=1 heap = (%v, %d), want (1, 1)", b.Distances()[0], b.Indices()[0])
	}
}
