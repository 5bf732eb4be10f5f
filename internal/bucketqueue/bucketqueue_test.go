package bucketqueue_test

import (
	"testing"

	"github.com/RagnarGrootKoerkamp/astar-pairwise-aligner/internal/bucketqueue"
)

func TestPopMinReturnsLowestFFirst(t *testing.T) {
	q := bucketqueue.New[string]()
	q.Push("c", 5, 1, 0)
	q.Push("a", 2, 1, 0)
	q.Push("b", 3, 1, 0)

	wantOrder := []string{"a", "b", "c"}
	for _, want := range wantOrder {
		item, _, ok := q.PopMin()
		if !ok {
			t.Fatalf("PopMin: queue empty early, wanted %q", want)
		}
		if item.Value != want {
			t.Errorf("PopMin() = %q, want %q", item.Value, want)
		}
	}
	if _, _, ok := q.PopMin(); ok {
		t.Errorf("PopMin() on empty queue returned ok=true")
	}
}

func TestTieBreakPrefersLargerGThenLargerTie(t *testing.T) {
	q := bucketqueue.New[string]()
	q.Push("low-g", 10, 1, 100)
	q.Push("high-g-low-tie", 10, 5, 1)
	q.Push("high-g-high-tie", 10, 5, 2)

	item, _, ok := q.PopMin()
	if !ok || item.Value != "high-g-high-tie" {
		t.Fatalf("PopMin() = %+v, ok=%v, want high-g-high-tie", item, ok)
	}
	item, _, ok = q.PopMin()
	if !ok || item.Value != "high-g-low-tie" {
		t.Fatalf("PopMin() = %+v, ok=%v, want high-g-low-tie", item, ok)
	}
	item, _, ok = q.PopMin()
	if !ok || item.Value != "low-g" {
		t.Fatalf("PopMin() = %+v, ok=%v, want low-g", item, ok)
	}
}

func TestPushBelowCurrentBaseGrowsBucketsInPlace(t *testing.T) {
	q := bucketqueue.New[int]()
	q.Push(100, 10, 0, 0)
	q.Push(1, 1, 0, 0) // f below the first push's f: exercises the front-growth path.

	item, f, ok := q.PopMin()
	if !ok || item.Value != 1 || f != 1 {
		t.Fatalf("PopMin() = value %d f %d ok %v, want value 1 f 1", item.Value, f, ok)
	}
}

func TestShiftLowersQueuedKeysOnly(t *testing.T) {
	q := bucketqueue.New[string]()
	q.Push("old", 10, 0, 0)
	q.Shift(4)
	q.Push("new", 6, 0, 0) // pushed post-shift at the same absolute key as "old" after its shift

	_, f1, ok1 := q.PopMin()
	_, f2, ok2 := q.PopMin()
	if !ok1 || !ok2 {
		t.Fatalf("expected two items, got ok1=%v ok2=%v", ok1, ok2)
	}
	if f1 != f2 {
		t.Errorf("after Shift, old and new item keys = %d, %d, want equal", f1, f2)
	}
}

func TestEmptyReportsQueueState(t *testing.T) {
	q := bucketqueue.New[int]()
	if !q.Empty() {
		t.Errorf("Empty() on fresh queue = false, want true")
	}
	q.Push(1, 0, 0, 0)
	if q.Empty() {
		t.Errorf("Empty() after Push = true, want false")
	}
	q.PopMin()
	if !q.Empty() {
		t.Errorf("Empty() after draining queue = false, want true")
	}
}
