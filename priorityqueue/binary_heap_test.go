package priorityqueue

import (
	"sync"
	"testing"
)

func TestBinaryHeapNaturalOrderingPollsLargestFirst(t *testing.T) {
	bh := NewBinaryHeap[int]()
	if !bh.IsEmpty() {
		t.Fatalf("IsEmpty() = false on a fresh heap")
	}

	for _, v := range []int{10, 5, 30, 20, 40, 35, 15} {
		bh.Add(v)
	}
	if got := bh.Size(); got != 7 {
		t.Fatalf("Size() = %d; want 7", got)
	}

	top, err := bh.Peek()
	if err != nil || top != 40 {
		t.Fatalf("Peek() = %v, %v; want 40, nil", top, err)
	}
	top, err = bh.Poll()
	if err != nil || top != 40 {
		t.Fatalf("Poll() = %v, %v; want 40, nil", top, err)
	}

	bh.Clear()
	if !bh.IsEmpty() {
		t.Fatalf("IsEmpty() = false after Clear()")
	}
	if _, err := bh.Poll(); err == nil {
		t.Fatalf("Poll() on empty heap returned nil error")
	}
}

// suggestion mirrors the shape candidate.Candidate actually feeds into
// NewBinaryHeapWithComparator via candidate.TopK: ranked best-first by
// (edit ascending, score descending).
type suggestion struct {
	word  string
	score uint32
	edit  uint8
}

func bestFirst(a, b suggestion) bool {
	if a.edit != b.edit {
		return a.edit < b.edit
	}
	return a.score > b.score
}

func TestCustomComparatorMatchesCandidateBestFirstOrder(t *testing.T) {
	bh := NewBinaryHeapWithComparator[suggestion](bestFirst)

	entries := []suggestion{
		{"cast", 80, 1},
		{"cat", 100, 0},
		{"cot", 60, 1},
		{"cut", 90, 2},
	}
	for _, e := range entries {
		bh.Add(e)
	}

	want := []suggestion{
		{"cat", 100, 0},
		{"cast", 80, 1},
		{"cot", 60, 1},
		{"cut", 90, 2},
	}
	for i, exp := range want {
		got, err := bh.Poll()
		if err != nil {
			t.Fatalf("Poll() at index %d: %v", i, err)
		}
		if got != exp {
			t.Fatalf("Poll() at index %d = %+v; want %+v", i, got, exp)
		}
	}
	if !bh.IsEmpty() {
		t.Fatalf("IsEmpty() = false after polling every entry")
	}
}

func TestPeekAndPollOnEmptyHeapReturnErrors(t *testing.T) {
	bh := NewBinaryHeapWithComparator[suggestion](bestFirst)
	if _, err := bh.Peek(); err == nil {
		t.Fatalf("Peek() on empty heap returned nil error")
	}
	if _, err := bh.Poll(); err == nil {
		t.Fatalf("Poll() on empty heap returned nil error")
	}
}

func TestSortReturnsBestFirstWithoutMutatingHeap(t *testing.T) {
	bh := NewBinaryHeapWithComparator[suggestion](bestFirst)
	bh.Add(suggestion{"cot", 60, 1})
	bh.Add(suggestion{"cat", 100, 0})
	bh.Add(suggestion{"cast", 80, 1})

	sorted := bh.Sort()
	want := []suggestion{{"cat", 100, 0}, {"cast", 80, 1}, {"cot", 60, 1}}
	if len(sorted) != len(want) {
		t.Fatalf("Sort() returned %d entries; want %d", len(sorted), len(want))
	}
	for i := range want {
		if sorted[i] != want[i] {
			t.Fatalf("Sort()[%d] = %+v; want %+v", i, sorted[i], want[i])
		}
	}
	if got := bh.Size(); got != 3 {
		t.Fatalf("Size() = %d after Sort(); want 3 (Sort must not drain the heap)", got)
	}
}

func TestConcurrentAddAndPollDrainsCleanly(t *testing.T) {
	bh := NewBinaryHeapWithComparator[suggestion](bestFirst)
	var wg sync.WaitGroup

	const writers = 20
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			bh.Add(suggestion{word: "w", score: uint32(i), edit: uint8(i % 3)})
		}(i)
	}
	wg.Wait()

	if got := bh.Size(); got != writers {
		t.Fatalf("Size() = %d after concurrent adds; want %d", got, writers)
	}

	drained := 0
	for {
		if _, err := bh.Poll(); err != nil {
			break
		}
		drained++
	}
	if drained != writers {
		t.Fatalf("drained %d entries; want %d", drained, writers)
	}
}
