package priorityqueue

import (
	"testing"
)

func BenchmarkBinaryHeapAdd(b *testing.B) {
	data := make([]int, 100000)
	for i := range data {
		data[i] = i
	}
	bh := NewBinaryHeap[int]()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, v := range data {
			bh.Add(v)
		}
		bh.Clear()
	}
}

func BenchmarkBinaryHeapPoll(b *testing.B) {
	data := make([]int, 100000)
	for i := range data {
		data[i] = i
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		bh := NewBinaryHeap[int]()
		for _, v := range data {
			bh.Add(v)
		}
		for !bh.IsEmpty() {
			_, _ = bh.Poll()
		}
	}
}

func BenchmarkBinaryHeapAddParallel(b *testing.B) {
	data := make([]int, 100000)
	for i := range data {
		data[i] = i
	}
	bh := NewBinaryHeap[int]()
	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for _, v := range data {
				bh.Add(v)
			}
			bh.Clear()
		}
	})
}

// generateSuggestions mirrors the volume and shape candidate.TopK actually
// feeds into NewBinaryHeapWithComparator: a flat slice of ranked
// (word, score, edit) entries, edit clustered in {0,1,2,3}.
func generateSuggestions(n int) []suggestion {
	out := make([]suggestion, n)
	for i := 0; i < n; i++ {
		out[i] = suggestion{
			word:  "w",
			score: uint32(n - i),
			edit:  uint8(i % 4),
		}
	}
	return out
}

// BenchmarkTopKAddWithBestFirstComparator benchmarks the exact construction
// path candidate.TopK drives: NewBinaryHeapWithComparator + one Add per
// candidate.
func BenchmarkTopKAddWithBestFirstComparator(b *testing.B) {
	entries := generateSuggestions(1000)

	for i := 0; i < b.N; i++ {
		h := NewBinaryHeapWithComparator(bestFirst)
		for _, e := range entries {
			h.Add(e)
		}
	}
}

// BenchmarkTopKPollBestK benchmarks draining only the top 10 entries out of
// a much larger heap, the shape candidate.TopK's bounded extraction takes.
func BenchmarkTopKPollBestK(b *testing.B) {
	entries := generateSuggestions(1000)
	const k = 10

	for i := 0; i < b.N; i++ {
		h := NewBinaryHeapWithComparator(bestFirst)
		for _, e := range entries {
			h.Add(e)
		}
		for j := 0; j < k; j++ {
			if _, err := h.Poll(); err != nil {
				break
			}
		}
	}
}

func BenchmarkBinaryHeapSort(b *testing.B) {
	entries := generateSuggestions(10000)

	bh := NewBinaryHeapWithComparator(bestFirst)
	for _, e := range entries {
		bh.Add(e)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bh.Sort()
	}
}
