/*
Package candidate defines the Candidate model the search engine emits and
the total order that ranks them "best first".

Identity for deduplication purposes is Word alone: two candidates with
the same word but different edit distances are treated as equal, so in a
breadth-first search the first-discovered (and therefore minimal) edit
distance always wins. Ordering is separate from identity: Less compares
(Edit, Score) so that a smaller edit distance always outranks a larger
one, and within equal edit distance a higher score outranks a lower one.
*/
package candidate

import (
	"math"
	"sort"

	"github.com/Chopinsky/auto-correct/priorityqueue"
)

// Candidate is one scored correction: the dictionary word, its lexicon
// frequency score, and the edit distance at which it was discovered.
type Candidate struct {
	Word  string
	Score uint32
	Edit  uint8
}

// New constructs a Candidate. It exists mainly so call sites read as
// candidate.New(word, score, edit) instead of a bare struct literal,
// matching the constructor convention the rest of this module follows.
func New(word string, score uint32, edit uint8) Candidate {
	return Candidate{Word: word, Score: score, Edit: edit}
}

// Less reports whether a ranks worse than b under the authoritative
// ordering: smaller edit distance is better, and within equal edit
// distance higher score is better. Equivalently, a.Less(b) is true when b
// should be sorted ahead of a in a "best first" listing.
func (a Candidate) Less(b Candidate) bool {
	if a.Edit != b.Edit {
		return a.Edit > b.Edit
	}
	return a.Score < b.Score
}

// WeightedLess is the alternate scoring policy noted in the design notes
// but not mandated: it ranks by sqrt(edit) * score instead of the
// lexicographic (edit, score) order. It is provided for experimentation
// and is not used by the public façade's default sort.
func (a Candidate) WeightedLess(b Candidate) bool {
	weight := func(c Candidate) float64 {
		// edit 0 (the input itself being a dictionary word) should not
		// zero out its weight, so the multiplier floors at 1.
		d := math.Max(float64(c.Edit), 1)
		return math.Sqrt(d) * float64(c.Score)
	}
	return weight(a) < weight(b)
}

// SortDescending sorts candidates best-first in place using the
// authoritative (edit ascending, score descending) order.
func SortDescending(candidates []Candidate) {
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[j].Less(candidates[i])
	})
}

// TopK returns the k best candidates in best-first order without fully
// sorting the input: every candidate goes into a max-heap and only the
// first k are polled back out. Used by callers that
// only want a handful of suggestions out of a much larger candidate set
// (e.g. an interactive console capping its display at a few results).
func TopK(candidates []Candidate, k int) []Candidate {
	if k <= 0 || len(candidates) == 0 {
		return nil
	}

	heap := priorityqueue.NewBinaryHeapWithComparator[Candidate](func(a, b Candidate) bool {
		return b.Less(a)
	})
	for _, c := range candidates {
		heap.Add(c)
	}

	if k > len(candidates) {
		k = len(candidates)
	}
	out := make([]Candidate, 0, k)
	for i := 0; i < k; i++ {
		v, err := heap.Poll()
		if err != nil {
			break
		}
		out = append(out, v)
	}
	return out
}
