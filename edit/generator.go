/*
Package edit generates, for a given word, every string reachable by a
single delete, insert, replace, or adjacent transposition.

Two complementary procedures split the work so it can be handed to two
worker-pool jobs: InsRepl produces the insertion and replacement edits,
DelTran produces the deletion and transposition edits. Both carry a
32-bit redundancy marker along each edit path: bit p set means position p
in the input string was introduced by a previous insertion and must not
host another insert or replace in any descendant edit. The marker is a
heuristic pruning aid, not a canonical form — the visited store is the
correctness net that catches whatever the marker misses.

Algorithm Notes:
  - Edits are produced eagerly into a slice rather than streamed, since
    the fan-out pipeline (see package search) already bounds the depth
    and the alphabet at 26 letters; a single call never produces more
    than O(len(w) * 26) results.
  - Marker positions beyond bit 31 fall off the top on a left shift and
    are simply lost, which saturates the pruning effect at long inputs
    rather than expanding the marker's width: acceptable per spec, since
    the visited store still prevents duplicate expansion.
*/
package edit

import (
	"strings"

	"github.com/Chopinsky/auto-correct/alphabet"
)

// Result is one string produced by an edit, along with the redundancy
// marker that should accompany it to the next depth.
type Result struct {
	Word   string
	Marker uint32
}

// shiftMarkerForInsert computes the outgoing marker after an insertion at
// pos: bits at positions >= pos shift left by one (making room for the
// new character), then bit pos itself is set to mark the freshly
// inserted position. Bits that shift past bit 31 are dropped.
func shiftMarkerForInsert(marker uint32, pos int) uint32 {
	if pos >= 32 {
		return marker
	}
	lowMask := uint32(1)<<uint(pos) - 1
	low := marker & lowMask
	high := marker &^ lowMask
	high <<= 1
	out := low | high
	out |= 1 << uint(pos)
	return out
}

func markerBitSet(marker uint32, pos int) bool {
	if pos >= 32 {
		return false
	}
	return marker&(1<<uint(pos)) != 0
}

// InsRepl emits every string reachable from w by inserting or replacing a
// single character, for every alphabet letter and every position
// 0..len(w) inclusive. Positions whose marker bit is set are skipped:
// they were introduced by a previous insertion in this edit path and must
// not be edited again.
func InsRepl(w string, marker uint32, a alphabet.Alphabet) []Result {
	runes := []rune(w)
	n := len(runes)
	results := make([]Result, 0, (n+1)*a.Len())

	for pos := 0; pos <= n; pos++ {
		if markerBitSet(marker, pos) {
			continue
		}

		if pos == 0 {
			for _, r := range a.Letters() {
				var b strings.Builder
				b.Grow(n + 1)
				b.WriteRune(r)
				b.WriteString(w)
				results = append(results, Result{
					Word:   b.String(),
					Marker: shiftMarkerForInsert(marker, 0),
				})
			}
			continue
		}

		left := string(runes[:pos])
		right := string(runes[pos:])

		for _, r := range a.Letters() {
			// insert dup: r at pos==1 or pos==n-1 reproduces a word
			// already emitted by inserting r one position over; the
			// replace below is unaffected and still runs for this r.
			skipInsert := (pos == 1 && r == runes[0]) ||
				(n > 2 && pos == n-1 && r == runes[n-1])

			if !skipInsert {
				var ins strings.Builder
				ins.Grow(n + 1)
				ins.WriteString(left)
				ins.WriteRune(r)
				ins.WriteString(right)
				results = append(results, Result{
					Word:   ins.String(),
					Marker: shiftMarkerForInsert(marker, pos),
				})
			}

			if r != runes[pos-1] {
				var rep strings.Builder
				rep.Grow(n)
				rep.WriteString(string(runes[:pos-1]))
				rep.WriteRune(r)
				rep.WriteString(right)
				results = append(results, Result{
					Word:   rep.String(),
					Marker: marker,
				})
			}
		}
	}

	return results
}

// DelTran emits every string reachable from w by deleting a single
// character or transposing two adjacent characters, for every position
// 1..len(w). Neither operation introduces a new insertion, so the
// outgoing marker is always unchanged.
func DelTran(w string, marker uint32) []Result {
	runes := []rune(w)
	n := len(runes)
	results := make([]Result, 0, 2*n)

	for pos := 1; pos <= n; pos++ {
		left := string(runes[:pos-1])
		del := runes[pos-1]
		right := runes[pos:]

		if pos < n && del == right[0] {
			// deleting or transposing a repeated character produces the
			// same string as the neighboring position already did
			continue
		}

		results = append(results, Result{
			Word:   left + string(right),
			Marker: marker,
		})

		if pos < n {
			var t strings.Builder
			t.Grow(n)
			t.WriteString(left)
			t.WriteRune(right[0])
			t.WriteRune(del)
			t.WriteString(string(right[1:]))
			results = append(results, Result{
				Word:   t.String(),
				Marker: marker,
			})
		}
	}

	return results
}
