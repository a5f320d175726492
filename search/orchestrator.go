/*
Package search implements the per-query fan-out/fan-in candidate
search: for each edit depth from 1 up to the configured maximum, it
enumerates edits from the strings produced at the previous depth, checks
each against the trie, emits matches to a result channel, and forwards
every not-yet-visited string (dictionary words included) to the next
depth — all driven by the worker pool
instead of direct goroutine spawns, so the whole search shares the
process-wide worker budget with any other concurrent user of the pool.

Grounded on original_source/src/dynamic.rs's `candidate` function: two
producer jobs (ins_repl, del_tran) write into a shared bounded result
channel and a shared bounded next-depth channel; a consumer-producer job
drains the next-depth channel and recurses. The channel-closing protocol
follows the design notes in spec.md §9: a sync.WaitGroup plays the role
of a clonable sender reference count — every goroutine that might still
write to the result channel holds one count, and the result channel is
closed only once the last one drops it.
*/
package search

import (
	"strings"
	"sync"

	"github.com/Chopinsky/auto-correct/alphabet"
	"github.com/Chopinsky/auto-correct/candidate"
	"github.com/Chopinsky/auto-correct/edit"
	"github.com/Chopinsky/auto-correct/pool"
	"github.com/Chopinsky/auto-correct/store"
	"github.com/Chopinsky/auto-correct/trie"
)

// resultChanCap and nextChanCap are the bounded channel capacities
// spec.md's concurrency model calls for.
const (
	resultChanCap = 64
	nextChanCap   = 256
)

// Orchestrator runs queries against a fixed trie using a shared worker
// pool and a pair of per-query visited/result stores. One Orchestrator
// serves one query at a time: Candidates and CandidatesAsync activate
// the stores at the start of a query and reset them at the end, per the
// "process-wide, not per-query" lifecycle spec.md §4.4 documents.
type Orchestrator struct {
	trie     *trie.Trie
	alphabet alphabet.Alphabet
	pool     *pool.Pool
	visited  *store.VisitedStore
	results  *store.ResultStore
}

// New builds an Orchestrator over an already-built trie, sharing the
// given worker pool and per-query stores with any other caller that
// composes the same façade.
func New(t *trie.Trie, a alphabet.Alphabet, p *pool.Pool, visited *store.VisitedStore, results *store.ResultStore) *Orchestrator {
	return &Orchestrator{trie: t, alphabet: a, pool: p, visited: visited, results: results}
}

// Candidates runs a synchronous query: it collects every unique
// candidate within maxEdit edits of word into a slice, sorted best-first
// per candidate.SortDescending.
func (o *Orchestrator) Candidates(word string, maxEdit uint8) []candidate.Candidate {
	out := o.run(word, maxEdit)

	results := make([]candidate.Candidate, 0, 16)
	for c := range out {
		results = append(results, c)
	}

	candidate.SortDescending(results)
	return results
}

// CandidatesAsync runs the same query but forwards each unique candidate
// to sink as soon as it's discovered, in no particular order. If sink
// returns false the orchestrator stops forwarding further results but
// keeps draining its internal channel until the search completes, so
// upstream producers never block on a send — their remaining output is
// simply discarded, per spec.md §5's cancellation contract. It returns
// only once the search has finished.
func (o *Orchestrator) CandidatesAsync(word string, maxEdit uint8, sink func(candidate.Candidate) bool) {
	out := o.run(word, maxEdit)

	for c := range out {
		if !sink(c) {
			for range out {
				// drain silently so producers never block on a full
				// channel after the caller has stopped listening
			}
			return
		}
	}
}

// run executes the full per-query protocol and returns a channel that
// yields every unique candidate as it is discovered, closing once the
// search is complete. It activates the shared stores at the start and
// resets them once every goroutine contributing to this query has
// finished.
func (o *Orchestrator) run(word string, maxEdit uint8) <-chan candidate.Candidate {
	o.visited.Activate()
	o.results.Activate()

	trimmed := strings.ToLower(strings.TrimSpace(word))

	out := make(chan candidate.Candidate, resultChanCap)
	var wg sync.WaitGroup

	// Early termination: the input itself may already be a dictionary
	// word. The search continues regardless, since neighbors at higher
	// scores may still exist at edit 1+.
	if score, ok := o.trie.Check(trimmed); ok {
		c := candidate.New(trimmed, score, 0)
		if dup := o.results.Publish(c); !dup {
			out <- c
		}
	}

	o.expand(trimmed, 0, 0, maxEdit, out, &wg)

	go func() {
		wg.Wait()
		close(out)
		o.visited.Reset()
		o.results.Reset()
	}()

	return out
}

// expand is the recursive fan-out step: it submits the two producer
// legs (insertions/replacements, deletions/transpositions) for word to
// the pool at depth editDist+1, and — if there is depth budget left —
// submits a consumer job that recurses into every non-terminal string
// the producers forward.
//
// expand itself runs synchronously on the calling goroutine; it never
// blocks on the jobs it submits. wg is incremented once per goroutine
// that might still write to out, mirroring a clonable sender reference
// count: the caller of run closes out only once wg reaches zero.
func (o *Orchestrator) expand(word string, marker uint32, editDist, maxEdit uint8, out chan<- candidate.Candidate, wg *sync.WaitGroup) {
	if editDist >= maxEdit || word == "" {
		return
	}

	currentEdit := editDist + 1

	var nextCh chan edit.Result
	if currentEdit < maxEdit {
		nextCh = make(chan edit.Result, nextChanCap)
	}

	var producers sync.WaitGroup
	producers.Add(2)

	wg.Add(2)
	o.pool.Submit(func() {
		defer wg.Done()
		defer producers.Done()
		o.emit(edit.InsRepl(word, marker, o.alphabet), currentEdit, out, nextCh)
	})
	o.pool.Submit(func() {
		defer wg.Done()
		defer producers.Done()
		o.emit(edit.DelTran(word, marker), currentEdit, out, nextCh)
	})

	if nextCh == nil {
		return
	}

	// Closing nextCh is determined solely by the two producer legs
	// completing: this goroutine does no search work of its own, so it
	// isn't counted in wg.
	go func() {
		producers.Wait()
		close(nextCh)
	}()

	wg.Add(1)
	o.pool.Submit(func() {
		defer wg.Done()
		for item := range nextCh {
			o.expand(item.Word, item.Marker, currentEdit, maxEdit, out, wg)
		}
	})
}

// emit applies the emission contract from spec.md §4.3 to a batch of
// edit results at the given depth: forward every not-yet-visited string,
// dictionary words included, to nextCh (when there is a next depth), and
// publish any dictionary match to out.
func (o *Orchestrator) emit(results []edit.Result, editDist uint8, out chan<- candidate.Candidate, nextCh chan<- edit.Result) {
	for _, r := range results {
		if nextCh != nil {
			if alreadyVisited := o.visited.Contains(r.Word); !alreadyVisited {
				nextCh <- r
			}
		}

		if score, ok := o.trie.Check(r.Word); ok {
			c := candidate.New(r.Word, score, editDist)
			if dup := o.results.Publish(c); !dup {
				out <- c
			}
		}
	}
}
