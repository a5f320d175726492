/*
Package autocorrect is the public entry point: it owns the trie, the
shared worker pool, and the per-query stores, and exposes the
synchronous and streaming query APIs on top of package search.

Grounded on original_source/src/lib.rs, which plays the same role for
the Rust crate this module is rebuilt from: a thin façade that owns the
long-lived resources (dictionary, thread pool) and delegates the actual
search to the dynamic-programming module.
*/
package autocorrect

import (
	"sync"

	"github.com/Chopinsky/auto-correct/alphabet"
	"github.com/Chopinsky/auto-correct/candidate"
	"github.com/Chopinsky/auto-correct/config"
	"github.com/Chopinsky/auto-correct/lexicon"
	"github.com/Chopinsky/auto-correct/pool"
	"github.com/Chopinsky/auto-correct/search"
	"github.com/Chopinsky/auto-correct/store"
	"github.com/Chopinsky/auto-correct/trie"
)

// AutoCorrect holds a loaded dictionary and the shared concurrency
// resources a query needs. Its mutex guards the configuration and the
// dictionary rebuilds done by the setters, and is released before a
// query runs. Queries are not serialized: every call to Candidates or
// CandidatesAsync on one AutoCorrect uses the same VisitedStore/
// ResultStore pair, so two queries running at once share, and reset,
// that pair — see the note on Orchestrator in package search.
type AutoCorrect struct {
	mu     sync.Mutex
	cfg    config.Config
	trie   *trie.Trie
	pool   *pool.Pool
	orch   *search.Orchestrator
	closed bool
}

// New builds an AutoCorrect with the default configuration: max_edit=1,
// en-us locale, SpaceSensitive run mode, dictionary loaded from the
// default resource path.
func New() *AutoCorrect {
	return NewWithConfig(config.New())
}

// NewWithConfig builds an AutoCorrect from an explicit configuration,
// loading its dictionary immediately.
func NewWithConfig(cfg config.Config) *AutoCorrect {
	ac := &AutoCorrect{cfg: cfg, pool: pool.New(pool.DefaultWorkers)}
	ac.rebuild()
	return ac
}

// rebuild reloads the dictionary from the current configuration's
// DictPath and creates a fresh Orchestrator over it. Callers must hold
// ac.mu.
func (ac *AutoCorrect) rebuild() {
	ac.trie = lexicon.Load(ac.cfg.DictPath())
	ac.orch = search.New(
		ac.trie,
		alphabet.For(ac.cfg.Locale()),
		ac.pool,
		store.NewVisitedStore(),
		store.NewResultStore(),
	)
}

// Candidates runs a synchronous query against word, returning every
// unique dictionary match within the configured max edit distance,
// sorted best-first.
func (ac *AutoCorrect) Candidates(word string) []candidate.Candidate {
	ac.mu.Lock()
	orch := ac.orch
	maxEdit := ac.cfg.MaxEdit()
	ac.mu.Unlock()

	return orch.Candidates(word, maxEdit)
}

// CandidatesTopK runs the same query as Candidates (which sorts every
// match) and returns only the k best suggestions, extracted from that
// result with candidate.TopK.
func (ac *AutoCorrect) CandidatesTopK(word string, k int) []candidate.Candidate {
	return candidate.TopK(ac.Candidates(word), k)
}

// CandidatesAsync runs the same query as Candidates but streams each
// unique match to sink as soon as it is discovered. sink returning false
// stops forwarding further results for this query.
func (ac *AutoCorrect) CandidatesAsync(word string, sink func(candidate.Candidate) bool) {
	ac.mu.Lock()
	orch := ac.orch
	maxEdit := ac.cfg.MaxEdit()
	ac.mu.Unlock()

	orch.CandidatesAsync(word, maxEdit, sink)
}

// SetMaxEdit updates the maximum edit distance searched by future
// queries, clamped to [1,3]. It does not reload the dictionary.
func (ac *AutoCorrect) SetMaxEdit(maxEdit int) {
	ac.mu.Lock()
	defer ac.mu.Unlock()
	ac.cfg = ac.cfg.WithMaxEdit(maxEdit)
}

// SetLocale updates the active locale and rebuilds the dictionary from
// the new locale's resource path, unless an override dictionary is set.
func (ac *AutoCorrect) SetLocale(locale alphabet.Locale) {
	ac.mu.Lock()
	defer ac.mu.Unlock()
	ac.cfg = ac.cfg.WithLocale(locale)
	ac.rebuild()
}

// SetRunMode updates which dictionary file future loads resolve to and
// rebuilds the dictionary immediately.
func (ac *AutoCorrect) SetRunMode(mode config.RunMode) {
	ac.mu.Lock()
	defer ac.mu.Unlock()
	ac.cfg = ac.cfg.WithRunMode(mode)
	ac.rebuild()
}

// SetOverrideDict points future dictionary loads at an explicit path and
// rebuilds the dictionary immediately.
func (ac *AutoCorrect) SetOverrideDict(path string) {
	ac.mu.Lock()
	defer ac.mu.Unlock()
	ac.cfg = ac.cfg.WithOverrideDict(path)
	ac.rebuild()
}

// Config returns the currently active configuration.
func (ac *AutoCorrect) Config() config.Config {
	ac.mu.Lock()
	defer ac.mu.Unlock()
	return ac.cfg
}

// DictionarySize returns the number of distinct words currently loaded.
func (ac *AutoCorrect) DictionarySize() int {
	ac.mu.Lock()
	defer ac.mu.Unlock()
	return ac.trie.Size()
}

// Words returns every (word, score) pair currently loaded, in no
// particular order. Intended for diagnostics and dictionary export, not
// for the query hot path.
func (ac *AutoCorrect) Words() []trie.Entry {
	ac.mu.Lock()
	defer ac.mu.Unlock()
	return ac.trie.Words()
}

// Close releases the worker pool, blocking until every in-flight job has
// finished. An AutoCorrect must not be used after Close.
func (ac *AutoCorrect) Close() {
	ac.mu.Lock()
	if ac.closed {
		ac.mu.Unlock()
		return
	}
	ac.closed = true
	ac.mu.Unlock()
	ac.pool.Close()
}
