/*
Package pool provides the fixed-size worker pool the search orchestrator
submits fire-and-forget jobs to. It is the Go rendering of the
"run_job(FnOnce)" facility spec.md treats as an external collaborator: a
small group of goroutines draining a shared job queue.

The queue backing the pool is the teacher's own circular-buffer
queue.Queue, generalized from a comparable element type to `any` so it
can hold func() jobs directly (closures aren't comparable in Go, so the
original Queue[T comparable] couldn't be instantiated over them without
that change).

Concurrency:
  - Submit enqueues into the queue (itself RWMutex-protected) and signals
    one waiting worker; it never blocks on job execution.
  - Workers loop: wait for a job, run it, repeat, until the pool is
    closed and the queue has drained.
  - Close stops accepting new jobs and blocks until every already
    enqueued job has run.
*/
package pool

import (
	"sync"

	"github.com/Chopinsky/auto-correct/queue"
)

// Pool is a fixed-size group of worker goroutines draining a shared job
// queue. The zero value is not usable; construct one with New.
type Pool struct {
	mu      sync.Mutex
	cond    *sync.Cond
	jobs    *queue.Queue[func()]
	closed  bool
	workers sync.WaitGroup
}

// DefaultWorkers is the worker count spec.md's concurrency model calls
// for when a caller doesn't specify one.
const DefaultWorkers = 8

// New starts a Pool with the given number of worker goroutines. A
// non-positive count falls back to DefaultWorkers.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	p := &Pool{jobs: queue.NewQueue[func()]()}
	p.cond = sync.NewCond(&p.mu)

	p.workers.Add(workers)
	for i := 0; i < workers; i++ {
		go p.run()
	}
	return p
}

func (p *Pool) run() {
	defer p.workers.Done()
	for {
		p.mu.Lock()
		for p.jobs.IsEmpty() && !p.closed {
			p.cond.Wait()
		}
		job, err := p.jobs.Dequeue()
		p.mu.Unlock()

		if err != nil {
			if p.isClosed() {
				return
			}
			continue
		}

		job()
	}
}

func (p *Pool) isClosed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed && p.jobs.IsEmpty()
}

// Submit enqueues job for execution by some worker goroutine. Submit
// never blocks on the job itself; it only briefly holds the queue's
// internal lock to enqueue. Submitting after Close is a no-op: spec.md
// treats pool submission failure as a log-and-continue condition, never
// a panic.
func (p *Pool) Submit(job func()) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.jobs.Enqueue(job)
	p.mu.Unlock()
	p.cond.Signal()
}

// Close stops the pool from accepting new jobs and blocks until every
// already-submitted job has finished running and all worker goroutines
// have exited.
func (p *Pool) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.cond.Broadcast()
	p.workers.Wait()
}
