package rod

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/fwojciec/distill"
	"golang.org/x/sync/semaphore"
)

// Ensure Pool implements distill.PagePool at compile time.
var _ distill.PagePool = (*Pool)(nil)

// PageSource opens browser pages for the pool.
type PageSource interface {
	NewPage(ctx context.Context) (distill.Page, error)
	Close() error
}

// Pool runs page tasks with bounded concurrency. Each task gets a fresh page
// that is closed once the task returns.
//
// Pool is safe for concurrent use.
type Pool struct {
	source PageSource
	sem    *semaphore.Weighted

	mu     sync.Mutex
	closed bool
	jobs   sync.WaitGroup

	active    atomic.Int64
	peak      atomic.Int64
	completed atomic.Int64
	failed    atomic.Int64

	closeOnce sync.Once
	closeErr  error
}

// NewPool creates a pool that runs at most maxConcurrency tasks at a time.
// A non-positive maxConcurrency uses distill.DefaultMaxConcurrency.
func NewPool(source PageSource, maxConcurrency int) *Pool {
	if maxConcurrency <= 0 {
		maxConcurrency = distill.DefaultMaxConcurrency
	}
	return &Pool{
		source: source,
		sem:    semaphore.NewWeighted(int64(maxConcurrency)),
	}
}

// Execute waits for a free slot, opens a page and runs task on it.
func (p *Pool) Execute(ctx context.Context, url string, task distill.TaskFunc) (string, error) {
	if p == nil || p.source == nil {
		return "", distill.Errorf(distill.EINTERNAL, "page pool not initialized")
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return "", distill.Errorf(distill.EINTERNAL, "page pool is closed")
	}
	p.jobs.Add(1)
	p.mu.Unlock()
	defer p.jobs.Done()

	if err := p.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer p.sem.Release(1)

	p.enter()
	result, err := p.run(ctx, url, task)
	p.leave(err)

	return result, err
}

func (p *Pool) run(ctx context.Context, url string, task distill.TaskFunc) (result string, err error) {
	page, err := p.source.NewPage(ctx)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = page.Close()
	}()
	defer func() {
		if r := recover(); r != nil {
			err = distill.Errorf(distill.EINTERNAL, "page task panicked: %v", r)
		}
	}()

	return task(ctx, page, url)
}

func (p *Pool) enter() {
	n := p.active.Add(1)
	for {
		peak := p.peak.Load()
		if n <= peak || p.peak.CompareAndSwap(peak, n) {
			return
		}
	}
}

func (p *Pool) leave(err error) {
	p.active.Add(-1)
	if err != nil {
		p.failed.Add(1)
		return
	}
	p.completed.Add(1)
}

// Stats returns a snapshot of pool activity.
func (p *Pool) Stats() distill.PoolStats {
	if p == nil {
		return distill.PoolStats{}
	}
	return distill.PoolStats{
		Active:    p.active.Load(),
		Peak:      p.peak.Load(),
		Completed: p.completed.Load(),
		Failed:    p.failed.Load(),
	}
}

// Close stops accepting tasks, waits for queued and running tasks and then
// closes the page source. Close is safe to call multiple times.
func (p *Pool) Close() error {
	if p == nil {
		return nil
	}
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()

		p.jobs.Wait()

		if p.source != nil {
			if err := p.source.Close(); err != nil {
				p.closeErr = fmt.Errorf("closing page source: %w", err)
			}
		}
	})
	return p.closeErr
}
