package scrape

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/distill"
	"golang.org/x/time/rate"
)

// DefaultIdleTimeout is how long a host may go unscraped before its limiter
// is dropped.
const DefaultIdleTimeout = 10 * time.Minute

var _ distill.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out scrapes of the same host using token buckets.
// Hosts are limited independently. Limiters of idle hosts whose bucket has
// refilled are evicted, so the set of tracked hosts stays bounded in a
// long-running server.
type DomainLimiter struct {
	mu        sync.Mutex
	hosts     map[string]*hostLimiter
	rps       float64
	idle      time.Duration
	lastSweep time.Time
}

type hostLimiter struct {
	limiter  *rate.Limiter
	lastUsed time.Time
}

// LimiterOption configures a DomainLimiter.
type LimiterOption func(*DomainLimiter)

// WithIdleTimeout sets how long an unused host limiter is kept.
func WithIdleTimeout(d time.Duration) LimiterOption {
	return func(l *DomainLimiter) {
		if d > 0 {
			l.idle = d
		}
	}
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// per host with a burst of 1.
func NewDomainLimiter(rps float64, opts ...LimiterOption) *DomainLimiter {
	l := &DomainLimiter{
		hosts: make(map[string]*hostLimiter),
		rps:   rps,
		idle:  DefaultIdleTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Wait blocks until the host may be scraped again.
func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	now := time.Now()

	l.mu.Lock()
	l.sweep(now)
	h, ok := l.hosts[domain]
	if !ok {
		h = &hostLimiter{limiter: rate.NewLimiter(rate.Limit(l.rps), 1)}
		l.hosts[domain] = h
	}
	h.lastUsed = now
	l.mu.Unlock()

	return h.limiter.Wait(ctx)
}

// Hosts returns the number of hosts currently tracked.
func (l *DomainLimiter) Hosts() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.hosts)
}

// sweep drops idle hosts at most once per idle period. A limiter with a
// pending reservation has less than one token and is kept.
// Must be called with mu held.
func (l *DomainLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.idle {
		return
	}
	l.lastSweep = now
	for host, h := range l.hosts {
		if now.Sub(h.lastUsed) >= l.idle && h.limiter.TokensAt(now) >= 1 {
			delete(l.hosts, host)
		}
	}
}
