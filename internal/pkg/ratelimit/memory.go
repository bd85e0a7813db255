package ratelimit

import (
	"context"
	"sync"
	"time"

	"rugboost-api/internal/pkg/clock"
)

type window struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter keeps counters in process memory. Instances do not share
// state, so under horizontal scaling the limit holds per instance only.
type MemoryLimiter struct {
	mu      sync.Mutex
	policy  Policy
	clock   clock.Clock
	entries map[string]*window
}

func NewMemoryLimiter(policy Policy, clk clock.Clock) *MemoryLimiter {
	return &MemoryLimiter{
		policy:  policy,
		clock:   clk,
		entries: make(map[string]*window),
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	l.pruneLocked(now)

	w, ok := l.entries[key]
	if !ok || now.After(w.resetAt) {
		l.entries[key] = &window{count: 1, resetAt: now.Add(l.policy.Window)}
		return Decision{
			Allowed:   true,
			Remaining: l.policy.Max - 1,
			ResetIn:   l.policy.Window,
		}, nil
	}

	if w.count >= l.policy.Max {
		return Decision{Allowed: false, Remaining: 0, ResetIn: w.resetAt.Sub(now)}, nil
	}

	w.count++
	return Decision{
		Allowed:   true,
		Remaining: l.policy.Max - w.count,
		ResetIn:   w.resetAt.Sub(now),
	}, nil
}

// Len reports the number of live counters.
func (l *MemoryLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *MemoryLimiter) pruneLocked(now time.Time) {
	for k, w := range l.entries {
		if now.After(w.resetAt) {
			delete(l.entries, k)
		}
	}
}
