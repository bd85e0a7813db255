// Package ratelimit implements fixed-window request limiting keyed by caller.
package ratelimit

import (
	"context"
	"time"
)

// Policy allows Max requests per key within each Window.
type Policy struct {
	Max    int
	Window time.Duration
}

type Decision struct {
	Allowed   bool
	Remaining int
	ResetIn   time.Duration
}

// RetryAfterSeconds rounds ResetIn up to whole seconds for the Retry-After header.
func (d Decision) RetryAfterSeconds() int {
	if d.ResetIn <= 0 {
		return 0
	}
	secs := d.ResetIn / time.Second
	if d.ResetIn%time.Second != 0 {
		secs++
	}
	return int(secs)
}

type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}
