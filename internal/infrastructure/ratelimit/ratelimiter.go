// Package ratelimit counts requests per key in fixed windows.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter reports whether one more request for key fits in the current window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type memoryWindow struct {
	start time.Time
	count int
}

// MemoryLimiter is a single-process fixed-window limiter, used when Redis is
// not configured.
type MemoryLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	now     func() time.Time
	windows map[string]*memoryWindow
}

// sweepThreshold bounds the map before expired windows are pruned.
const sweepThreshold = 4096

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:   limit,
		window:  window,
		now:     time.Now,
		windows: make(map[string]*memoryWindow),
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	if l.limit <= 0 {
		return true, nil
	}

	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.windows) >= sweepThreshold {
		for k, w := range l.windows {
			if now.Sub(w.start) >= l.window {
				delete(l.windows, k)
			}
		}
	}

	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= l.window {
		w = &memoryWindow{start: now}
		l.windows[key] = w
	}
	w.count++
	return w.count <= l.limit, nil
}
