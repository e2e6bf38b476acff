package memory

import (
	"context"
	"sync"
	"time"

	"payflow/internal/core/ports"
)

type window struct {
	id    int64
	count int64
}

// RateLimitStore implements ports.RateLimitStore with fixed-window counters
// held in memory. Counters are per process.
type RateLimitStore struct {
	mu      sync.Mutex
	windows map[string]window
	now     func() time.Time
}

// NewRateLimitStore creates an in-memory rate limit store.
func NewRateLimitStore() *RateLimitStore {
	return &RateLimitStore{
		windows: make(map[string]window),
		now:     time.Now,
	}
}

// Allow counts one request for key in the current window.
func (s *RateLimitStore) Allow(_ context.Context, key string, limit int64, win time.Duration) (*ports.RateLimitResult, error) {
	windowSecs := int64(win.Seconds())
	if windowSecs < 1 {
		windowSecs = 1
	}
	windowID := s.now().Unix() / windowSecs

	s.mu.Lock()
	w := s.windows[key]
	if w.id != windowID {
		w = window{id: windowID}
	}
	w.count++
	s.windows[key] = w
	s.mu.Unlock()

	return &ports.RateLimitResult{
		Allowed:   w.count <= limit,
		Limit:     limit,
		Remaining: max(limit-w.count, 0),
		ResetAt:   (windowID + 1) * windowSecs,
	}, nil
}
