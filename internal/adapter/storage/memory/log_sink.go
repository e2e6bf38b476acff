// Package memory holds process-local implementations of the storage ports,
// used when Redis is disabled.
package memory

import (
	"context"
	"sync"
)

// LogSink implements ports.LogSink in process memory.
type LogSink struct {
	mu       sync.RWMutex
	lines    []string
	maxLines int
}

// NewLogSink creates an in-memory log sink. maxLines <= 0 keeps every line.
func NewLogSink(maxLines int) *LogSink {
	return &LogSink{maxLines: maxLines}
}

func (s *LogSink) Append(_ context.Context, line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = append(s.lines, line)
	if s.maxLines > 0 && len(s.lines) > s.maxLines {
		s.lines = append([]string(nil), s.lines[len(s.lines)-s.maxLines:]...)
	}
	return nil
}

func (s *LogSink) Lines(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string(nil), s.lines...), nil
}

func (s *LogSink) Clear(_ context.Context) error {
	s.mu.Lock()
	s.lines = nil
	s.mu.Unlock()
	return nil
}
