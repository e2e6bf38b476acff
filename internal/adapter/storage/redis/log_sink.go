package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// LogSink implements ports.LogSink on a Redis list so every API replica
// sees the same execution log.
type LogSink struct {
	client   *goredis.Client
	key      string
	maxLines int64
}

// NewLogSink creates a Redis-backed log sink. maxLines <= 0 keeps every line.
func NewLogSink(client *goredis.Client, maxLines int64) *LogSink {
	return &LogSink{
		client:   client,
		key:      KeyPrefix + "logs",
		maxLines: maxLines,
	}
}

// Append pushes line to the tail of the log, trimming the oldest lines past maxLines.
func (s *LogSink) Append(ctx context.Context, line string) error {
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, s.key, line)
	if s.maxLines > 0 {
		pipe.LTrim(ctx, s.key, -s.maxLines, -1)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis log append: %w", err)
	}
	return nil
}

// Lines returns the whole log in append order.
func (s *LogSink) Lines(ctx context.Context) ([]string, error) {
	lines, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis log read: %w", err)
	}
	return lines, nil
}

// Clear drops the log.
func (s *LogSink) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis log clear: %w", err)
	}
	return nil
}
