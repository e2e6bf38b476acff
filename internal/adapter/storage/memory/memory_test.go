package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogSink_AppendOrder(t *testing.T) {
	sink := NewLogSink(0)
	ctx := context.Background()

	require.NoError(t, sink.Append(ctx, "a"))
	require.NoError(t, sink.Append(ctx, "b"))

	lines, err := sink.Lines(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)

	lines[0] = "mutated"
	again, _ := sink.Lines(ctx)
	assert.Equal(t, "a", again[0], "Lines returns a copy")
}

func TestLogSink_MaxLines(t *testing.T) {
	sink := NewLogSink(2)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		require.NoError(t, sink.Append(ctx, fmt.Sprint(i)))
	}

	lines, _ := sink.Lines(ctx)
	assert.Equal(t, []string{"2", "3"}, lines)
}

func TestLogSink_Clear(t *testing.T) {
	sink := NewLogSink(0)
	ctx := context.Background()
	require.NoError(t, sink.Append(ctx, "a"))

	require.NoError(t, sink.Clear(ctx))

	lines, _ := sink.Lines(ctx)
	assert.Empty(t, lines)
}

func TestLogSink_ConcurrentAppend(t *testing.T) {
	sink := NewLogSink(0)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = sink.Append(ctx, "x")
		}()
	}
	wg.Wait()

	lines, _ := sink.Lines(ctx)
	assert.Len(t, lines, 50)
}

func TestRateLimitStore_Allow(t *testing.T) {
	store := NewRateLimitStore()
	fixed := time.Unix(1_700_000_000, 0)
	store.now = func() time.Time { return fixed }
	ctx := context.Background()

	for i := int64(1); i <= 2; i++ {
		res, err := store.Allow(ctx, "k", 2, time.Minute)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 2-i, res.Remaining)
	}

	res, err := store.Allow(ctx, "k", 2, time.Minute)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, int64(0), res.Remaining)
	assert.Equal(t, (fixed.Unix()/60+1)*60, res.ResetAt)

	other, _ := store.Allow(ctx, "other", 2, time.Minute)
	assert.True(t, other.Allowed)

	store.now = func() time.Time { return fixed.Add(time.Minute) }
	res, _ = store.Allow(ctx, "k", 2, time.Minute)
	assert.True(t, res.Allowed, "new window resets the counter")
}
