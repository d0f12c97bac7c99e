package cache_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/book-expert/tone-service/internal/cache"
	"github.com/book-expert/tone-service/internal/tone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingAnalyzer struct {
	calls atomic.Int32
}

func (c *countingAnalyzer) Analyze(_ context.Context, word string) tone.Analysis {
	c.calls.Add(1)

	return tone.Analyze(word)
}

func TestNew_RejectsInvalidSize(t *testing.T) {
	t.Parallel()

	_, err := cache.New(&countingAnalyzer{}, 0)
	require.ErrorIs(t, err, cache.ErrInvalidSize)
}

func TestAnalyze_ServesRepeatsFromCache(t *testing.T) {
	t.Parallel()

	next := &countingAnalyzer{}

	cached, err := cache.New(next, 8)
	require.NoError(t, err)

	first := cached.Analyze(context.Background(), "ขอบคุณ")
	second := cached.Analyze(context.Background(), "ขอบคุณ")

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), next.calls.Load())
	assert.Equal(t, 1, cached.Len())
}

func TestAnalyze_KeysByCleanedWord(t *testing.T) {
	t.Parallel()

	next := &countingAnalyzer{}

	cached, err := cache.New(next, 8)
	require.NoError(t, err)

	cached.Analyze(context.Background(), "กา")
	cached.Analyze(context.Background(), "  กา!")

	assert.Equal(t, int32(1), next.calls.Load())
	assert.Equal(t, 1, cached.Len())
}

func TestAnalyze_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	next := &countingAnalyzer{}

	cached, err := cache.New(next, 2)
	require.NoError(t, err)

	ctx := context.Background()
	cached.Analyze(ctx, "กา")
	cached.Analyze(ctx, "ขา")
	cached.Analyze(ctx, "กา")
	cached.Analyze(ctx, "คา")
	assert.Equal(t, int32(3), next.calls.Load())

	cached.Analyze(ctx, "กา")
	assert.Equal(t, int32(3), next.calls.Load())

	cached.Analyze(ctx, "ขา")
	assert.Equal(t, int32(4), next.calls.Load())
}

func TestPurge(t *testing.T) {
	t.Parallel()

	next := &countingAnalyzer{}

	cached, err := cache.New(next, 4)
	require.NoError(t, err)

	cached.Analyze(context.Background(), "กา")
	cached.Purge()
	assert.Zero(t, cached.Len())

	cached.Analyze(context.Background(), "กา")
	assert.Equal(t, int32(2), next.calls.Load())
}
