package embedding

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingEmbedder struct {
	calls int
	vec   []float32
	err   error
}

func (c *countingEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.vec, nil
}

func (c *countingEmbedder) Model() string { return "text-embedding-3-small" }

func newCacheFixture(t *testing.T, inner *countingEmbedder) (*CachedEmbedder, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewCachedEmbedder(inner, rdb, "cool-vibes-agent", time.Hour), mr
}

func TestCachedEmbedder_ServesRepeatCallsFromCache(t *testing.T) {
	inner := &countingEmbedder{vec: []float32{0.1, 0.2, 0.3}}
	cached, _ := newCacheFixture(t, inner)
	ctx := context.Background()

	first, err := cached.Embed(ctx, "prefers boutique hotels")
	require.NoError(t, err)
	second, err := cached.Embed(ctx, "prefers boutique hotels")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls, "second call should not reach the inner embedder")
}

func TestCachedEmbedder_DistinctTextsEmbedSeparately(t *testing.T) {
	inner := &countingEmbedder{vec: []float32{0.5}}
	cached, _ := newCacheFixture(t, inner)
	ctx := context.Background()

	_, err := cached.Embed(ctx, "likes hockey")
	require.NoError(t, err)
	_, err = cached.Embed(ctx, "travels with kids")
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls)
}

func TestCachedEmbedder_CorruptedEntryFallsThroughToInner(t *testing.T) {
	inner := &countingEmbedder{vec: []float32{1, 2}}
	cached, mr := newCacheFixture(t, inner)
	ctx := context.Background()

	key := cached.cacheKey("broken entry")
	require.NoError(t, mr.Set(key, "abc")) // not a multiple of 4 bytes

	vec, err := cached.Embed(ctx, "broken entry")
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2}, vec)
	assert.Equal(t, 1, inner.calls)
}

func TestCachedEmbedder_InnerErrorPropagates(t *testing.T) {
	inner := &countingEmbedder{err: errors.New("embedding backend down")}
	cached, mr := newCacheFixture(t, inner)

	_, err := cached.Embed(context.Background(), "anything")
	assert.Error(t, err)
	assert.Empty(t, mr.Keys(), "failed embeds must not be cached")
}

func TestCachedEmbedder_KeyLayout(t *testing.T) {
	inner := &countingEmbedder{vec: []float32{1}}
	cached, _ := newCacheFixture(t, inner)

	key := cached.cacheKey("some text")
	assert.True(t, strings.HasPrefix(key, "cool-vibes-agent:EmbedCache:text-embedding-3-small:"))
	assert.Len(t, key[strings.LastIndex(key, ":")+1:], 64, "suffix should be a sha256 hex digest")

	bare := NewCachedEmbedder(inner, nil, "", time.Hour)
	assert.True(t, strings.HasPrefix(bare.cacheKey("some text"), "EmbedCache:"))
}

func TestCachedEmbedder_WriteSetsTTL(t *testing.T) {
	inner := &countingEmbedder{vec: []float32{0.7}}
	cached, mr := newCacheFixture(t, inner)

	_, err := cached.Embed(context.Background(), "ttl check")
	require.NoError(t, err)

	key := cached.cacheKey("ttl check")
	assert.Equal(t, time.Hour, mr.TTL(key))
}
