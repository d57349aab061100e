package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cool-vibes/travelchat/internal/agent/model"
	logx "github.com/cool-vibes/travelchat/pkg/logger"
)

// CachedEmbedder is a read-through Redis cache in front of another
// embedder. Cache writes are best-effort; a failing cache never fails
// an Embed call.
type CachedEmbedder struct {
	inner model.Embedder
	rdb   redis.Cmdable
	ns    string
	ttl   time.Duration
}

func NewCachedEmbedder(inner model.Embedder, rdb redis.Cmdable, namespace string, ttl time.Duration) *CachedEmbedder {
	return &CachedEmbedder{inner: inner, rdb: rdb, ns: namespace, ttl: ttl}
}

func (c *CachedEmbedder) Model() string {
	return c.inner.Model()
}

func (c *CachedEmbedder) cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	suffix := fmt.Sprintf("EmbedCache:%s:%s", c.inner.Model(), hex.EncodeToString(sum[:]))
	if c.ns == "" {
		return suffix
	}
	return c.ns + ":" + suffix
}

func (c *CachedEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	key := c.cacheKey(text)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		if vec, derr := DecodeVector(b); derr == nil {
			return vec, nil
		}
		logx.Warn().Str("key", key).Msg("discarding undecodable cached embedding")
	} else if !errors.Is(err, redis.Nil) {
		logx.Warn().Err(err).Str("key", key).Msg("embedding cache read failed")
	}

	vec, err := c.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	if err := c.rdb.Set(ctx, key, EncodeVector(vec), c.ttl).Err(); err != nil {
		logx.Warn().Err(err).Str("key", key).Msg("embedding cache write failed")
	}
	return vec, nil
}

var _ model.Embedder = (*CachedEmbedder)(nil)
