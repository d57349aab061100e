package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cloudwego/eino/compose"
	"github.com/redis/go-redis/v9"

	errx "github.com/cool-vibes/travelchat/internal/core/error"
	logx "github.com/cool-vibes/travelchat/pkg/logger"
)

// RedisCheckPointStore persists agent runner checkpoints so interrupted
// runs survive a process restart.
type RedisCheckPointStore struct {
	rdb redis.Cmdable
	ns  string
	ttl time.Duration
}

func NewRedisCheckPointStore(rdb redis.Cmdable, namespace string, ttl time.Duration) *RedisCheckPointStore {
	return &RedisCheckPointStore{rdb: rdb, ns: namespace, ttl: ttl}
}

func (s *RedisCheckPointStore) checkpointKey(id string) string {
	if s.ns == "" {
		return fmt.Sprintf("Checkpoints:%s", id)
	}
	return fmt.Sprintf("%s:Checkpoints:%s", s.ns, id)
}

func (s *RedisCheckPointStore) Set(ctx context.Context, checkPointID string, checkPoint []byte) error {
	key := s.checkpointKey(checkPointID)
	if err := s.rdb.Set(ctx, key, checkPoint, s.ttl).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to write checkpoint")
		return errx.WrapRedis(err)
	}
	return nil
}

func (s *RedisCheckPointStore) Get(ctx context.Context, checkPointID string) ([]byte, bool, error) {
	key := s.checkpointKey(checkPointID)
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to read checkpoint")
		return nil, false, errx.WrapRedis(err)
	}
	return b, true, nil
}

var _ compose.CheckPointStore = (*RedisCheckPointStore)(nil)
