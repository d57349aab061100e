package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/cool-vibes/travelchat/internal/agent/model"
	errx "github.com/cool-vibes/travelchat/internal/core/error"
	"github.com/cool-vibes/travelchat/internal/embedding"
	logx "github.com/cool-vibes/travelchat/pkg/logger"
)

const scanBatchSize = 100

// RedisPreferenceStore keeps user preferences in two layouts: a shared
// hash mapping user name to a JSON insight array, and one hash per
// insight carrying the embedding for similarity search. The search is a
// brute-force scan; record counts here are a handful per user.
type RedisPreferenceStore struct {
	rdb      redis.Cmdable
	embedder model.Embedder // nil when the vectorizer is unavailable
	ns       string
	topK     int
	minScore float64
}

func NewRedisPreferenceStore(rdb redis.Cmdable, embedder model.Embedder, cfg model.MemoryConfig) *RedisPreferenceStore {
	return &RedisPreferenceStore{
		rdb:      rdb,
		embedder: embedder,
		ns:       cfg.Namespace,
		topK:     cfg.TopK,
		minScore: cfg.MinScore,
	}
}

func (s *RedisPreferenceStore) preferencesKey() string {
	if s.ns == "" {
		return "Preferences"
	}
	return s.ns + ":Preferences"
}

func (s *RedisPreferenceStore) userPrefKey(userName, id string) string {
	return fmt.Sprintf("%s:%s", s.userPrefPrefix(userName), id)
}

// userPrefPattern returns the scan pattern for a user's vector records,
// or for every user when userName is empty.
func (s *RedisPreferenceStore) userPrefPattern(userName string) string {
	if userName == "" {
		return s.userPrefPrefix("") + "*"
	}
	return s.userPrefPrefix(userName) + ":*"
}

func (s *RedisPreferenceStore) userPrefPrefix(userName string) string {
	prefix := "UserPref"
	if s.ns != "" {
		prefix = s.ns + ":UserPref"
	}
	if userName == "" {
		return prefix + ":"
	}
	return fmt.Sprintf("%s:%s", prefix, userName)
}

func (s *RedisPreferenceStore) ListInsights(ctx context.Context, userName string) ([]model.Insight, error) {
	raw, err := s.rdb.HGet(ctx, s.preferencesKey(), userName).Result()
	if err != nil {
		if err == redis.Nil {
			return []model.Insight{}, nil
		}
		logx.Error().Err(err).Str("user", userName).Msg("failed to read preferences hash")
		return nil, errx.WrapRedis(err)
	}

	var insights []model.Insight
	if err := json.Unmarshal([]byte(raw), &insights); err != nil {
		logx.Error().Err(err).Str("user", userName).Msg("failed to decode insight array")
		return nil, fmt.Errorf("decode insights for %q: %w", userName, err)
	}
	return insights, nil
}

func (s *RedisPreferenceStore) SaveInsight(ctx context.Context, userName, text, source string) error {
	insights, err := s.ListInsights(ctx, userName)
	if err != nil {
		return err
	}

	insight := model.Insight{
		Insight:   text,
		Source:    source,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	insights = append(insights, insight)

	b, err := json.Marshal(insights)
	if err != nil {
		return fmt.Errorf("encode insights for %q: %w", userName, err)
	}
	if err := s.rdb.HSet(ctx, s.preferencesKey(), userName, b).Err(); err != nil {
		logx.Error().Err(err).Str("user", userName).Msg("failed to write preferences hash")
		return errx.WrapRedis(err)
	}

	// The hash entry is the source of truth; the vector record is an
	// index that can be missing when the vectorizer is down.
	s.writeVectorRecord(ctx, userName, insight)
	return nil
}

func (s *RedisPreferenceStore) writeVectorRecord(ctx context.Context, userName string, insight model.Insight) {
	if s.embedder == nil {
		logx.Debug().Str("user", userName).Msg("no vectorizer configured, skipping vector record")
		return
	}

	vec, err := s.embedder.Embed(ctx, insight.Insight)
	if err != nil {
		logx.Warn().Err(err).Str("user", userName).Msg("vectorizer failed, insight stored without vector record")
		return
	}

	key := s.userPrefKey(userName, uuid.NewString())
	fields := map[string]any{
		"user_name":       userName,
		"preference_text": insight.Insight,
		"source":          insight.Source,
		"timestamp":       insight.Timestamp,
		"embedding":       embedding.EncodeVector(vec),
	}
	if err := s.rdb.HSet(ctx, key, fields).Err(); err != nil {
		logx.Warn().Err(err).Str("key", key).Msg("failed to write vector record")
	}
}

func (s *RedisPreferenceStore) SearchInsights(ctx context.Context, userName, query string, topK int) ([]model.ScoredInsight, error) {
	if topK <= 0 {
		topK = s.topK
	}

	if s.embedder == nil {
		return s.fallbackList(ctx, userName, topK)
	}

	qvec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		logx.Warn().Err(err).Str("user", userName).Msg("query embedding failed, falling back to stored list")
		return s.fallbackList(ctx, userName, topK)
	}

	records, err := s.scanUserRecords(ctx, userName)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return s.fallbackList(ctx, userName, topK)
	}

	scored := make([]model.ScoredInsight, 0, len(records))
	for _, rec := range records {
		score := embedding.CosineSimilarity(qvec, rec.Embedding)
		if score < s.minScore {
			continue
		}
		scored = append(scored, model.ScoredInsight{
			Insight: model.Insight{Insight: rec.Text, Source: rec.Source, Timestamp: rec.Timestamp},
			Score:   score,
		})
	}

	sort.Slice(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > topK {
		scored = scored[:topK]
	}
	return scored, nil
}

// fallbackList serves the plain insight list when similarity search is
// not possible, so lookups still work without a vectorizer.
func (s *RedisPreferenceStore) fallbackList(ctx context.Context, userName string, topK int) ([]model.ScoredInsight, error) {
	insights, err := s.ListInsights(ctx, userName)
	if err != nil {
		return nil, err
	}
	if len(insights) > topK {
		insights = insights[:topK]
	}
	scored := make([]model.ScoredInsight, 0, len(insights))
	for _, in := range insights {
		scored = append(scored, model.ScoredInsight{Insight: in})
	}
	return scored, nil
}

func (s *RedisPreferenceStore) scanUserRecords(ctx context.Context, userName string) ([]model.PreferenceRecord, error) {
	keys, err := s.scanKeys(ctx, s.userPrefPattern(userName))
	if err != nil {
		return nil, err
	}

	records := make([]model.PreferenceRecord, 0, len(keys))
	for _, key := range keys {
		fields, err := s.rdb.HGetAll(ctx, key).Result()
		if err != nil {
			logx.Warn().Err(err).Str("key", key).Msg("failed to read vector record")
			continue
		}
		rec := model.PreferenceRecord{
			UserName:  fields["user_name"],
			Text:      fields["preference_text"],
			Source:    fields["source"],
			Timestamp: fields["timestamp"],
		}
		if blob, ok := fields["embedding"]; ok && blob != "" {
			vec, derr := embedding.DecodeVector([]byte(blob))
			if derr != nil {
				logx.Warn().Err(derr).Str("key", key).Msg("skipping record with malformed embedding")
				continue
			}
			rec.Embedding = vec
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *RedisPreferenceStore) scanKeys(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	var cursor uint64
	for {
		batch, next, err := s.rdb.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			logx.Error().Err(err).Str("pattern", pattern).Msg("redis scan failed")
			return nil, errx.WrapRedis(err)
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			return keys, nil
		}
	}
}

func (s *RedisPreferenceStore) Users(ctx context.Context) ([]string, error) {
	users, err := s.rdb.HKeys(ctx, s.preferencesKey()).Result()
	if err != nil {
		logx.Error().Err(err).Msg("failed to list preference users")
		return nil, errx.WrapRedis(err)
	}
	sort.Strings(users)
	return users, nil
}

func (s *RedisPreferenceStore) ReplaceAll(ctx context.Context, memories map[string][]model.Insight) error {
	// Delete-then-rewrite keeps reseeding idempotent.
	if err := s.rdb.Del(ctx, s.preferencesKey()).Err(); err != nil {
		logx.Error().Err(err).Msg("failed to clear preferences hash")
		return errx.WrapRedis(err)
	}

	stale, err := s.scanKeys(ctx, s.userPrefPattern(""))
	if err != nil {
		return err
	}
	if len(stale) > 0 {
		if err := s.rdb.Del(ctx, stale...).Err(); err != nil {
			logx.Error().Err(err).Int("keys", len(stale)).Msg("failed to clear vector records")
			return errx.WrapRedis(err)
		}
	}

	users := make([]string, 0, len(memories))
	for user := range memories {
		users = append(users, user)
	}
	sort.Strings(users)

	for _, user := range users {
		insights := memories[user]
		b, err := json.Marshal(insights)
		if err != nil {
			return fmt.Errorf("encode insights for %q: %w", user, err)
		}
		if err := s.rdb.HSet(ctx, s.preferencesKey(), user, b).Err(); err != nil {
			logx.Error().Err(err).Str("user", user).Msg("failed to write seeded preferences")
			return errx.WrapRedis(err)
		}
		for _, insight := range insights {
			s.writeVectorRecord(ctx, user, insight)
		}
	}
	return nil
}

var _ model.PreferenceStore = (*RedisPreferenceStore)(nil)
