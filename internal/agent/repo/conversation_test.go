package repo

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/cloudwego/eino/schema"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	return mr, redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestConversationRepository_RoundTripPreservesOrderAndRoles(t *testing.T) {
	_, rdb := newTestRedis(t)
	repo := NewRedisConversationRepository(rdb, "cool-vibes-agent", time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.AddMessage(ctx, "conv-1", schema.UserMessage("Hi, I'm Mark.")))
	require.NoError(t, repo.AddMessage(ctx, "conv-1", schema.AssistantMessage("Hi Mark! Where are you headed?", nil)))
	require.NoError(t, repo.AddMessage(ctx, "conv-1", schema.UserMessage("New York in November")))

	history, err := repo.LoadHistory(ctx, "conv-1")
	require.NoError(t, err)
	require.Len(t, history.Messages, 3)

	assert.Equal(t, "conv-1", history.ConversationID)
	assert.Equal(t, schema.User, history.Messages[0].Role)
	assert.Equal(t, "Hi, I'm Mark.", history.Messages[0].Content)
	assert.Equal(t, schema.Assistant, history.Messages[1].Role)
	assert.Equal(t, "New York in November", history.Messages[2].Content)
}

func TestConversationRepository_UnknownConversationIsEmpty(t *testing.T) {
	_, rdb := newTestRedis(t)
	repo := NewRedisConversationRepository(rdb, "cool-vibes-agent", time.Hour)
	ctx := context.Background()

	history, err := repo.LoadHistory(ctx, "never-seen")
	require.NoError(t, err)
	assert.Empty(t, history.Messages)

	count, err := repo.GetMessageCount(ctx, "never-seen")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestConversationRepository_ConversationsAreIsolated(t *testing.T) {
	_, rdb := newTestRedis(t)
	repo := NewRedisConversationRepository(rdb, "cool-vibes-agent", time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.AddMessage(ctx, "conv-a", schema.UserMessage("about Boston")))
	require.NoError(t, repo.AddMessage(ctx, "conv-b", schema.UserMessage("about Chicago")))

	a, err := repo.LoadHistory(ctx, "conv-a")
	require.NoError(t, err)
	b, err := repo.LoadHistory(ctx, "conv-b")
	require.NoError(t, err)

	require.Len(t, a.Messages, 1)
	require.Len(t, b.Messages, 1)
	assert.Equal(t, "about Boston", a.Messages[0].Content)
	assert.Equal(t, "about Chicago", b.Messages[0].Content)
}

func TestConversationRepository_ClearHistory(t *testing.T) {
	_, rdb := newTestRedis(t)
	repo := NewRedisConversationRepository(rdb, "cool-vibes-agent", time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.AddMessage(ctx, "conv-1", schema.UserMessage("hello")))
	require.NoError(t, repo.ClearHistory(ctx, "conv-1"))

	history, err := repo.LoadHistory(ctx, "conv-1")
	require.NoError(t, err)
	assert.Empty(t, history.Messages)

	count, err := repo.GetMessageCount(ctx, "conv-1")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestConversationRepository_GetMessageCount(t *testing.T) {
	_, rdb := newTestRedis(t)
	repo := NewRedisConversationRepository(rdb, "cool-vibes-agent", time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.AddMessage(ctx, "conv-1", schema.UserMessage("one")))
	require.NoError(t, repo.AddMessage(ctx, "conv-1", schema.AssistantMessage("two", nil)))

	count, err := repo.GetMessageCount(ctx, "conv-1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestConversationRepository_TouchExtendsTTL(t *testing.T) {
	mr, rdb := newTestRedis(t)
	repo := NewRedisConversationRepository(rdb, "cool-vibes-agent", time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.AddMessage(ctx, "conv-1", schema.UserMessage("hello")))
	assert.Equal(t, time.Hour, mr.TTL("cool-vibes-agent:Conversations:conv-1"))
}

func TestConversationRepository_BareKeysWithoutNamespace(t *testing.T) {
	mr, rdb := newTestRedis(t)
	repo := NewRedisConversationRepository(rdb, "", time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.AddMessage(ctx, "conv-1", schema.UserMessage("hello")))
	assert.True(t, mr.Exists("Conversations:conv-1"))
}
