package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cool-vibes/travelchat/internal/agent/model"
	"github.com/cool-vibes/travelchat/internal/core"
	errx "github.com/cool-vibes/travelchat/internal/core/error"
)

type stubChat struct {
	resp     model.ChatResponse
	chatErr  error
	history  *model.ConversationHistory
	histErr  error
	clearErr error

	gotReq  model.ChatRequest
	cleared string
}

func (s *stubChat) Chat(_ context.Context, req model.ChatRequest) (model.ChatResponse, error) {
	s.gotReq = req
	if s.chatErr != nil {
		return model.ChatResponse{}, s.chatErr
	}
	return s.resp, nil
}

func (s *stubChat) Agents() []model.AgentInfo {
	return []model.AgentInfo{
		{Name: "cool-vibes-travel-agent", Description: "travel planning", Tools: []string{"find_events"}},
	}
}

func (s *stubChat) History(_ context.Context, _ string) (*model.ConversationHistory, error) {
	if s.histErr != nil {
		return nil, s.histErr
	}
	return s.history, nil
}

func (s *stubChat) ClearConversation(_ context.Context, id string) error {
	s.cleared = id
	return s.clearErr
}

var _ ChatService = (*stubChat)(nil)

type stubPrefStore struct {
	insights map[string][]model.Insight
	listErr  error
}

func (s *stubPrefStore) ListInsights(_ context.Context, userName string) ([]model.Insight, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.insights[userName], nil
}

func (s *stubPrefStore) SaveInsight(context.Context, string, string, string) error { return nil }

func (s *stubPrefStore) SearchInsights(context.Context, string, string, int) ([]model.ScoredInsight, error) {
	return nil, nil
}

func (s *stubPrefStore) Users(context.Context) ([]string, error) { return nil, nil }

func (s *stubPrefStore) ReplaceAll(context.Context, map[string][]model.Insight) error { return nil }

var _ model.PreferenceStore = (*stubPrefStore)(nil)

func newTestServer(chat *stubChat, prefs *stubPrefStore) *Server {
	gin.SetMode(gin.TestMode)
	return New(model.ServerConfig{Host: "127.0.0.1", Port: 0}, core.Testing, chat, prefs)
}

func perform(s *Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealthz(t *testing.T) {
	s := newTestServer(&stubChat{}, &stubPrefStore{})
	w := perform(s, http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])
}

func TestIndexServesEmbeddedPage(t *testing.T) {
	s := newTestServer(&stubChat{}, &stubPrefStore{})
	w := perform(s, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<!DOCTYPE html>")
}

func TestListAgents(t *testing.T) {
	s := newTestServer(&stubChat{}, &stubPrefStore{})
	w := perform(s, http.MethodGet, "/api/agents", "")

	require.Equal(t, http.StatusOK, w.Code)
	agents, ok := decodeBody(t, w)["agents"].([]any)
	require.True(t, ok)
	require.Len(t, agents, 1)
	first, ok := agents[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "cool-vibes-travel-agent", first["name"])
}

func TestChatEndpoint(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		chat := &stubChat{resp: model.ChatResponse{
			ConversationID: "conv-1",
			Agent:          "cool-vibes-travel-agent",
			Reply:          "Here are three hotels.",
		}}
		s := newTestServer(chat, &stubPrefStore{})

		w := perform(s, http.MethodPost, "/api/chat",
			`{"conversation_id":"conv-1","user_name":"Mark","message":"Find me a hotel"}`)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "conv-1", body["conversation_id"])
		assert.Equal(t, "Here are three hotels.", body["reply"])
		assert.Equal(t, "Mark", chat.gotReq.UserName)
		assert.Equal(t, "Find me a hotel", chat.gotReq.Message)
	})

	t.Run("malformed body", func(t *testing.T) {
		s := newTestServer(&stubChat{}, &stubPrefStore{})
		w := perform(s, http.MethodPost, "/api/chat", `{"message":`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid request body", decodeBody(t, w)["error"])
	})

	t.Run("service rejects the request", func(t *testing.T) {
		s := newTestServer(&stubChat{chatErr: errors.New("message is required")}, &stubPrefStore{})
		w := perform(s, http.MethodPost, "/api/chat", `{"message":""}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "message is required", decodeBody(t, w)["error"])
	})
}

func TestHistoryEndpoint(t *testing.T) {
	t.Run("skips messages without content", func(t *testing.T) {
		chat := &stubChat{history: &model.ConversationHistory{
			ConversationID: "conv-1",
			Messages: []*schema.Message{
				schema.UserMessage("Find me a hotel"),
				{Role: schema.Assistant, ToolCalls: []schema.ToolCall{{}}},
				nil,
				schema.AssistantMessage("Here are three hotels.", nil),
			},
		}}
		s := newTestServer(chat, &stubPrefStore{})

		w := perform(s, http.MethodGet, "/api/conversations/conv-1", "")

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "conv-1", body["conversation_id"])

		messages, ok := body["messages"].([]any)
		require.True(t, ok)
		require.Len(t, messages, 2)
		first, ok := messages[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "user", first["role"])
		assert.Equal(t, "Find me a hotel", first["content"])
		second, ok := messages[1].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "assistant", second["role"])
	})

	t.Run("store status is passed through", func(t *testing.T) {
		histErr := errx.New(errors.New("redis: nil"), http.StatusNotFound, errx.RedisNotFoundMessage)
		s := newTestServer(&stubChat{histErr: histErr}, &stubPrefStore{})

		w := perform(s, http.MethodGet, "/api/conversations/conv-404", "")

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, errx.RedisNotFoundMessage, decodeBody(t, w)["error"])
	})

	t.Run("unexpected errors become a 500", func(t *testing.T) {
		s := newTestServer(&stubChat{histErr: errors.New("boom")}, &stubPrefStore{})

		w := perform(s, http.MethodGet, "/api/conversations/conv-1", "")

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Failed to load conversation", decodeBody(t, w)["error"])
	})
}

func TestClearConversationEndpoint(t *testing.T) {
	chat := &stubChat{}
	s := newTestServer(chat, &stubPrefStore{})

	w := perform(s, http.MethodDelete, "/api/conversations/conv-1", "")

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "conv-1", chat.cleared)
}

func TestPreferencesEndpoint(t *testing.T) {
	prefs := &stubPrefStore{insights: map[string][]model.Insight{
		"Mark": {{Insight: "Prefers boutique hotels"}},
	}}
	s := newTestServer(&stubChat{}, prefs)

	w := perform(s, http.MethodGet, "/api/preferences/Mark", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Mark", body["user_name"])
	stored, ok := body["preferences"].([]any)
	require.True(t, ok)
	require.Len(t, stored, 1)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(&stubChat{}, &stubPrefStore{})

	w := perform(s, http.MethodOptions, "/api/chat", "")

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}
