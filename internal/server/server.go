package server

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cool-vibes/travelchat/internal/agent/model"
	"github.com/cool-vibes/travelchat/internal/core"
	logx "github.com/cool-vibes/travelchat/pkg/logger"
)

//go:embed static/index.html
var indexHTML []byte

// ChatService is what the HTTP layer needs from the chat side.
type ChatService interface {
	Chat(ctx context.Context, req model.ChatRequest) (model.ChatResponse, error)
	Agents() []model.AgentInfo
	History(ctx context.Context, conversationID string) (*model.ConversationHistory, error)
	ClearConversation(ctx context.Context, conversationID string) error
}

// Server hosts the chat API and the demo web page.
type Server struct {
	chat  ChatService
	prefs model.PreferenceStore
	srv   *http.Server
}

func New(cfg model.ServerConfig, env core.Environment, chat ChatService, prefs model.PreferenceStore) *Server {
	if env.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{chat: chat, prefs: prefs}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())
	s.routes(r)

	s.srv = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler: r,
	}
	return s
}

// Addr returns the listen address the server was configured with.
func (s *Server) Addr() string {
	return s.srv.Addr
}

// Run serves until the listener fails or Shutdown is called.
func (s *Server) Run() error {
	logx.Info().Str("addr", s.srv.Addr).Msg("HTTP server listening")
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) routes(r *gin.Engine) {
	r.GET("/", s.handleIndex)
	r.GET("/healthz", s.handleHealth)

	api := r.Group("/api")
	api.GET("/agents", s.handleAgents)
	api.POST("/chat", s.handleChat)
	api.GET("/conversations/:id", s.handleHistory)
	api.DELETE("/conversations/:id", s.handleClearConversation)
	api.GET("/preferences/:user", s.handlePreferences)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
