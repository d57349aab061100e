package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cool-vibes/travelchat/internal/agent/model"
	errx "github.com/cool-vibes/travelchat/internal/core/error"
	logx "github.com/cool-vibes/travelchat/pkg/logger"
)

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleAgents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"agents": s.chat.Agents()})
}

func (s *Server) handleChat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := s.chat.Chat(c.Request.Context(), req)
	if err != nil {
		// The chat service degrades internally; errors here are bad input.
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleHistory(c *gin.Context) {
	history, err := s.chat.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.renderError(c, err, "Failed to load conversation")
		return
	}

	messages := make([]gin.H, 0, len(history.Messages))
	for _, m := range history.Messages {
		if m == nil || m.Content == "" {
			continue
		}
		messages = append(messages, gin.H{"role": string(m.Role), "content": m.Content})
	}
	c.JSON(http.StatusOK, gin.H{
		"conversation_id": history.ConversationID,
		"messages":        messages,
	})
}

func (s *Server) handleClearConversation(c *gin.Context) {
	if err := s.chat.ClearConversation(c.Request.Context(), c.Param("id")); err != nil {
		s.renderError(c, err, "Failed to clear conversation")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handlePreferences(c *gin.Context) {
	user := c.Param("user")
	insights, err := s.prefs.ListInsights(c.Request.Context(), user)
	if err != nil {
		s.renderError(c, err, "Failed to load preferences")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_name":   user,
		"preferences": insights,
	})
}

// renderError maps store errors onto HTTP statuses, using the status an
// AppError carries when there is one.
func (s *Server) renderError(c *gin.Context, err error, msg string) {
	logx.Error().Err(err).Str("path", c.FullPath()).Msg(msg)

	var appErr *errx.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
