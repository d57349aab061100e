package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/adk"
	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"

	"github.com/cool-vibes/travelchat/internal/agent/agents"
	"github.com/cool-vibes/travelchat/internal/agent/model"
	"github.com/cool-vibes/travelchat/internal/agent/tools"
	logx "github.com/cool-vibes/travelchat/pkg/logger"
)

// failureReply is returned when the agent run fails or produces nothing.
const failureReply = "I'm sorry, something went wrong while handling that. Please try again."

// Service owns the agent runners and turns chat requests into replies,
// persisting both sides of every turn.
type Service struct {
	runners   map[string]*adk.Runner
	infos     []model.AgentInfo
	convRepo  model.ConversationRepository
	prefs     model.PreferenceStore
	maxTurns  int
	modelName string
}

type Config struct {
	ChatModel     einomodel.ToolCallingChatModel
	Registry      *tools.Registry
	Conversations model.ConversationRepository
	Preferences   model.PreferenceStore
	CheckPoints   compose.CheckPointStore
	MaxTurns      int
	ModelName     string
}

// NewService builds the travel team plus a standalone ticket agent and
// one runner per served entry point.
func NewService(ctx context.Context, cfg Config) (*Service, error) {
	agentCfg := agents.Config{Model: cfg.ChatModel, Registry: cfg.Registry}

	team, err := agents.NewTravelTeam(ctx, agentCfg)
	if err != nil {
		return nil, err
	}
	ticket, err := agents.NewTicketAgent(ctx, agentCfg)
	if err != nil {
		return nil, err
	}

	runners := map[string]*adk.Runner{
		agents.TravelAgentName: adk.NewRunner(ctx, adk.RunnerConfig{
			Agent:           team,
			EnableStreaming: false,
			CheckPointStore: cfg.CheckPoints,
		}),
		agents.TicketAgentName: adk.NewRunner(ctx, adk.RunnerConfig{
			Agent:           ticket,
			EnableStreaming: false,
			CheckPointStore: cfg.CheckPoints,
		}),
	}

	infos := []model.AgentInfo{
		{
			Name:        agents.TravelAgentName,
			Description: agents.TravelAgentDescription,
			Tools:       tools.ToolNames(ctx, cfg.Registry.TravelTools()),
		},
		{
			Name:        agents.TicketAgentName,
			Description: agents.TicketAgentDescription,
			Tools:       tools.ToolNames(ctx, cfg.Registry.TicketTools()),
		},
	}

	maxTurns := cfg.MaxTurns
	if maxTurns <= 0 {
		maxTurns = 20
	}

	return &Service{
		runners:   runners,
		infos:     infos,
		convRepo:  cfg.Conversations,
		prefs:     cfg.Preferences,
		maxTurns:  maxTurns,
		modelName: cfg.ModelName,
	}, nil
}

// Agents lists the served agents for the UI.
func (s *Service) Agents() []model.AgentInfo {
	return s.infos
}

// Chat runs one turn: persists the user message, replays recent history
// through the selected agent and persists the reply. Store failures
// degrade to a turn without history; only invalid input returns an error.
func (s *Service) Chat(ctx context.Context, req model.ChatRequest) (model.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return model.ChatResponse{}, errors.New("message is required")
	}

	agentName := req.Agent
	if agentName == "" {
		agentName = agents.TravelAgentName
	}
	runner, ok := s.runners[agentName]
	if !ok {
		return model.ChatResponse{}, fmt.Errorf("unknown agent %q", agentName)
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	if err := s.convRepo.AddMessage(ctx, conversationID, schema.UserMessage(message)); err != nil {
		logx.Warn().Err(err).
			Str("conversation_id", conversationID).
			Msg("Failed to persist user message, continuing")
	}

	msgs := s.buildRunMessages(ctx, conversationID, req.UserName, message)

	reply, err := drainEvents(runner.Run(ctx, msgs), s.modelName)
	if err != nil {
		logx.Error().Err(err).
			Str("agent", agentName).
			Str("conversation_id", conversationID).
			Msg("Agent run failed")
		reply = failureReply
	}
	if strings.TrimSpace(reply) == "" {
		reply = failureReply
	}

	if err := s.convRepo.AddMessage(ctx, conversationID, schema.AssistantMessage(reply, nil)); err != nil {
		logx.Warn().Err(err).
			Str("conversation_id", conversationID).
			Msg("Failed to persist assistant reply")
	}

	return model.ChatResponse{
		ConversationID: conversationID,
		Agent:          agentName,
		Reply:          reply,
	}, nil
}

// History returns the stored transcript for a conversation.
func (s *Service) History(ctx context.Context, conversationID string) (*model.ConversationHistory, error) {
	return s.convRepo.LoadHistory(ctx, conversationID)
}

// ClearConversation removes the stored transcript for a conversation.
func (s *Service) ClearConversation(ctx context.Context, conversationID string) error {
	return s.convRepo.ClearHistory(ctx, conversationID)
}

// buildRunMessages assembles the model input for one turn: an optional
// memory system message, then the recent history ending with the current
// user message.
func (s *Service) buildRunMessages(ctx context.Context, conversationID, userName, message string) []adk.Message {
	var msgs []adk.Message
	if block := s.memoryContext(ctx, userName, message); block != "" {
		msgs = append(msgs, schema.SystemMessage(block))
	}

	history, err := s.convRepo.LoadHistory(ctx, conversationID)
	if err != nil {
		logx.Warn().Err(err).
			Str("conversation_id", conversationID).
			Msg("Failed to load history, using current message only")
		return append(msgs, schema.UserMessage(message))
	}

	recent := trimTail(history.Messages, s.maxTurns)
	if len(recent) == 0 {
		return append(msgs, schema.UserMessage(message))
	}
	// The persist above may have failed; the turn being answered must be
	// the last message either way.
	last := recent[len(recent)-1]
	if last == nil || last.Role != schema.User || last.Content != message {
		recent = append(recent, schema.UserMessage(message))
	}
	for _, m := range recent {
		msgs = append(msgs, m)
	}
	return msgs
}

// memoryContext builds a system message carrying stored preferences
// relevant to the request. Empty when no user is identified, nothing is
// stored, or the store is unavailable.
func (s *Service) memoryContext(ctx context.Context, userName, message string) string {
	userName = strings.TrimSpace(userName)
	if s.prefs == nil || userName == "" {
		return ""
	}

	matches, err := s.prefs.SearchInsights(ctx, userName, message, 0)
	if err != nil {
		logx.Warn().Err(err).
			Str("user_name", userName).
			Msg("Preference lookup failed, continuing without memory context")
		return ""
	}
	if len(matches) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Known preferences for " + userName + " (long-term memory):\n")
	for _, m := range matches {
		b.WriteString("- " + m.Insight.Insight + "\n")
	}
	b.WriteString("Use these to personalize recommendations without asking again.")
	return b.String()
}

// trimTail keeps the most recent maxTurns messages.
func trimTail(messages []*schema.Message, maxTurns int) []*schema.Message {
	if len(messages) <= maxTurns {
		result := make([]*schema.Message, len(messages))
		copy(result, messages)
		return result
	}
	source := messages[len(messages)-maxTurns:]
	result := make([]*schema.Message, len(source))
	copy(result, source)
	return result
}
