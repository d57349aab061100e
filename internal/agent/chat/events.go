package chat

import (
	"strings"

	"github.com/cloudwego/eino/adk"
	"github.com/cloudwego/eino/schema"

	"github.com/cool-vibes/travelchat/internal/agent/model"
	logx "github.com/cool-vibes/travelchat/pkg/logger"
)

// eventStream is the part of the runner iterator the drain loop needs.
type eventStream interface {
	Next() (*adk.AgentEvent, bool)
}

// drainEvents consumes a full agent run, logging transfers, tool activity
// and token usage, and returns the last assistant reply text.
func drainEvents(iter eventStream, modelName string) (string, error) {
	var reply string
	for {
		event, ok := iter.Next()
		if !ok {
			break
		}
		if event.Err != nil {
			return reply, event.Err
		}

		if event.Action != nil {
			if event.Action.TransferToAgent != nil {
				logx.Info().
					Str("from", event.AgentName).
					Str("to", event.Action.TransferToAgent.DestAgentName).
					Msg("Transferring conversation")
			}
			if event.Action.Interrupted != nil {
				logx.Warn().Str("agent", event.AgentName).Msg("Agent run interrupted")
			}
			continue
		}

		if event.Output == nil || event.Output.MessageOutput == nil {
			continue
		}
		msg := event.Output.MessageOutput.Message
		if msg == nil {
			continue
		}
		logUsage(event.AgentName, modelName, msg)

		switch {
		case msg.Role == schema.Tool:
			logx.Debug().
				Str("agent", event.AgentName).
				Str("tool", event.Output.MessageOutput.ToolName).
				Msg("Tool result received")
		case msg.Role == schema.Assistant && len(msg.ToolCalls) > 0:
			for _, call := range msg.ToolCalls {
				logx.Debug().
					Str("agent", event.AgentName).
					Str("tool", call.Function.Name).
					Str("arguments", call.Function.Arguments).
					Msg("Tool call requested")
			}
		case msg.Role == schema.Assistant && strings.TrimSpace(msg.Content) != "":
			reply = msg.Content
		}
	}
	return reply, nil
}

func logUsage(agentName, modelName string, msg *schema.Message) {
	if msg.ResponseMeta == nil || msg.ResponseMeta.Usage == nil {
		return
	}
	usage := msg.ResponseMeta.Usage
	_, _, total := model.ComputeCost(usage, model.ResolvePricing(modelName))
	logx.Debug().
		Str("agent", agentName).
		Str("model", modelName).
		Int("prompt_tokens", usage.PromptTokens).
		Int("completion_tokens", usage.CompletionTokens).
		Float64("cost_usd", total).
		Msg("Model usage")
}
