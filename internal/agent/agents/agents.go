package agents

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/adk"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"

	"github.com/cool-vibes/travelchat/internal/agent/tools"
	logx "github.com/cool-vibes/travelchat/pkg/logger"
)

// Config carries the shared pieces every agent is built from.
type Config struct {
	Model    model.ToolCallingChatModel
	Registry *tools.Registry
}

// NewTravelAgent builds the general travel planning agent with the full
// tool set.
func NewTravelAgent(ctx context.Context, cfg Config) (adk.Agent, error) {
	a, err := adk.NewChatModelAgent(ctx, &adk.ChatModelAgentConfig{
		Name:        TravelAgentName,
		Description: TravelAgentDescription,
		Instruction: travelAgentInstruction,
		Model:       cfg.Model,
		ToolsConfig: adk.ToolsConfig{
			ToolsNodeConfig: compose.ToolsNodeConfig{
				Tools: cfg.Registry.TravelTools(),
			},
		},
	})
	if err != nil {
		logx.Error().Err(err).Str("agent", TravelAgentName).Msg("Error creating agent")
		return nil, fmt.Errorf("error creating %s: %w", TravelAgentName, err)
	}
	return a, nil
}

// NewTicketAgent builds the sports ticket specialist with the reduced
// tool set.
func NewTicketAgent(ctx context.Context, cfg Config) (adk.Agent, error) {
	a, err := adk.NewChatModelAgent(ctx, &adk.ChatModelAgentConfig{
		Name:        TicketAgentName,
		Description: TicketAgentDescription,
		Instruction: ticketAgentInstruction,
		Model:       cfg.Model,
		ToolsConfig: adk.ToolsConfig{
			ToolsNodeConfig: compose.ToolsNodeConfig{
				Tools: cfg.Registry.TicketTools(),
			},
		},
	})
	if err != nil {
		logx.Error().Err(err).Str("agent", TicketAgentName).Msg("Error creating agent")
		return nil, fmt.Errorf("error creating %s: %w", TicketAgentName, err)
	}
	return a, nil
}

// NewTravelTeam wires the ticket agent under the travel agent so sports
// and ticket requests transfer to the specialist.
func NewTravelTeam(ctx context.Context, cfg Config) (adk.Agent, error) {
	travel, err := NewTravelAgent(ctx, cfg)
	if err != nil {
		return nil, err
	}
	ticket, err := NewTicketAgent(ctx, cfg)
	if err != nil {
		return nil, err
	}

	team, err := adk.SetSubAgents(ctx, travel, []adk.Agent{ticket})
	if err != nil {
		logx.Error().Err(err).Msg("Error wiring agent team")
		return nil, fmt.Errorf("error wiring agent team: %w", err)
	}
	return team, nil
}
