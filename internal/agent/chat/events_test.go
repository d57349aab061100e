package chat

import (
	"errors"
	"testing"

	"github.com/cloudwego/eino/adk"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStream replays a fixed sequence of agent events.
type fakeStream struct {
	events []*adk.AgentEvent
	pos    int
}

func (f *fakeStream) Next() (*adk.AgentEvent, bool) {
	if f.pos >= len(f.events) {
		return nil, false
	}
	ev := f.events[f.pos]
	f.pos++
	return ev, true
}

func assistantEvent(agent, content string) *adk.AgentEvent {
	return &adk.AgentEvent{
		AgentName: agent,
		Output: &adk.AgentOutput{
			MessageOutput: &adk.MessageVariant{
				Message: schema.AssistantMessage(content, nil),
				Role:    schema.Assistant,
			},
		},
	}
}

func toolCallEvent(agent, toolName, args string) *adk.AgentEvent {
	return &adk.AgentEvent{
		AgentName: agent,
		Output: &adk.AgentOutput{
			MessageOutput: &adk.MessageVariant{
				Message: &schema.Message{
					Role: schema.Assistant,
					ToolCalls: []schema.ToolCall{
						{Function: schema.FunctionCall{Name: toolName, Arguments: args}},
					},
				},
				Role: schema.Assistant,
			},
		},
	}
}

func toolResultEvent(agent, toolName, content string) *adk.AgentEvent {
	return &adk.AgentEvent{
		AgentName: agent,
		Output: &adk.AgentOutput{
			MessageOutput: &adk.MessageVariant{
				Message:  &schema.Message{Role: schema.Tool, Content: content},
				Role:     schema.Tool,
				ToolName: toolName,
			},
		},
	}
}

func TestDrainEvents_LastAssistantReplyWins(t *testing.T) {
	stream := &fakeStream{events: []*adk.AgentEvent{
		assistantEvent("cool-vibes-travel-agent", "Let me check that for you."),
		assistantEvent("cool-vibes-travel-agent", "Here are three hotels in New York."),
	}}

	reply, err := drainEvents(stream, "gpt-4o")
	require.NoError(t, err)
	assert.Equal(t, "Here are three hotels in New York.", reply)
}

func TestDrainEvents_ToolActivityIsNotAReply(t *testing.T) {
	stream := &fakeStream{events: []*adk.AgentEvent{
		toolCallEvent("cool-vibes-travel-agent", "find_events", `{"city":"new york"}`),
		toolResultEvent("cool-vibes-travel-agent", "find_events", `{"events":[],"total":0}`),
		assistantEvent("cool-vibes-travel-agent", "No games that weekend, sadly."),
	}}

	reply, err := drainEvents(stream, "gpt-4o")
	require.NoError(t, err)
	assert.Equal(t, "No games that weekend, sadly.", reply)
}

func TestDrainEvents_TransferIsSkipped(t *testing.T) {
	stream := &fakeStream{events: []*adk.AgentEvent{
		{
			AgentName: "cool-vibes-travel-agent",
			Action: &adk.AgentAction{
				TransferToAgent: &adk.TransferToAgentAction{DestAgentName: "ticket-purchase-agent"},
			},
		},
		assistantEvent("ticket-purchase-agent", "I found courtside seats for the Knicks game."),
	}}

	reply, err := drainEvents(stream, "gpt-4o")
	require.NoError(t, err)
	assert.Equal(t, "I found courtside seats for the Knicks game.", reply)
}

func TestDrainEvents_ErrorStopsTheRun(t *testing.T) {
	runErr := errors.New("model unavailable")
	stream := &fakeStream{events: []*adk.AgentEvent{
		assistantEvent("cool-vibes-travel-agent", "One moment."),
		{AgentName: "cool-vibes-travel-agent", Err: runErr},
		assistantEvent("cool-vibes-travel-agent", "never seen"),
	}}

	reply, err := drainEvents(stream, "gpt-4o")
	require.ErrorIs(t, err, runErr)
	assert.Equal(t, "One moment.", reply)
}

func TestDrainEvents_EmptyStream(t *testing.T) {
	reply, err := drainEvents(&fakeStream{}, "gpt-4o")
	require.NoError(t, err)
	assert.Empty(t, reply)
}

func TestDrainEvents_BlankContentDoesNotOverwrite(t *testing.T) {
	stream := &fakeStream{events: []*adk.AgentEvent{
		assistantEvent("cool-vibes-travel-agent", "Booked!"),
		assistantEvent("cool-vibes-travel-agent", "   "),
	}}

	reply, err := drainEvents(stream, "gpt-4o")
	require.NoError(t, err)
	assert.Equal(t, "Booked!", reply)
}

func TestDrainEvents_SkipsEmptyEvents(t *testing.T) {
	stream := &fakeStream{events: []*adk.AgentEvent{
		{AgentName: "cool-vibes-travel-agent"},
		{AgentName: "cool-vibes-travel-agent", Output: &adk.AgentOutput{}},
		{AgentName: "cool-vibes-travel-agent", Output: &adk.AgentOutput{MessageOutput: &adk.MessageVariant{}}},
		assistantEvent("cool-vibes-travel-agent", "Still here."),
	}}

	reply, err := drainEvents(stream, "gpt-4o")
	require.NoError(t, err)
	assert.Equal(t, "Still here.", reply)
}

func TestDrainEvents_UsageMetadataIsTolerated(t *testing.T) {
	ev := assistantEvent("cool-vibes-travel-agent", "Done.")
	ev.Output.MessageOutput.Message.ResponseMeta = &schema.ResponseMeta{
		Usage: &schema.TokenUsage{PromptTokens: 1200, CompletionTokens: 85},
	}
	stream := &fakeStream{events: []*adk.AgentEvent{ev}}

	reply, err := drainEvents(stream, "gpt-4o")
	require.NoError(t, err)
	assert.Equal(t, "Done.", reply)
}
