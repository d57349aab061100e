package model

// ChatRequest is one user turn addressed to a served agent.
type ChatRequest struct {
	ConversationID string `json:"conversation_id"`
	Agent          string `json:"agent,omitempty"`
	UserName       string `json:"user_name,omitempty"`
	Message        string `json:"message"`
}

// ChatResponse carries the assistant reply for a turn.
type ChatResponse struct {
	ConversationID string `json:"conversation_id"`
	Agent          string `json:"agent"`
	Reply          string `json:"reply"`
}

// AgentInfo describes a served agent for the UI listing.
type AgentInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tools       []string `json:"tools"`
}
