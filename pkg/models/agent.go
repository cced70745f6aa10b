package models

// CreateAgentRequest is the body of POST /api/v1/agents.
type CreateAgentRequest struct {
	Name             string   `json:"name"`
	Department       *string  `json:"department,omitempty"`
	ModelID          string   `json:"model_id,omitempty"`
	ModelEndpoint    *string  `json:"model_endpoint,omitempty"`
	ModelName        *string  `json:"model_name,omitempty"`
	SystemPrompt     string   `json:"system_prompt,omitempty"`
	Skills           []string `json:"skills,omitempty"`
	Proactive        bool     `json:"proactive,omitempty"`
	HeartbeatSeconds int      `json:"heartbeat_seconds,omitempty"`
	ActiveHoursStart *int     `json:"active_hours_start,omitempty"`
	ActiveHoursEnd   *int     `json:"active_hours_end,omitempty"`
	TemplateID       *string  `json:"template_id,omitempty"`
}

// UpdateAgentRequest is the body of PATCH /api/v1/agents/:id.
// Nil fields are left unchanged.
type UpdateAgentRequest struct {
	Name             *string  `json:"name,omitempty"`
	Department       *string  `json:"department,omitempty"`
	ModelID          *string  `json:"model_id,omitempty"`
	ModelEndpoint    *string  `json:"model_endpoint,omitempty"`
	ModelName        *string  `json:"model_name,omitempty"`
	SystemPrompt     *string  `json:"system_prompt,omitempty"`
	Skills           []string `json:"skills,omitempty"`
	Proactive        *bool    `json:"proactive,omitempty"`
	HeartbeatSeconds *int     `json:"heartbeat_seconds,omitempty"`
	ActiveHoursStart *int     `json:"active_hours_start,omitempty"`
	ActiveHoursEnd   *int     `json:"active_hours_end,omitempty"`
}

// AgentChatRequest is the body of POST /api/v1/agents/:id/chat.
type AgentChatRequest struct {
	Message string `json:"message"`
}

// AgentChatResponse carries the agent's final answer for a chat invocation.
type AgentChatResponse struct {
	AgentID    string `json:"agent_id"`
	Response   string `json:"response"`
	Iterations int    `json:"iterations"`
}
