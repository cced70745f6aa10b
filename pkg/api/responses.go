package api

// HealthCheck is one named component check in the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// PlatformProvider is one enabled provider in the platform config response.
type PlatformProvider struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	RequiresKey bool   `json:"requires_key"`
}

// PlatformModel is one catalog model in the platform config response.
type PlatformModel struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ProviderID string `json:"provider_id"`
	CostPerUse int    `json:"cost_per_use"`
}

// PlatformConfigResponse is the body of GET /api/v1/platform/config.
type PlatformConfigResponse struct {
	HostedMode bool               `json:"hosted_mode"`
	Providers  []PlatformProvider `json:"providers"`
	Models     []PlatformModel    `json:"models"`
}

// SkillView is one installable skill in the skills listing.
type SkillView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Tools       []string `json:"tools,omitempty"`
}

// BalanceResponse is the body of GET /api/v1/credits/balance.
type BalanceResponse struct {
	TeamID  string `json:"team_id"`
	Balance int    `json:"balance"`
}

// UnreadCountResponse is the body of GET /api/v1/notifications/unread-count.
type UnreadCountResponse struct {
	Count int `json:"count"`
}
