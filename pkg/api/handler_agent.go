package api

import (
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/crewforge/crewd/ent"
	"github.com/crewforge/crewd/ent/agent"
	"github.com/crewforge/crewd/pkg/llm"
	"github.com/crewforge/crewd/pkg/models"
	"github.com/crewforge/crewd/pkg/runtime"
	"github.com/crewforge/crewd/pkg/services"
)

// listAgentsHandler handles GET /api/v1/agents.
func (s *Server) listAgentsHandler(c *echo.Context) error {
	agents, err := s.svc.Agents.ListAgents(c.Request().Context(), teamContext(c).TeamID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, agents)
}

// createAgentHandler handles POST /api/v1/agents.
func (s *Server) createAgentHandler(c *echo.Context) error {
	var req models.CreateAgentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	a, err := s.svc.Agents.CreateAgent(c.Request().Context(), teamContext(c).TeamID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, a)
}

// getAgentHandler handles GET /api/v1/agents/:id.
func (s *Server) getAgentHandler(c *echo.Context) error {
	a, err := s.svc.Agents.GetAgent(c.Request().Context(), teamContext(c).TeamID, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, a)
}

// updateAgentHandler handles PATCH /api/v1/agents/:id.
func (s *Server) updateAgentHandler(c *echo.Context) error {
	var req models.UpdateAgentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	a, err := s.svc.Agents.UpdateAgent(c.Request().Context(), teamContext(c).TeamID, c.Param("id"), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, a)
}

// deleteAgentHandler handles DELETE /api/v1/agents/:id. Admin only.
func (s *Server) deleteAgentHandler(c *echo.Context) error {
	tc := teamContext(c)
	if !tc.Role.AtLeast(models.RoleAdmin) {
		return mapServiceError(services.ErrForbidden)
	}
	if err := s.svc.Agents.DeleteAgent(c.Request().Context(), tc.TeamID, c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// startAgentHandler handles POST /api/v1/agents/:id/start.
func (s *Server) startAgentHandler(c *echo.Context) error {
	a, err := s.svc.Agents.SetStatus(c.Request().Context(), teamContext(c).TeamID, c.Param("id"), agent.StatusRunning)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, a)
}

// stopAgentHandler handles POST /api/v1/agents/:id/stop.
func (s *Server) stopAgentHandler(c *echo.Context) error {
	a, err := s.svc.Agents.SetStatus(c.Request().Context(), teamContext(c).TeamID, c.Param("id"), agent.StatusStopped)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, a)
}

// triggerAgentHandler handles POST /api/v1/agents/:id/trigger — fires one
// heartbeat immediately.
func (s *Server) triggerAgentHandler(c *echo.Context) error {
	err := s.scheduler.TriggerNow(c.Request().Context(), teamContext(c).TeamID, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "triggered"})
}

// agentChatHandler handles POST /api/v1/agents/:id/chat: one synchronous
// reasoning loop, with the exchange persisted to the agent's DM channel.
func (s *Server) agentChatHandler(c *echo.Context) error {
	var req models.AgentChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Message) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}

	ctx := c.Request().Context()
	tc := teamContext(c)

	a, err := s.svc.Agents.GetAgent(ctx, tc.TeamID, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}

	dm, err := s.svc.Chat.GetOrCreateDM(ctx, tc.TeamID, a.ID)
	if err != nil {
		return mapServiceError(err)
	}
	if _, err := s.svc.Chat.SendMessage(ctx, tc.TeamID, dm.ID, "user", identity(c).UserID, req.Message); err != nil {
		return mapServiceError(err)
	}

	result, err := s.runner.Execute(ctx, s.buildRun(a, req.Message))
	if err != nil {
		return mapServiceError(err)
	}

	if result.FinalText != "" {
		if _, err := s.svc.Chat.SendMessage(ctx, tc.TeamID, dm.ID, "agent", a.ID, result.FinalText); err != nil {
			s.logger.Error("Failed to persist agent reply", "error", err)
		}
	}

	return c.JSON(http.StatusOK, &models.AgentChatResponse{
		AgentID:    a.ID,
		Response:   result.FinalText,
		Iterations: result.Steps,
	})
}

// buildRun assembles a reasoning-loop invocation for an agent: persona plus
// installed-skill instructions, and the skills' tool grants.
func (s *Server) buildRun(a *ent.Agent, message string) runtime.Run {
	prompt := a.SystemPrompt
	var allowed []string
	if s.skills != nil && len(a.Skills) > 0 {
		instructions, grants := s.skills.Compose(a.Skills)
		if instructions != "" {
			prompt = prompt + "\n\n" + instructions
		}
		allowed = grants
	}

	return runtime.Run{
		TeamID:       a.TeamID,
		AgentID:      a.ID,
		Spec:         agentModelSpec(a),
		SystemPrompt: prompt,
		Tools:        allowed,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: message},
		},
	}
}

// listMemoriesHandler handles GET /api/v1/agents/:id/memories.
func (s *Server) listMemoriesHandler(c *echo.Context) error {
	memories, err := s.kb.ListMemories(c.Request().Context(), teamContext(c).TeamID, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, memories)
}

func agentModelSpec(a *ent.Agent) llm.ModelSpec {
	spec := llm.ModelSpec{ModelID: a.ModelID}
	if a.ModelEndpoint != nil {
		spec.Endpoint = *a.ModelEndpoint
	}
	if a.ModelName != nil {
		spec.Name = *a.ModelName
	}
	return spec
}
