package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// platformConfigHandler handles GET /api/v1/platform/config. Public: the
// frontend needs the catalog before any team is selected.
func (s *Server) platformConfigHandler(c *echo.Context) error {
	resp := &PlatformConfigResponse{
		HostedMode: s.cfg.Settings.HostedMode,
		Providers:  []PlatformProvider{},
		Models:     []PlatformModel{},
	}

	for _, p := range s.cfg.ProviderRegistry.GetAll() {
		if !p.Enabled {
			continue
		}
		resp.Providers = append(resp.Providers, PlatformProvider{
			ID:          p.ID,
			Name:        p.Name,
			RequiresKey: p.RequiresKey,
		})
	}

	for _, m := range s.cfg.ModelRegistry.GetAll() {
		resp.Models = append(resp.Models, PlatformModel{
			ID:         m.ID,
			Name:       m.Name,
			ProviderID: m.ProviderID,
			CostPerUse: m.CostPerUse,
		})
	}

	return c.JSON(http.StatusOK, resp)
}

// listSkillsHandler handles GET /api/v1/skills.
func (s *Server) listSkillsHandler(c *echo.Context) error {
	views := make([]SkillView, 0, s.skills.Len())
	for _, sk := range s.skills.All() {
		views = append(views, SkillView{
			ID:          sk.ID,
			Name:        sk.Name,
			Description: sk.Description,
			Tools:       sk.Tools,
		})
	}
	return c.JSON(http.StatusOK, views)
}

// listProvidersHandler handles GET /api/v1/providers.
func (s *Server) listProvidersHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, s.cfg.ProviderRegistry.GetAll())
}

// listModelsHandler handles GET /api/v1/models.
func (s *Server) listModelsHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, s.cfg.ModelRegistry.GetAll())
}
