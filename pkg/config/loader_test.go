package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeWithBuiltinsOnly(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Positive(t, cfg.ModelRegistry.Len())
	assert.Positive(t, cfg.ProviderRegistry.Len())

	// Every built-in model references an existing provider.
	for _, m := range cfg.ModelRegistry.GetAll() {
		assert.True(t, cfg.ProviderRegistry.Has(m.ProviderID), "model %s", m.ID)
	}
}

func TestInitializeMergesModelsYAML(t *testing.T) {
	dir := t.TempDir()
	yaml := `
providers:
  openai:
    base_endpoint: "https://proxy.internal/v1"
  custom:
    id: custom
    name: Custom
    base_endpoint: "https://llm.example.com/v1"
    requires_key: true
    enabled: true
models:
  standard:
    cost_per_use: 5
  cheap:
    id: cheap
    name: Cheap
    provider_id: custom
    model_name: tiny-1
    cost_per_use: 1
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "models.yaml"), []byte(yaml), 0o644))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// Field-wise override of an existing entry keeps unset fields.
	p, err := cfg.GetProvider("openai")
	require.NoError(t, err)
	assert.Equal(t, "https://proxy.internal/v1", p.BaseEndpoint)
	assert.Equal(t, "OpenAI", p.Name)

	m, err := cfg.GetModel("standard")
	require.NoError(t, err)
	assert.Equal(t, 5, m.CostPerUse)
	assert.Equal(t, "gpt-4o-mini", m.ModelName)

	// New entries are added.
	assert.True(t, cfg.ProviderRegistry.Has("custom"))
	assert.True(t, cfg.ModelRegistry.Has("cheap"))
}

func TestInitializeRejectsDanglingProviderReference(t *testing.T) {
	dir := t.TempDir()
	yaml := `
models:
  broken:
    id: broken
    name: Broken
    provider_id: nope
    model_name: x
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "models.yaml"), []byte(yaml), 0o644))

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestInitializeRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "models.yaml"), []byte("models: ["), 0o644))

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestSettingsFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("HOSTED_MODE", "true")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://staging.example.com")
	t.Setenv("DATA_DIR", "/var/lib/crewd")

	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	s := cfg.Settings
	assert.Equal(t, 9090, s.Port)
	assert.True(t, s.HostedMode)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, s.CORSOrigins)
	assert.Equal(t, filepath.Join("/var/lib/crewd", "workspace"), s.WorkspaceRoot)
	assert.Equal(t, ":9090", cfg.Addr())
}

func TestProductionRequiresAuthConfig(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ISSUER_URL", "")

	_, err := Initialize(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}
