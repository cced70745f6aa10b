package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewforge/crewd/pkg/config"
)

type fakeCreds struct {
	values map[string]string // "teamID/serviceID" → key
}

func (f *fakeCreds) Get(_ context.Context, teamID, serviceID string) (string, error) {
	if v, ok := f.values[teamID+"/"+serviceID]; ok {
		return v, nil
	}
	return "", ErrCredentialNotFound
}

func routerConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)
	return cfg
}

func TestResolveDirectOverrideSkipsCredits(t *testing.T) {
	r := NewRouter(routerConfig(t), &fakeCreds{}, nil)

	target, err := r.Resolve(context.Background(), "team-1", ModelSpec{
		Endpoint: "https://llm.corp.example/v1",
		Name:     "internal-model",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://llm.corp.example/v1", target.Endpoint)
	assert.Equal(t, "internal-model", target.Model)
	assert.True(t, target.SkipCredits)
}

func TestResolveCatalogWithTenantKey(t *testing.T) {
	creds := &fakeCreds{values: map[string]string{"team-1/openai": "sk-tenant"}}
	r := NewRouter(routerConfig(t), creds, nil)

	target, err := r.Resolve(context.Background(), "team-1", ModelSpec{ModelID: "standard"})
	require.NoError(t, err)
	assert.Equal(t, "sk-tenant", target.APIKey)
	assert.True(t, target.SkipCredits, "tenant-keyed calls are not billed")
	assert.Zero(t, target.CostPerUse)
}

func TestResolveCatalogWithHostedKey(t *testing.T) {
	hosted := func(providerID string) (string, bool) {
		if providerID == "openai" {
			return "sk-platform", true
		}
		return "", false
	}
	r := NewRouter(routerConfig(t), &fakeCreds{}, hosted)

	target, err := r.Resolve(context.Background(), "team-1", ModelSpec{ModelID: "standard"})
	require.NoError(t, err)
	assert.Equal(t, "sk-platform", target.APIKey)
	assert.False(t, target.SkipCredits)
	assert.Equal(t, 1, target.CostPerUse)
}

func TestResolveKeylessProvider(t *testing.T) {
	r := NewRouter(routerConfig(t), &fakeCreds{}, nil)

	// "local" rides on ollama, which needs no key and costs nothing.
	target, err := r.Resolve(context.Background(), "team-1", ModelSpec{ModelID: "local"})
	require.NoError(t, err)
	assert.Empty(t, target.APIKey)
	assert.True(t, target.SkipCredits)
}

func TestResolveFallsBackToPlatformModel(t *testing.T) {
	t.Setenv("FALLBACK_MODEL_ENDPOINT", "https://fallback.example/v1")
	t.Setenv("FALLBACK_MODEL_NAME", "fallback-1")
	t.Setenv("FALLBACK_MODEL_KEY", "sk-fallback")

	r := NewRouter(routerConfig(t), &fakeCreds{}, nil)

	// No tenant key, no hosted key, provider requires one → fallback.
	target, err := r.Resolve(context.Background(), "team-1", ModelSpec{ModelID: "standard"})
	require.NoError(t, err)
	assert.Equal(t, "https://fallback.example/v1", target.Endpoint)
	assert.Equal(t, "fallback-1", target.Model)
	assert.Equal(t, 1, target.CostPerUse)
}

func TestResolveNoModelAnywhere(t *testing.T) {
	r := NewRouter(routerConfig(t), &fakeCreds{}, nil)

	_, err := r.Resolve(context.Background(), "team-1", ModelSpec{ModelID: "standard"})
	assert.ErrorIs(t, err, ErrNoModel)

	_, err = r.Resolve(context.Background(), "team-1", ModelSpec{})
	assert.ErrorIs(t, err, ErrNoModel)
}

func TestInvalidateDropsTenantCache(t *testing.T) {
	creds := &fakeCreds{values: map[string]string{}}
	hosted := func(string) (string, bool) { return "sk-platform", true }
	r := NewRouter(routerConfig(t), creds, hosted)

	target, err := r.Resolve(context.Background(), "team-1", ModelSpec{ModelID: "standard"})
	require.NoError(t, err)
	assert.Equal(t, "sk-platform", target.APIKey)

	// Tenant adds their own key; stale resolution must not survive the
	// invalidation.
	creds.values["team-1/openai"] = "sk-tenant"
	r.Invalidate("team-1")

	target, err = r.Resolve(context.Background(), "team-1", ModelSpec{ModelID: "standard"})
	require.NoError(t, err)
	assert.Equal(t, "sk-tenant", target.APIKey)
}
