package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/crewforge/crewd/pkg/config"
)

const (
	resolveCacheTTL     = 5 * time.Minute
	resolveCacheCleanup = 10 * time.Minute
)

// ErrCredentialNotFound is returned by a CredentialSource when the tenant
// has no credential for the requested service.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialSource yields decrypted tenant credentials by service ID.
type CredentialSource interface {
	Get(ctx context.Context, teamID, serviceID string) (string, error)
}

// HostedKeyFunc returns the platform-managed API key for a provider in
// hosted mode. ok=false means the platform has no key for that provider.
type HostedKeyFunc func(providerID string) (key string, ok bool)

// ModelSpec is an agent's model preference: a logical catalog ID and/or a
// direct endpoint+name override.
type ModelSpec struct {
	ModelID  string
	Endpoint string
	Name     string
}

// Router resolves an agent's model preference to a concrete Target.
//
// Resolution order:
//  1. direct endpoint+name override on the agent
//  2. catalog model via the agent's model_id
//  3. the platform fallback model
//
// Key lookup for catalog models prefers the tenant's own credential for the
// provider; calls on a tenant key are not billed. Resolutions are cached for
// a few minutes and invalidated when tenant credentials change.
type Router struct {
	cfg       *config.Config
	creds     CredentialSource
	hostedKey HostedKeyFunc
	cache     *gocache.Cache
}

// NewRouter creates a Router. hostedKey may be nil outside hosted mode.
func NewRouter(cfg *config.Config, creds CredentialSource, hostedKey HostedKeyFunc) *Router {
	return &Router{
		cfg:       cfg,
		creds:     creds,
		hostedKey: hostedKey,
		cache:     gocache.New(resolveCacheTTL, resolveCacheCleanup),
	}
}

// Resolve maps a tenant + model spec to a concrete Target.
func (r *Router) Resolve(ctx context.Context, teamID string, spec ModelSpec) (Target, error) {
	key := cacheKey(teamID, spec)
	if cached, found := r.cache.Get(key); found {
		return cached.(Target), nil
	}

	target, err := r.resolve(ctx, teamID, spec)
	if err != nil {
		return Target{}, err
	}

	r.cache.Set(key, target, gocache.DefaultExpiration)
	return target, nil
}

// Invalidate drops all cached resolutions for a tenant. Called when the
// tenant's credentials change.
func (r *Router) Invalidate(teamID string) {
	prefix := teamID + "|"
	for k := range r.cache.Items() {
		if strings.HasPrefix(k, prefix) {
			r.cache.Delete(k)
		}
	}
}

func (r *Router) resolve(ctx context.Context, teamID string, spec ModelSpec) (Target, error) {
	// Direct override: the tenant runs against their own endpoint, so no
	// platform billing applies.
	if spec.Endpoint != "" && spec.Name != "" {
		apiKey := ""
		if r.creds != nil {
			if k, err := r.creds.Get(ctx, teamID, "custom_model"); err == nil {
				apiKey = k
			}
		}
		return Target{
			Endpoint:    spec.Endpoint,
			Model:       spec.Name,
			APIKey:      apiKey,
			SkipCredits: true,
		}, nil
	}

	if spec.ModelID != "" {
		target, err := r.resolveCatalog(ctx, teamID, spec.ModelID)
		if err == nil {
			return target, nil
		}
		if !errors.Is(err, ErrNoModel) {
			return Target{}, err
		}
	}

	return r.fallback()
}

func (r *Router) resolveCatalog(ctx context.Context, teamID, modelID string) (Target, error) {
	model, err := r.cfg.GetModel(modelID)
	if err != nil {
		return Target{}, fmt.Errorf("%w: unknown model %q", ErrNoModel, modelID)
	}
	provider, err := r.cfg.GetProvider(model.ProviderID)
	if err != nil || !provider.Enabled {
		return Target{}, fmt.Errorf("%w: provider %q unavailable", ErrNoModel, model.ProviderID)
	}

	target := Target{
		Endpoint:   provider.BaseEndpoint,
		Model:      model.ModelName,
		CostPerUse: model.CostPerUse,
	}
	if model.CostPerUse == 0 {
		target.SkipCredits = true
	}

	// Tenant-owned key wins, and makes the call free of platform credits.
	if r.creds != nil {
		if k, err := r.creds.Get(ctx, teamID, provider.ID); err == nil && k != "" {
			target.APIKey = k
			target.SkipCredits = true
			target.CostPerUse = 0
			return target, nil
		} else if err != nil && !errors.Is(err, ErrCredentialNotFound) {
			return Target{}, err
		}
	}

	if r.hostedKey != nil {
		if k, ok := r.hostedKey(provider.ID); ok {
			target.APIKey = k
			return target, nil
		}
	}

	if !provider.RequiresKey {
		return target, nil
	}

	return Target{}, fmt.Errorf("%w: no key for provider %q", ErrNoModel, provider.ID)
}

func (r *Router) fallback() (Target, error) {
	s := r.cfg.Settings
	if s.FallbackModelEndpoint == "" || s.FallbackModelName == "" {
		return Target{}, ErrNoModel
	}
	return Target{
		Endpoint:   s.FallbackModelEndpoint,
		Model:      s.FallbackModelName,
		APIKey:     s.FallbackModelKey,
		CostPerUse: 1,
	}, nil
}

func cacheKey(teamID string, spec ModelSpec) string {
	return teamID + "|" + spec.ModelID + "|" + spec.Endpoint + "|" + spec.Name
}
