package config

import (
	"fmt"
	"sort"
	"sync"
)

// ProviderConfig describes one upstream LLM provider endpoint.
type ProviderConfig struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	BaseEndpoint string `yaml:"base_endpoint"`
	RequiresKey  bool   `yaml:"requires_key"`
	Enabled      bool   `yaml:"enabled"`
}

// ModelConfig describes one logical model agents can reference by ID.
// CostPerUse is the credit price of a single completion call; zero marks
// a free model.
type ModelConfig struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	ProviderID string `yaml:"provider_id"`
	ModelName  string `yaml:"model_name"`
	CostPerUse int    `yaml:"cost_per_use"`
}

// ProviderRegistry stores provider configurations in memory with thread-safe access
type ProviderRegistry struct {
	providers map[string]*ProviderConfig
	mu        sync.RWMutex
}

// NewProviderRegistry creates a new provider registry
func NewProviderRegistry(providers map[string]*ProviderConfig) *ProviderRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*ProviderConfig, len(providers))
	for k, v := range providers {
		copied[k] = v
	}
	return &ProviderRegistry{providers: copied}
}

// Get retrieves a provider configuration by ID (thread-safe)
func (r *ProviderRegistry) Get(id string) (*ProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotFound, id)
	}
	return provider, nil
}

// GetAll returns all provider configurations sorted by ID (thread-safe, returns copy)
func (r *ProviderRegistry) GetAll() []*ProviderConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*ProviderConfig, 0, len(r.providers))
	for _, v := range r.providers {
		result = append(result, v)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Has checks if a provider exists in the registry (thread-safe)
func (r *ProviderRegistry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.providers[id]
	return exists
}

// Len returns the number of providers in the registry (thread-safe)
func (r *ProviderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}

// ModelRegistry stores logical model configurations in memory with thread-safe access
type ModelRegistry struct {
	models map[string]*ModelConfig
	mu     sync.RWMutex
}

// NewModelRegistry creates a new model registry
func NewModelRegistry(models map[string]*ModelConfig) *ModelRegistry {
	copied := make(map[string]*ModelConfig, len(models))
	for k, v := range models {
		copied[k] = v
	}
	return &ModelRegistry{models: copied}
}

// Get retrieves a model configuration by ID (thread-safe)
func (r *ModelRegistry) Get(id string) (*ModelConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	model, exists := r.models[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, id)
	}
	return model, nil
}

// GetAll returns all model configurations sorted by ID (thread-safe, returns copy)
func (r *ModelRegistry) GetAll() []*ModelConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*ModelConfig, 0, len(r.models))
	for _, v := range r.models {
		result = append(result, v)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Has checks if a model exists in the registry (thread-safe)
func (r *ModelRegistry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.models[id]
	return exists
}

// Len returns the number of models in the registry (thread-safe)
func (r *ModelRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.models)
}
