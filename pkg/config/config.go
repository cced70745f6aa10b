package config

import (
	"fmt"
	"strings"
)

// Config is the umbrella configuration object: process settings from the
// environment plus the model/provider catalogs. This is the primary object
// returned by Initialize() and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	Settings Settings

	// Catalogs
	ProviderRegistry *ProviderRegistry
	ModelRegistry    *ModelRegistry
}

// Settings holds process-level settings loaded from environment variables.
type Settings struct {
	Port        int
	Environment string // "development" or "production"

	DataDir       string
	WorkspaceRoot string
	SkillsDir     string

	CORSOrigins []string

	// Secrets
	EncryptionKey string // hex-encoded 32-byte AES key; empty disables the vault
	JWTSecret     string // HS256 shared secret
	IssuerURL     string // identity provider base URL (JWKS discovery)
	IssuerAnonKey string // api-key header sent to the issuer

	// Hosted mode gates heartbeats on subscription + credits.
	HostedMode bool

	// Platform-level fallback model used when an agent has no model of
	// its own and no tenant credential applies.
	FallbackModelEndpoint string
	FallbackModelName     string
	FallbackModelKey      string

	// Platform embedding model used for knowledge-base and memory vectors.
	EmbeddingModelEndpoint string
	EmbeddingModelName     string
	EmbeddingModelKey      string

	TranscriptionAPIKey string
}

// IsProduction reports whether the process runs with production settings.
func (s Settings) IsProduction() bool {
	return strings.EqualFold(s.Environment, "production")
}

// Stats contains statistics about loaded configuration
type Stats struct {
	Providers int
	Models    int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.ProviderRegistry != nil {
		s.Providers = c.ProviderRegistry.Len()
	}
	if c.ModelRegistry != nil {
		s.Models = c.ModelRegistry.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetProvider retrieves a provider configuration by ID.
// This is a convenience method that wraps ProviderRegistry.Get().
func (c *Config) GetProvider(id string) (*ProviderConfig, error) {
	return c.ProviderRegistry.Get(id)
}

// GetModel retrieves a logical model configuration by ID.
// This is a convenience method that wraps ModelRegistry.Get().
func (c *Config) GetModel(id string) (*ModelConfig, error) {
	return c.ModelRegistry.Get(id)
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Settings.Port)
}
