package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ModelsYAMLConfig represents the optional models.yaml override file.
// Entries merge over the built-in catalogs; non-zero fields win.
type ModelsYAMLConfig struct {
	Providers map[string]*ProviderConfig `yaml:"providers"`
	Models    map[string]*ModelConfig    `yaml:"models"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Read process settings from environment variables
//  2. Start from the built-in provider/model catalogs
//  3. Merge models.yaml from configDir, if present
//  4. Build in-memory registries
//  5. Validate all configuration
//  6. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"providers", stats.Providers,
		"models", stats.Models,
		"hosted_mode", cfg.Settings.HostedMode,
		"environment", cfg.Settings.Environment)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	settings, err := loadSettingsFromEnv()
	if err != nil {
		return nil, err
	}

	providers := builtinProviders()
	models := builtinModels()

	// models.yaml is optional; absence means the built-in catalogs apply.
	override, err := loadModelsYAML(configDir)
	if err != nil {
		return nil, NewLoadError("models.yaml", err)
	}
	if override != nil {
		if err := mergeCatalog(providers, override.Providers); err != nil {
			return nil, fmt.Errorf("failed to merge provider overrides: %w", err)
		}
		if err := mergeCatalog(models, override.Models); err != nil {
			return nil, fmt.Errorf("failed to merge model overrides: %w", err)
		}
	}

	return &Config{
		configDir:        configDir,
		Settings:         settings,
		ProviderRegistry: NewProviderRegistry(providers),
		ModelRegistry:    NewModelRegistry(models),
	}, nil
}

func loadSettingsFromEnv() (Settings, error) {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return Settings{}, fmt.Errorf("invalid PORT: %w", err)
	}

	dataDir := getEnvOrDefault("DATA_DIR", "./data")

	s := Settings{
		Port:        port,
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),

		DataDir:       dataDir,
		WorkspaceRoot: getEnvOrDefault("WORKSPACE_ROOT", filepath.Join(dataDir, "workspace")),
		SkillsDir:     getEnvOrDefault("SKILLS_DIR", filepath.Join(dataDir, "skills")),

		EncryptionKey: os.Getenv("ENCRYPTION_KEY"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		IssuerURL:     os.Getenv("ISSUER_URL"),
		IssuerAnonKey: os.Getenv("ISSUER_ANON_KEY"),

		HostedMode: getEnvOrDefault("HOSTED_MODE", "false") == "true",

		FallbackModelEndpoint: os.Getenv("FALLBACK_MODEL_ENDPOINT"),
		FallbackModelName:     os.Getenv("FALLBACK_MODEL_NAME"),
		FallbackModelKey:      os.Getenv("FALLBACK_MODEL_KEY"),

		EmbeddingModelEndpoint: os.Getenv("EMBEDDING_MODEL_ENDPOINT"),
		EmbeddingModelName:     os.Getenv("EMBEDDING_MODEL_NAME"),
		EmbeddingModelKey:      os.Getenv("EMBEDDING_MODEL_KEY"),

		TranscriptionAPIKey: os.Getenv("TRANSCRIPTION_API_KEY"),
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				s.CORSOrigins = append(s.CORSOrigins, o)
			}
		}
	}

	return s, nil
}

// loadModelsYAML reads the optional catalog override file. Returns (nil, nil)
// when the file does not exist.
func loadModelsYAML(configDir string) (*ModelsYAMLConfig, error) {
	path := filepath.Join(configDir, "models.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	// Expand environment variables using {{.VAR}} template syntax
	data = ExpandEnv(data)

	var config ModelsYAMLConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return &config, nil
}

// mergeCatalog merges user-defined entries into the built-in catalog.
// Existing entries are merged field-wise (non-zero user values override);
// unknown IDs are added as-is.
func mergeCatalog[T any](builtin map[string]*T, overrides map[string]*T) error {
	for id, override := range overrides {
		if override == nil {
			continue
		}
		existing, ok := builtin[id]
		if !ok {
			builtin[id] = override
			continue
		}
		if err := mergo.Merge(existing, override, mergo.WithOverride); err != nil {
			return fmt.Errorf("entry %q: %w", id, err)
		}
	}
	return nil
}

// validate performs validation on loaded configuration
func validate(cfg *Config) error {
	s := cfg.Settings

	if s.Port <= 0 || s.Port > 65535 {
		return NewValidationError("settings", "port", "", fmt.Errorf("%w: %d", ErrInvalidValue, s.Port))
	}
	if s.IsProduction() && s.JWTSecret == "" && s.IssuerURL == "" {
		return NewValidationError("settings", "auth", "",
			fmt.Errorf("%w: JWT_SECRET or ISSUER_URL required in production", ErrMissingRequiredField))
	}

	for _, m := range cfg.ModelRegistry.GetAll() {
		if m.ModelName == "" {
			return NewValidationError("model", m.ID, "model_name", ErrMissingRequiredField)
		}
		if m.CostPerUse < 0 {
			return NewValidationError("model", m.ID, "cost_per_use", ErrInvalidValue)
		}
		if !cfg.ProviderRegistry.Has(m.ProviderID) {
			return NewValidationError("model", m.ID, "provider_id",
				fmt.Errorf("%w: %s", ErrInvalidReference, m.ProviderID))
		}
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
