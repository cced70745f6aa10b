package config

// builtinProviders is the platform provider catalog. Entries can be
// overridden (or disabled) per deployment via models.yaml.
func builtinProviders() map[string]*ProviderConfig {
	return map[string]*ProviderConfig{
		"openai": {
			ID:           "openai",
			Name:         "OpenAI",
			BaseEndpoint: "https://api.openai.com/v1",
			RequiresKey:  true,
			Enabled:      true,
		},
		"anthropic": {
			ID:           "anthropic",
			Name:         "Anthropic",
			BaseEndpoint: "https://api.anthropic.com/v1",
			RequiresKey:  true,
			Enabled:      true,
		},
		"groq": {
			ID:           "groq",
			Name:         "Groq",
			BaseEndpoint: "https://api.groq.com/openai/v1",
			RequiresKey:  true,
			Enabled:      true,
		},
		"ollama": {
			ID:           "ollama",
			Name:         "Ollama (local)",
			BaseEndpoint: "http://localhost:11434/v1",
			RequiresKey:  false,
			Enabled:      true,
		},
	}
}

// builtinModels is the logical model catalog. Agents reference these IDs;
// the router resolves them to a provider endpoint + concrete model name.
func builtinModels() map[string]*ModelConfig {
	return map[string]*ModelConfig{
		"standard": {
			ID:         "standard",
			Name:       "Standard",
			ProviderID: "openai",
			ModelName:  "gpt-4o-mini",
			CostPerUse: 1,
		},
		"advanced": {
			ID:         "advanced",
			Name:       "Advanced",
			ProviderID: "openai",
			ModelName:  "gpt-4o",
			CostPerUse: 3,
		},
		"reasoning": {
			ID:         "reasoning",
			Name:       "Reasoning",
			ProviderID: "anthropic",
			ModelName:  "claude-sonnet-4-20250514",
			CostPerUse: 3,
		},
		"fast": {
			ID:         "fast",
			Name:       "Fast",
			ProviderID: "groq",
			ModelName:  "llama-3.3-70b-versatile",
			CostPerUse: 1,
		},
		"local": {
			ID:         "local",
			Name:       "Local",
			ProviderID: "ollama",
			ModelName:  "llama3.1",
			CostPerUse: 0,
		},
	}
}
