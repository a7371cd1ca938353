package llm

import (
	"fmt"

	"github.com/malakstore/souq/internal/config"
	"github.com/malakstore/souq/internal/llm/generate"
	"github.com/malakstore/souq/internal/types"
)

// NewGenerator creates a generator based on configuration
func NewGenerator(cfg *config.LLMConfig) (types.Generator, error) {
	switch cfg.Generator.Provider {
	case "gemini":
		return generate.NewGeminiGenerator(cfg.Generator.Model, cfg.Generator.APIKeyEnv, cfg.Generator.APIKey)
	case "openai":
		return generate.NewOpenAIGenerator(cfg.Generator.Model, cfg.Generator.APIKeyEnv, cfg.Generator.APIKey)
	case "mock":
		return generate.NewMockGenerator(cfg.Generator.Model), nil
	default:
		return nil, fmt.Errorf("unsupported generator provider: %s", cfg.Generator.Provider)
	}
}
