package llm_fx

import (
	"os"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"evoluciona/internal/llm"
)

var Module = fx.Provide(provideLLMClient)

func provideLLMClient(logger *zap.Logger) (llm.ClientInterface, error) {
	cfg := configFromEnv()
	logger.Info("initializing llm client",
		zap.String("provider", cfg.Provider), zap.String("model", cfg.Model))
	return llm.NewClient(cfg)
}

func configFromEnv() llm.Config {
	provider := strings.ToLower(os.Getenv("LLM_PROVIDER"))
	if provider == "" {
		provider = "openai"
	}

	cfg := llm.Config{Provider: provider}
	switch provider {
	case "gemini":
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
		cfg.Model = os.Getenv("GEMINI_MODEL")
	default:
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		cfg.Model = os.Getenv("OPENAI_MODEL")
	}
	return cfg
}
