// Package llm hides the concrete text-generation provider behind a single
// interface. The orchestrator only ever needs "prompt in, table text out";
// provider selection happens once at startup through the factory.
package llm

import (
	"context"
	"fmt"
	"strings"
)

type GenerateRequest struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
}

type ClientInterface interface {
	GenerateText(ctx context.Context, req GenerateRequest) (string, error)
}

type Config struct {
	Provider string // "openai" or "gemini"
	APIKey   string
	Model    string
}

// NewClient builds the provider named by cfg. Any failure here is fatal for
// the caller; there is no fallback provider.
func NewClient(cfg Config) (ClientInterface, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return NewOpenAIClient(cfg.APIKey, cfg.Model), nil
	case "gemini":
		return NewGeminiClient(cfg.APIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s. Use 'openai' or 'gemini'", cfg.Provider)
	}
}
