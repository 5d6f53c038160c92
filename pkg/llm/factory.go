package llm

import (
	"fmt"
	"os"
	"strings"
)

// Provider represents the LLM provider type
type Provider string

const (
	ProviderClaude Provider = "claude"
	ProviderOpenAI Provider = "openai"
)

// CreateFromEnv creates an LLM instance from environment variables, with
// optional provider and model overrides (flags win over env).
func CreateFromEnv(providerOverride, modelOverride string) (LLM, error) {
	provider := strings.ToLower(providerOverride)
	if provider == "" {
		provider = strings.ToLower(os.Getenv("LLM_PROVIDER"))
	}

	switch Provider(provider) {
	case ProviderOpenAI:
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
		model := modelOverride
		if model == "" {
			model = os.Getenv("OPENAI_MODEL")
		}
		if model != "" {
			return NewOpenAIWithModel(apiKey, model), nil
		}
		return NewOpenAI(apiKey), nil

	case ProviderClaude, "":
		// Default to Claude when nothing is configured.
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
		model := modelOverride
		if model == "" {
			model = os.Getenv("CLAUDE_MODEL")
		}
		if model != "" {
			return NewClaudeWithModel(apiKey, model), nil
		}
		return NewClaude(apiKey), nil

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s (supported: claude, openai)", provider)
	}
}

// Available reports whether any provider is configured in the environment.
func Available() bool {
	return os.Getenv("ANTHROPIC_API_KEY") != "" || os.Getenv("OPENAI_API_KEY") != ""
}
