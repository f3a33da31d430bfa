package factory

import (
	"fmt"

	"nko-content-assistant/pkg/llm"
	"nko-content-assistant/pkg/llm/openrouter"
)

func NewLLMProvider(providerType, baseURL, apiKey, modelName string) (llm.LLMProvider, error) {
	switch providerType {
	case "openrouter":
		if baseURL == "" {
			baseURL = "https://openrouter.ai/api/v1" // Default
		}
		return openrouter.NewOpenRouterProvider(baseURL, apiKey, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
