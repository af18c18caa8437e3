package factory

import (
	"fmt"

	"beauty-advisor-be/pkg/llm"
	"beauty-advisor-be/pkg/llm/ollama"
)

// NewLLMProvider builds the configured provider. "none" disables LLM
// phrasing entirely; the chat service then uses its template fallback.
func NewLLMProvider(providerType, modelName, baseURL string) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "none", "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
