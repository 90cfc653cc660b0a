package llm

import (
	"fmt"
	"strings"
)

// NewProvider constructs a provider by name. Supported names are "grok"
// and "openai" (case-insensitive). An empty apiKey falls back to the
// provider's environment variable.
func NewProvider(name, apiKey string) (Provider, error) {
	switch strings.ToLower(name) {
	case "grok":
		return NewGrokProvider(apiKey)
	case "openai":
		return NewOpenAIProvider(apiKey)
	default:
		return nil, fmt.Errorf("unknown provider: %s", name)
	}
}
