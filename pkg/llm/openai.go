package llm

import (
	"context"
	"fmt"
	"net/http"
	"os"
)

const (
	// OpenAIDefaultBaseURL is the OpenAI API base URL.
	OpenAIDefaultBaseURL = "https://api.openai.com/v1"

	// OpenAIDefaultModel is the model used when none is configured.
	OpenAIDefaultModel = "gpt-4"
)

// OpenAIProvider talks to the OpenAI chat-completions endpoint.
type OpenAIProvider struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
}

// OpenAIOption configures an OpenAIProvider.
type OpenAIOption func(*OpenAIProvider)

// WithOpenAIModel overrides the default OpenAI model.
func WithOpenAIModel(model string) OpenAIOption {
	return func(p *OpenAIProvider) {
		p.model = model
	}
}

// WithOpenAIBaseURL overrides the OpenAI base URL. This enables Azure
// deployments, local OpenAI-compatible servers, and tests.
func WithOpenAIBaseURL(baseURL string) OpenAIOption {
	return func(p *OpenAIProvider) {
		p.baseURL = baseURL
	}
}

// NewOpenAIProvider creates an OpenAI provider.
//
// If apiKey is empty, the OPENAI_API_KEY environment variable is
// consulted. Construction fails when no key is resolvable.
func NewOpenAIProvider(apiKey string, opts ...OpenAIOption) (*OpenAIProvider, error) {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required (provide via parameter or OPENAI_API_KEY environment variable)")
	}

	p := &OpenAIProvider{
		httpClient: &http.Client{Timeout: RequestTimeout},
		apiKey:     apiKey,
		baseURL:    OpenAIDefaultBaseURL,
		model:      OpenAIDefaultModel,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// GenerateResponse implements Provider.
func (p *OpenAIProvider) GenerateResponse(ctx context.Context, systemPrompt, userPrompt string) string {
	return generate(ctx, p.httpClient, p.baseURL+"/chat/completions", p.apiKey, p.model, systemPrompt, userPrompt)
}

// Name implements Provider.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Model implements Provider.
func (p *OpenAIProvider) Model() string {
	return p.model
}
