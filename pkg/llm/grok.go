package llm

import (
	"context"
	"fmt"
	"net/http"
	"os"
)

const (
	// GrokDefaultBaseURL is the x.ai API base URL.
	GrokDefaultBaseURL = "https://api.x.ai/v1"

	// GrokDefaultModel is the model used when none is configured.
	GrokDefaultModel = "grok-beta"
)

// GrokProvider talks to the Grok (x.ai) chat-completions endpoint.
type GrokProvider struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
}

// GrokOption configures a GrokProvider.
type GrokOption func(*GrokProvider)

// WithGrokModel overrides the default Grok model.
func WithGrokModel(model string) GrokOption {
	return func(p *GrokProvider) {
		p.model = model
	}
}

// WithGrokBaseURL overrides the x.ai base URL. Used for compatible
// gateways and in tests.
func WithGrokBaseURL(baseURL string) GrokOption {
	return func(p *GrokProvider) {
		p.baseURL = baseURL
	}
}

// NewGrokProvider creates a Grok provider.
//
// If apiKey is empty, the GROK_API_KEY environment variable is consulted.
// Construction fails when no key is resolvable; this is the only failure
// in the package that surfaces as an error rather than a string.
func NewGrokProvider(apiKey string, opts ...GrokOption) (*GrokProvider, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GROK_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("grok API key is required (provide via parameter or GROK_API_KEY environment variable)")
	}

	p := &GrokProvider{
		httpClient: &http.Client{Timeout: RequestTimeout},
		apiKey:     apiKey,
		baseURL:    GrokDefaultBaseURL,
		model:      GrokDefaultModel,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// GenerateResponse implements Provider.
func (p *GrokProvider) GenerateResponse(ctx context.Context, systemPrompt, userPrompt string) string {
	return generate(ctx, p.httpClient, p.baseURL+"/chat/completions", p.apiKey, p.model, systemPrompt, userPrompt)
}

// Name implements Provider.
func (p *GrokProvider) Name() string {
	return "grok"
}

// Model implements Provider.
func (p *GrokProvider) Model() string {
	return p.model
}
