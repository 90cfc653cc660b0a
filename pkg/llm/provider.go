// Package llm defines the provider abstraction for chat-completion
// backends and a factory for constructing them by name.
//
// Example usage:
//
//	provider, err := llm.NewProvider("grok", os.Getenv("GROK_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	answer := provider.GenerateResponse(ctx, systemPrompt, userPrompt)
package llm

import "context"

// Provider is a chat-completion backend. Implementations differ only in
// endpoint, default model, and key lookup.
type Provider interface {
	// GenerateResponse sends one system/user prompt pair and returns the
	// first completion choice's text.
	//
	// Failures never surface as errors: transport problems come back as
	// a string prefixed "API Error: " and unexpected response shapes as
	// a string prefixed "Response processing error: ". Callers embed the
	// result in their output either way.
	GenerateResponse(ctx context.Context, systemPrompt, userPrompt string) string

	// Name returns the provider identifier ("grok" or "openai").
	Name() string

	// Model returns the model the provider sends requests for.
	Model() string
}
