package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/openai/openai-go"
)

// RequestTimeout bounds a single chat-completion round trip.
const RequestTimeout = 60 * time.Second

// chatRequest is the wire body both providers POST. The messages array
// reuses the OpenAI SDK's param unions so role/content serialization
// stays compatible with every chat-completions endpoint we talk to.
type chatRequest struct {
	Model       string                                   `json:"model"`
	Messages    []openai.ChatCompletionMessageParamUnion `json:"messages"`
	Temperature float64                                  `json:"temperature"`
	Stream      bool                                     `json:"stream"`
}

// chatResponse is the subset of the chat-completions response we read.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// generate performs one chat-completion call and folds every failure
// into the returned string, per the provider contract: transport and
// HTTP-status failures get the "API Error: " prefix, undecodable or
// empty responses get "Response processing error: ".
func generate(ctx context.Context, client *http.Client, url, apiKey, model, systemPrompt, userPrompt string) string {
	body := chatRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Temperature: 0,
		Stream:      false,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Sprintf("Response processing error: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Sprintf("API Error: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Sprintf("API Error: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Sprintf("API Error: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Sprintf("API Error: request failed with status %d: %s", resp.StatusCode, bytes.TrimSpace(raw))
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Sprintf("Response processing error: %v", err)
	}
	if len(parsed.Choices) == 0 {
		return "Response processing error: response contained no choices"
	}

	return parsed.Choices[0].Message.Content
}
