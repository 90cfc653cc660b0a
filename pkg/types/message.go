// Package types defines the shared data types exchanged between the
// browser, prompt, and llm packages.
package types

// MessageRole identifies the author of a chat message.
type MessageRole string

const (
	// RoleSystem is the system instruction role.
	RoleSystem MessageRole = "system"

	// RoleUser is the end-user role.
	RoleUser MessageRole = "user"

	// RoleAssistant is the model response role.
	RoleAssistant MessageRole = "assistant"
)

// Message is a single chat message sent to or received from a provider.
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// NewMessage creates a message with the given role and content.
func NewMessage(role MessageRole, content string) *Message {
	return &Message{Role: role, Content: content}
}

// NewSystemMessage creates a system-role message.
func NewSystemMessage(content string) *Message {
	return NewMessage(RoleSystem, content)
}

// NewUserMessage creates a user-role message.
func NewUserMessage(content string) *Message {
	return NewMessage(RoleUser, content)
}

// PromptPair is the system/user instruction pair assembled for one model
// call. It is built fresh per call and never persisted.
type PromptPair struct {
	System string
	User   string
}

// Messages expands the pair into the message list providers expect.
func (p PromptPair) Messages() []*Message {
	return []*Message{
		NewSystemMessage(p.System),
		NewUserMessage(p.User),
	}
}

// PageContent holds the text pulled from one page, grouped by selector
// family. Both lists keep the order the selectors were given in.
type PageContent struct {
	Headers    []string `json:"headers"`
	Paragraphs []string `json:"paragraphs"`
}

// Extraction is the structured result of scraping a single page. It is
// immutable once built and discarded after being folded into a prompt.
type Extraction struct {
	URL     string      `json:"url"`
	Title   string      `json:"title,omitempty"`
	Content PageContent `json:"content"`

	// Error carries a human-readable failure note when the page could
	// not be collected. Prompt assembly renders it instead of content.
	Error string `json:"error,omitempty"`
}

// Failed reports whether the extraction carries an error note instead of
// usable content.
func (e Extraction) Failed() bool {
	return e.Error != ""
}

// Empty reports whether the extraction produced no text at all.
func (e Extraction) Empty() bool {
	return len(e.Content.Headers) == 0 && len(e.Content.Paragraphs) == 0
}
