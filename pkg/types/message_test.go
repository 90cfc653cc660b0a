package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptPairMessages(t *testing.T) {
	pair := PromptPair{System: "you are a researcher", User: "summarize this"}

	msgs := pair.Messages()
	require.Len(t, msgs, 2)

	assert.Equal(t, RoleSystem, msgs[0].Role)
	assert.Equal(t, "you are a researcher", msgs[0].Content)
	assert.Equal(t, RoleUser, msgs[1].Role)
	assert.Equal(t, "summarize this", msgs[1].Content)
}

func TestExtractionFailed(t *testing.T) {
	assert.False(t, Extraction{URL: "https://example.com"}.Failed())
	assert.True(t, Extraction{Error: "timeout"}.Failed())
}

func TestExtractionEmpty(t *testing.T) {
	assert.True(t, Extraction{}.Empty())
	assert.False(t, Extraction{Content: PageContent{Headers: []string{"h"}}}.Empty())
	assert.False(t, Extraction{Content: PageContent{Paragraphs: []string{"p"}}}.Empty())
}
