package prompt

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	encodingOnce sync.Once
	encoding     *tiktoken.Tiktoken
)

// EstimateTokens returns the approximate token count of text using the
// cl100k_base encoding. When the encoding cannot be loaded (offline
// environments), it falls back to the usual four-characters-per-token
// heuristic. Used for logging and budget sanity checks only.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}

	encodingOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err == nil {
			encoding = enc
		}
	})

	if encoding == nil {
		return (len(text) + 3) / 4
	}
	return len(encoding.Encode(text, nil, nil))
}

// EstimatePairTokens estimates the combined token count of a prompt
// pair's system and user messages.
func EstimatePairTokens(system, user string) int {
	return EstimateTokens(system) + EstimateTokens(user)
}
