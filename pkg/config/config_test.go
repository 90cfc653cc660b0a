package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load consults so tests are hermetic.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvGrokAPIKey, EnvOpenAIAPIKey, EnvDefaultProvider,
		EnvDefaultNewsSite, EnvDefaultTimeout, EnvUserAgent,
	} {
		t.Setenv(key, "")
	}
}

func TestLoadFromDefaults(t *testing.T) {
	clearEnv(t)

	s, err := LoadFrom("")
	require.NoError(t, err)

	assert.Equal(t, DefaultProvider, s.Provider)
	assert.Equal(t, DefaultNewsSite, s.NewsSite)
	assert.Equal(t, DefaultTimeout, s.NavigationTimeout)
	assert.True(t, s.Headless)
	assert.Empty(t, s.GrokAPIKey)
	assert.Empty(t, s.UserAgent)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDefaultProvider, "openai")
	t.Setenv(EnvOpenAIAPIKey, "sk-test")
	t.Setenv(EnvDefaultNewsSite, "https://example.com/news")
	t.Setenv(EnvDefaultTimeout, "45")
	t.Setenv(EnvUserAgent, "WebNinja/1.0")

	s, err := LoadFrom("")
	require.NoError(t, err)

	assert.Equal(t, "openai", s.Provider)
	assert.Equal(t, "sk-test", s.OpenAIAPIKey)
	assert.Equal(t, "https://example.com/news", s.NewsSite)
	assert.Equal(t, 45*time.Second, s.NavigationTimeout)
	assert.Equal(t, "WebNinja/1.0", s.UserAgent)
}

func TestLoadFromMalformedTimeoutIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDefaultTimeout, "not-a-number")

	s, err := LoadFrom("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, s.NavigationTimeout)
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
provider: openai
openai_api_key: sk-from-file
news_site: https://news.example.com
timeout_seconds: 10
headless: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	s, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "openai", s.Provider)
	assert.Equal(t, "sk-from-file", s.OpenAIAPIKey)
	assert.Equal(t, "https://news.example.com", s.NewsSite)
	assert.Equal(t, 10*time.Second, s.NavigationTimeout)
	assert.False(t, s.Headless)
}

func TestLoadFromEnvWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDefaultProvider, "grok")
	t.Setenv(EnvGrokAPIKey, "xai-env")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: openai\ngrok_api_key: xai-file\n"), 0600))

	s, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "grok", s.Provider)
	assert.Equal(t, "xai-env", s.GrokAPIKey)
}

func TestLoadFromMissingFileIsNotAnError(t *testing.T) {
	clearEnv(t)

	s, err := LoadFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultProvider, s.Provider)
}

func TestLoadFromMalformedFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n  - not yaml"), 0600))

	_, err := LoadFrom(path)
	require.Error(t, err)
}

func TestAPIKeySelection(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		expected string
	}{
		{
			name:     "grok provider uses grok key",
			settings: Settings{Provider: "grok", GrokAPIKey: "xai-1", OpenAIAPIKey: "sk-1"},
			expected: "xai-1",
		},
		{
			name:     "openai provider uses openai key",
			settings: Settings{Provider: "openai", GrokAPIKey: "xai-1", OpenAIAPIKey: "sk-1"},
			expected: "sk-1",
		},
		{
			name:     "unknown provider falls back to grok key",
			settings: Settings{Provider: "other", GrokAPIKey: "xai-1"},
			expected: "xai-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.settings.APIKey())
		})
	}
}
