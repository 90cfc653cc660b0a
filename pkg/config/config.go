// Package config resolves agent settings from the environment and an
// optional YAML settings file.
//
// Settings are resolved once at startup and passed into constructors;
// packages never read the environment ad hoc.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables recognised by Load.
const (
	EnvGrokAPIKey      = "GROK_API_KEY"
	EnvOpenAIAPIKey    = "OPENAI_API_KEY"
	EnvDefaultProvider = "DEFAULT_PROVIDER"
	EnvDefaultNewsSite = "DEFAULT_NEWS_SITE"
	EnvDefaultTimeout  = "DEFAULT_TIMEOUT"
	EnvUserAgent       = "USER_AGENT"
)

// Defaults applied when neither the environment nor the settings file
// provides a value.
const (
	DefaultProvider = "grok"
	DefaultNewsSite = "https://www.bbc.com/news"
	DefaultTimeout  = 30 * time.Second
)

// Settings holds every knob the agent and its collaborators need.
// Resolved once; immutable for the lifetime of the agent.
type Settings struct {
	// Provider selects the chat-completion backend: "grok" or "openai".
	Provider string `yaml:"provider"`

	// GrokAPIKey and OpenAIAPIKey authenticate against the respective
	// provider. Only the selected provider's key is required.
	GrokAPIKey   string `yaml:"grok_api_key"`
	OpenAIAPIKey string `yaml:"openai_api_key"`

	// NewsSite is the page visited when a task asks for news.
	NewsSite string `yaml:"news_site"`

	// NavigationTimeout bounds a single page load.
	NavigationTimeout time.Duration `yaml:"navigation_timeout"`

	// UserAgent overrides the browser's default User-Agent when set.
	UserAgent string `yaml:"user_agent"`

	// Headless controls whether the browser runs without a window.
	Headless bool `yaml:"headless"`
}

// fileSettings is the YAML shape of the optional settings file. Timeout
// is expressed in seconds there, matching DEFAULT_TIMEOUT.
type fileSettings struct {
	Provider       string `yaml:"provider"`
	GrokAPIKey     string `yaml:"grok_api_key"`
	OpenAIAPIKey   string `yaml:"openai_api_key"`
	NewsSite       string `yaml:"news_site"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	UserAgent      string `yaml:"user_agent"`
	Headless       *bool  `yaml:"headless"`
}

// DefaultSettingsPath returns the conventional settings file location,
// ~/.webninja/config.yaml. An empty string is returned when the home
// directory cannot be determined.
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".webninja", "config.yaml")
}

// Load resolves settings from the default file location and the process
// environment. Environment values win over file values; defaults fill
// the rest. A missing settings file is not an error.
func Load() (Settings, error) {
	return LoadFrom(DefaultSettingsPath())
}

// LoadFrom is Load with an explicit settings file path. Pass an empty
// path to skip file loading entirely.
func LoadFrom(path string) (Settings, error) {
	s := Settings{
		Provider:          DefaultProvider,
		NewsSite:          DefaultNewsSite,
		NavigationTimeout: DefaultTimeout,
		Headless:          true,
	}

	if path != "" {
		if err := mergeFile(&s, path); err != nil {
			return Settings{}, err
		}
	}

	mergeEnv(&s)
	return s, nil
}

// mergeFile overlays values from the YAML settings file onto s. The file
// is optional; only a present-but-unreadable file is an error.
func mergeFile(s *Settings, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var fs fileSettings
	if err := yaml.Unmarshal(raw, &fs); err != nil {
		return fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	if fs.Provider != "" {
		s.Provider = fs.Provider
	}
	if fs.GrokAPIKey != "" {
		s.GrokAPIKey = fs.GrokAPIKey
	}
	if fs.OpenAIAPIKey != "" {
		s.OpenAIAPIKey = fs.OpenAIAPIKey
	}
	if fs.NewsSite != "" {
		s.NewsSite = fs.NewsSite
	}
	if fs.TimeoutSeconds > 0 {
		s.NavigationTimeout = time.Duration(fs.TimeoutSeconds) * time.Second
	}
	if fs.UserAgent != "" {
		s.UserAgent = fs.UserAgent
	}
	if fs.Headless != nil {
		s.Headless = *fs.Headless
	}

	return nil
}

// mergeEnv overlays environment values onto s. A malformed
// DEFAULT_TIMEOUT is ignored rather than fatal; whatever value survives
// here is the timeout the navigator honours.
func mergeEnv(s *Settings) {
	if v := os.Getenv(EnvDefaultProvider); v != "" {
		s.Provider = v
	}
	if v := os.Getenv(EnvGrokAPIKey); v != "" {
		s.GrokAPIKey = v
	}
	if v := os.Getenv(EnvOpenAIAPIKey); v != "" {
		s.OpenAIAPIKey = v
	}
	if v := os.Getenv(EnvDefaultNewsSite); v != "" {
		s.NewsSite = v
	}
	if v := os.Getenv(EnvDefaultTimeout); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			s.NavigationTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv(EnvUserAgent); v != "" {
		s.UserAgent = v
	}
}

// APIKey returns the key for the selected provider, or an empty string
// when none is configured.
func (s Settings) APIKey() string {
	switch s.Provider {
	case "openai":
		return s.OpenAIAPIKey
	default:
		return s.GrokAPIKey
	}
}
