// Package agent orchestrates the browser, prompt assembly, and model
// provider for the two supported modes: single-task runs and
// multi-source research.
package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mirvald-space/WebNinja/pkg/browser"
	"github.com/mirvald-space/WebNinja/pkg/config"
	"github.com/mirvald-space/WebNinja/pkg/llm"
	"github.com/mirvald-space/WebNinja/pkg/logging"
	"github.com/mirvald-space/WebNinja/pkg/prompt"
	"github.com/mirvald-space/WebNinja/pkg/types"
)

// DefaultResearchSources is the trusted source list research mode walks.
// A fixed list is used instead of a live search because trusted-site
// markup breaks far less often than search-result markup.
var DefaultResearchSources = []string{
	"https://www.reuters.com",
	"https://www.bbc.com/news",
	"https://apnews.com",
	"https://www.bloomberg.com",
	"https://www.theguardian.com/international",
}

// collector is the browser surface the agent drives. Satisfied by
// *browser.Browser; substituted in tests.
type collector interface {
	Navigate(url string) bool
	ExtractContent(headerSelectors, contentSelectors []string) types.Extraction
	VisitKnownSite(url string) types.Extraction
	Search(query string) []string
	EmulateHuman()
	Close()
}

// WebAgent gathers web content and forwards it to a model provider.
// It holds no mutable state across calls beyond its configuration; each
// call opens and closes its own browser session.
type WebAgent struct {
	settings config.Settings
	provider llm.Provider
	log      *logging.Logger
	sources  []string

	// openSession is the browser session factory; replaced in tests.
	openSession func() (collector, error)
}

// Option configures a WebAgent.
type Option func(*WebAgent)

// WithProvider overrides the provider resolved from settings.
func WithProvider(p llm.Provider) Option {
	return func(a *WebAgent) {
		a.provider = p
	}
}

// WithLogger sets the agent's logger.
func WithLogger(log *logging.Logger) Option {
	return func(a *WebAgent) {
		a.log = log
	}
}

// WithResearchSources replaces the trusted source list used by Research.
func WithResearchSources(sources []string) Option {
	return func(a *WebAgent) {
		a.sources = sources
	}
}

// New creates a WebAgent from resolved settings.
//
// The model provider is constructed here, so a missing API key fails
// immediately rather than on first use.
func New(settings config.Settings, opts ...Option) (*WebAgent, error) {
	a := &WebAgent{
		settings: settings,
		sources:  DefaultResearchSources,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.provider == nil {
		provider, err := llm.NewProvider(settings.Provider, settings.APIKey())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize provider: %w", err)
		}
		a.provider = provider
	}

	if a.log == nil {
		// A failed file logger falls back to stderr and reports the
		// problem itself.
		log, _ := logging.NewLogger("agent")
		a.log = log
	}

	a.openSession = func() (collector, error) {
		return browser.Launch(browser.Options{
			Headless:                settings.Headless,
			UserAgent:               settings.UserAgent,
			NavigationTimeoutMillis: float64(settings.NavigationTimeout.Milliseconds()),
		}, a.log)
	}

	return a, nil
}

// Run performs a single task: gather content for it, fold the content
// into a task prompt, and return the model's answer.
//
// Content-gathering failures degrade to an error note inside the prompt
// and provider failures come back as the provider's own error string;
// the only error returned here is a browser session that cannot open.
func (a *WebAgent) Run(ctx context.Context, task string) (string, error) {
	session, err := a.openSession()
	if err != nil {
		return "", fmt.Errorf("failed to open browser session: %w", err)
	}
	defer session.Close()

	record := a.collectForTask(session, task)

	pair := prompt.BuildTaskPrompt(task, record)
	a.log.Infof("task prompt assembled for %q (~%d tokens)",
		task, prompt.EstimatePairTokens(pair.System, pair.User))

	return a.provider.GenerateResponse(ctx, pair.System, pair.User), nil
}

// collectForTask picks the gathering strategy for a task: news tasks go
// straight to the configured news site, everything else goes through
// search and visits the first hit.
func (a *WebAgent) collectForTask(session collector, task string) types.Extraction {
	if strings.Contains(strings.ToLower(task), "news") {
		return session.VisitKnownSite(a.settings.NewsSite)
	}

	results := session.Search(task)
	if len(results) == 0 {
		return types.Extraction{Error: "No relevant results found"}
	}

	if !session.Navigate(results[0]) {
		// Absorbed into an empty-content record, matching the
		// navigator's degradation contract.
		return types.Extraction{URL: results[0]}
	}

	session.EmulateHuman()
	return session.ExtractContent(nil, nil)
}

// Research walks the trusted source list up to depth entries under a
// wall-clock budget, then asks the model for a structured multi-source
// report over whatever was collected.
//
// The budget is checked between sources only; a single slow navigation
// can overshoot it. When the budget is exceeded a sentinel record is
// appended and the walk stops.
func (a *WebAgent) Research(ctx context.Context, topic string, depth int, maxTime time.Duration) (string, error) {
	session, err := a.openSession()
	if err != nil {
		return "", fmt.Errorf("failed to open browser session: %w", err)
	}
	defer session.Close()

	records := collectSources(session, a.sources, depth, maxTime, a.log)
	a.log.Infof("research on %q collected %d source records", topic, len(records))

	pair := prompt.BuildResearchPrompt(topic, records)
	a.log.Infof("research prompt assembled (~%d tokens)",
		prompt.EstimatePairTokens(pair.System, pair.User))

	return a.provider.GenerateResponse(ctx, pair.System, pair.User), nil
}

// collectSources visits up to depth sources within the time budget.
// Navigation failures leave a silent gap in the record list; an
// exhausted budget appends the interruption sentinel and stops.
func collectSources(session collector, sources []string, depth int, maxTime time.Duration, log *logging.Logger) []types.Extraction {
	if depth < 0 {
		depth = 0
	}
	if depth < len(sources) {
		sources = sources[:depth]
	}

	start := time.Now()
	var records []types.Extraction

	for _, url := range sources {
		if time.Since(start) > maxTime {
			records = append(records, types.Extraction{
				URL:   "Time limit exceeded",
				Error: "Research was interrupted due to time limit",
			})
			break
		}

		if !session.Navigate(url) {
			log.Warnf("skipping unreachable source %s", url)
			continue
		}

		record := session.ExtractContent(nil, nil)
		if record.URL == "" {
			record.URL = url
		}
		records = append(records, record)
	}

	return records
}

// Provider exposes the configured provider, mainly for callers that
// want to log which backend answered.
func (a *WebAgent) Provider() llm.Provider {
	return a.provider
}
