// Package browser wraps a single playwright-driven Chromium session and
// the scraping primitives built on it: navigation, selector-based
// content extraction, site profiles, and search-engine driving.
//
// One Browser drives one page, strictly sequentially. Sessions are
// acquired at the start of an agent call and closed unconditionally at
// the end.
package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/mirvald-space/WebNinja/pkg/logging"
)

// Browser is an active browser session: one playwright instance, one
// browser, one context, one page.
type Browser struct {
	pw       *playwright.Playwright
	browser  playwright.Browser
	context  playwright.BrowserContext
	page     playwright.Page
	profiles []SiteProfile
	log      *logging.Logger
}

// launchArgs disable the automation fingerprints that trip the most
// common bot checks.
var launchArgs = []string{
	"--disable-blink-features=AutomationControlled",
	"--disable-features=IsolateOrigins,site-per-process",
}

// Launch starts a Chromium session with the given options. The caller
// owns the session and must Close it, including on error paths.
func Launch(opts Options, log *logging.Logger) (*Browser, error) {
	if log == nil {
		log = logging.Discard()
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: &opts.Headless,
		Args:     launchArgs,
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	contextOpts := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  DefaultViewportWidth,
			Height: DefaultViewportHeight,
		},
	}
	if opts.UserAgent != "" {
		contextOpts.UserAgent = &opts.UserAgent
	}

	context, err := b.NewContext(contextOpts)
	if err != nil {
		b.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	page, err := context.NewPage()
	if err != nil {
		context.Close()
		b.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	if opts.NavigationTimeoutMillis > 0 {
		page.SetDefaultNavigationTimeout(opts.NavigationTimeoutMillis)
	}

	log.Debugf("browser session started (headless=%v)", opts.Headless)

	return &Browser{
		pw:       pw,
		browser:  b,
		context:  context,
		page:     page,
		profiles: DefaultSiteProfiles(),
		log:      log,
	}, nil
}

// Close releases the page, context, browser, and playwright driver.
// Individual close errors are ignored so cleanup always runs to the end.
func (b *Browser) Close() {
	if b.page != nil {
		_ = b.page.Close()
	}
	if b.context != nil {
		_ = b.context.Close()
	}
	if b.browser != nil {
		_ = b.browser.Close()
	}
	if b.pw != nil {
		_ = b.pw.Stop()
	}
	b.log.Debugf("browser session closed")
}

// CurrentURL returns the URL of the page the session is on.
func (b *Browser) CurrentURL() string {
	return b.page.URL()
}
