package browser

import (
	"net/url"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// Search drives the search engine's web UI with the given query and
// returns up to MaxSearchResults outbound result URLs in page order.
//
// Search-page markup changes often, so the whole flow is deliberately
// lenient: any failure along the way collapses to an empty result list.
func (b *Browser) Search(query string) []string {
	if !b.Navigate("https://www.google.com") {
		return nil
	}

	b.dismissConsent()

	if err := b.page.Fill(`textarea[name="q"]`, query); err != nil {
		b.log.Warnf("search input fill failed: %v", err)
		return nil
	}
	if err := b.page.Keyboard().Press("Enter"); err != nil {
		b.log.Warnf("search submit failed: %v", err)
		return nil
	}
	if err := b.waitForNetworkIdle(); err != nil {
		b.log.Warnf("search results did not settle: %v", err)
		return nil
	}

	hrefs, err := b.page.Locator("div.g a[href]").EvaluateAll(
		"els => els.map(el => el.getAttribute('href'))", nil)
	if err != nil {
		b.log.Warnf("search result scan failed: %v", err)
		return nil
	}

	return filterResultURLs(toStrings(hrefs), MaxSearchResults)
}

// dismissConsent clicks through the cookie-consent dialog when one is
// shown. Best-effort: absence or failure is ignored.
func (b *Browser) dismissConsent() {
	timeout := 2000.0
	err := b.page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{
		Name: "Accept all",
	}).Click(playwright.LocatorClickOptions{Timeout: &timeout})
	if err != nil {
		b.log.Debugf("no consent dialog dismissed: %v", err)
	}
}

// toStrings converts a page-evaluation result into a string slice,
// dropping anything that is not a string.
func toStrings(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// filterResultURLs keeps well-formed absolute http(s) URLs, preserving
// order and dropping duplicates, capped at limit entries.
func filterResultURLs(hrefs []string, limit int) []string {
	var out []string
	seen := make(map[string]bool, len(hrefs))

	for _, href := range hrefs {
		href = strings.TrimSpace(href)
		if href == "" || seen[href] {
			continue
		}
		if !isAbsoluteHTTP(href) {
			continue
		}
		seen[href] = true
		out = append(out, href)
		if len(out) >= limit {
			break
		}
	}
	return out
}

// isAbsoluteHTTP reports whether href is a well-formed absolute http or
// https URL.
func isAbsoluteHTTP(href string) bool {
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
