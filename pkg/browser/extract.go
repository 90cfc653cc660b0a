package browser

import (
	"strings"

	"github.com/mirvald-space/WebNinja/pkg/types"
)

// textQuerier is the narrow seam extraction runs against. The live
// implementation queries the playwright page; tests substitute a stub.
type textQuerier interface {
	// textsFor returns the text content of every element matching the
	// selector, in document order.
	textsFor(selector string) ([]string, error)

	// currentURL returns the URL of the page being extracted.
	currentURL() string

	// rawHTML returns the full page HTML, used for metadata and the
	// readability fallback. An error disables both.
	rawHTML() (string, error)
}

func (b *Browser) textsFor(selector string) ([]string, error) {
	return b.page.Locator(selector).AllTextContents()
}

func (b *Browser) currentURL() string {
	return b.page.URL()
}

func (b *Browser) rawHTML() (string, error) {
	return b.page.Content()
}

// ExtractContent pulls text from the current page using the given
// selector lists, defaulting to DefaultHeaderSelectors and
// DefaultContentSelectors when nil or empty.
//
// A selector that fails to query is skipped silently; partial results
// are expected, not fatal. When no content selector matches anything,
// a readability pass over the raw HTML fills in the paragraphs.
func (b *Browser) ExtractContent(headerSelectors, contentSelectors []string) types.Extraction {
	return extractFrom(b, headerSelectors, contentSelectors, b.log.Debugf)
}

// extractFrom is ExtractContent against the querier seam.
func extractFrom(q textQuerier, headerSelectors, contentSelectors []string, debugf func(string, ...interface{})) types.Extraction {
	if len(headerSelectors) == 0 {
		headerSelectors = DefaultHeaderSelectors
	}
	if len(contentSelectors) == 0 {
		contentSelectors = DefaultContentSelectors
	}

	record := types.Extraction{
		URL: q.currentURL(),
		Content: types.PageContent{
			Headers:    collectTexts(q, headerSelectors, debugf),
			Paragraphs: collectTexts(q, contentSelectors, debugf),
		},
	}

	raw, err := q.rawHTML()
	if err != nil {
		debugf("raw html unavailable for %s: %v", record.URL, err)
		return record
	}

	record.Title = pageTitle(raw)

	if len(record.Content.Paragraphs) == 0 {
		record.Content.Paragraphs = readableParagraphs(raw, record.URL)
		if len(record.Content.Paragraphs) > 0 {
			debugf("readability fallback recovered %d paragraphs from %s", len(record.Content.Paragraphs), record.URL)
		}
	}

	// Last resort: a meta description is better than nothing.
	if len(record.Content.Paragraphs) == 0 {
		if desc := metaDescription(raw); desc != "" {
			record.Content.Paragraphs = []string{desc}
		}
	}

	return record
}

// collectTexts gathers trimmed element texts for each selector in order.
// Selector failures are skipped; empty texts contribute nothing.
func collectTexts(q textQuerier, selectors []string, debugf func(string, ...interface{})) []string {
	var out []string
	for _, selector := range selectors {
		texts, err := q.textsFor(selector)
		if err != nil {
			debugf("selector %q skipped: %v", selector, err)
			continue
		}
		for _, text := range texts {
			if trimmed := strings.TrimSpace(text); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}
