package browser

import (
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"
)

// readableParagraphs runs a readability pass over raw page HTML and
// splits the recovered article text into paragraphs. Used when selector
// extraction finds nothing, which usually means the site renders its
// copy outside the usual article markup.
func readableParagraphs(rawHTML, pageURL string) []string {
	base, err := url.Parse(pageURL)
	if err != nil {
		base = &url.URL{}
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), base)
	if err != nil {
		return nil
	}

	return splitParagraphs(article.TextContent)
}

// splitParagraphs breaks readability text output into trimmed,
// non-empty paragraphs.
func splitParagraphs(text string) []string {
	var out []string
	for _, chunk := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(chunk); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
