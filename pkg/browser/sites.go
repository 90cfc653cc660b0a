package browser

import (
	"net/url"
	"strings"

	"github.com/gobwas/glob"
)

// SiteProfile binds a host pattern to the selectors that work on that
// site. Patterns use glob syntax and are matched against the URL host.
type SiteProfile struct {
	Pattern string
	Headers []string
	Content []string

	compiled glob.Glob
}

// NewSiteProfile creates a profile with its pattern pre-compiled. An
// invalid pattern yields a profile that never matches.
func NewSiteProfile(pattern string, headers, content []string) SiteProfile {
	p := SiteProfile{
		Pattern: pattern,
		Headers: headers,
		Content: content,
	}
	if g, err := glob.Compile(pattern); err == nil {
		p.compiled = g
	}
	return p
}

// DefaultSiteProfiles returns the built-in selector overrides for news
// sites whose article markup deviates from the generic defaults.
func DefaultSiteProfiles() []SiteProfile {
	return []SiteProfile{
		NewSiteProfile("*bbc*", DefaultHeaderSelectors, []string{"article", ".article__body-content"}),
		NewSiteProfile("*reuters*", DefaultHeaderSelectors, []string{"article", ".article-body"}),
		NewSiteProfile("*bloomberg*", DefaultHeaderSelectors, []string{"article", ".body-content"}),
	}
}

// SelectorsFor resolves the header and content selectors to use for a
// URL. The first profile whose pattern matches the host wins; unmatched
// hosts fall back to the generic defaults.
func SelectorsFor(profiles []SiteProfile, rawURL string) (headers, content []string) {
	host := hostOf(rawURL)
	if host != "" {
		for _, p := range profiles {
			if p.compiled != nil && p.compiled.Match(host) {
				return p.Headers, p.Content
			}
		}
	}
	return DefaultHeaderSelectors, DefaultContentSelectors
}

// hostOf extracts the lower-cased host from a URL, tolerating bare
// host/path strings without a scheme.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := u.Host
	if host == "" {
		// No scheme: "www.bbc.com/news" parses as a path.
		host = strings.SplitN(u.Path, "/", 2)[0]
	}
	return strings.ToLower(host)
}

// SetProfiles replaces the browser's site profiles. Mainly useful for
// callers that load profiles from configuration.
func (b *Browser) SetProfiles(profiles []SiteProfile) {
	b.profiles = profiles
}
