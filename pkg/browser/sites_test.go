package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectorsFor(t *testing.T) {
	profiles := DefaultSiteProfiles()

	tests := []struct {
		name        string
		url         string
		wantContent []string
	}{
		{
			name:        "bbc override",
			url:         "https://www.bbc.com/news/technology-12345",
			wantContent: []string{"article", ".article__body-content"},
		},
		{
			name:        "reuters override",
			url:         "https://www.reuters.com/world/some-story",
			wantContent: []string{"article", ".article-body"},
		},
		{
			name:        "bloomberg override",
			url:         "https://www.bloomberg.com/news/articles/abc",
			wantContent: []string{"article", ".body-content"},
		},
		{
			name:        "unknown domain falls back to defaults",
			url:         "https://example.org/page",
			wantContent: DefaultContentSelectors,
		},
		{
			name:        "schemeless url still matches",
			url:         "www.bbc.com/news",
			wantContent: []string{"article", ".article__body-content"},
		},
		{
			name:        "unparseable url falls back to defaults",
			url:         "://not a url",
			wantContent: DefaultContentSelectors,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers, content := SelectorsFor(profiles, tt.url)
			assert.Equal(t, DefaultHeaderSelectors, headers)
			assert.Equal(t, tt.wantContent, content)
		})
	}
}

func TestSelectorsForMatchIsOnHostNotPath(t *testing.T) {
	profiles := DefaultSiteProfiles()

	// A path mentioning bbc must not trigger the bbc profile.
	_, content := SelectorsFor(profiles, "https://example.com/story-about-bbc")
	assert.Equal(t, DefaultContentSelectors, content)
}

func TestNewSiteProfileInvalidPatternNeverMatches(t *testing.T) {
	broken := NewSiteProfile("[", []string{"h1"}, []string{"p"})
	profiles := []SiteProfile{broken}

	headers, content := SelectorsFor(profiles, "https://anything.example.com")
	assert.Equal(t, DefaultHeaderSelectors, headers)
	assert.Equal(t, DefaultContentSelectors, content)
}

func TestHostOf(t *testing.T) {
	assert.Equal(t, "www.bbc.com", hostOf("https://www.bbc.com/news"))
	assert.Equal(t, "www.bbc.com", hostOf("www.bbc.com/news"))
	assert.Equal(t, "apnews.com", hostOf("http://APNews.com"))
	assert.Equal(t, "", hostOf("://bad"))
}
