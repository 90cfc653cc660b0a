package browser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterResultURLs(t *testing.T) {
	hrefs := []string{
		"https://one.example.com/a",
		"/search?q=relative",
		"ftp://files.example.com/doc",
		"javascript:void(0)",
		"http://two.example.com/b",
		"https://one.example.com/a", // duplicate
		"  https://three.example.com/c  ",
		"",
		"https://four.example.com/d",
		"https://five.example.com/e",
		"https://six.example.com/f",
	}

	out := filterResultURLs(hrefs, MaxSearchResults)

	assert.LessOrEqual(t, len(out), MaxSearchResults)
	assert.Equal(t, []string{
		"https://one.example.com/a",
		"http://two.example.com/b",
		"https://three.example.com/c",
		"https://four.example.com/d",
		"https://five.example.com/e",
	}, out)

	for _, u := range out {
		assert.True(t, strings.HasPrefix(u, "http"), "url %q should start with http", u)
	}
}

func TestFilterResultURLsEmptyInput(t *testing.T) {
	assert.Empty(t, filterResultURLs(nil, MaxSearchResults))
	assert.Empty(t, filterResultURLs([]string{"", "/x", "#frag"}, MaxSearchResults))
}

func TestIsAbsoluteHTTP(t *testing.T) {
	tests := []struct {
		href string
		want bool
	}{
		{"https://example.com", true},
		{"http://example.com/path?q=1", true},
		{"ftp://example.com", false},
		{"//example.com/protocol-relative", false},
		{"/relative/path", false},
		{"mailto:someone@example.com", false},
		{"https://", false},
		{"not a url at all", false},
	}

	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			assert.Equal(t, tt.want, isAbsoluteHTTP(tt.href))
		})
	}
}

func TestToStrings(t *testing.T) {
	in := []interface{}{"a", nil, 42, "b"}
	assert.Equal(t, []string{"a", "b"}, toStrings(in))
	assert.Empty(t, toStrings("not a slice"))
	assert.Empty(t, toStrings(nil))
}
