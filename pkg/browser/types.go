package browser

// Default selector sets applied when a caller passes none.
var (
	// DefaultHeaderSelectors match page headings.
	DefaultHeaderSelectors = []string{"h1", "h2", "h3"}

	// DefaultContentSelectors match body copy.
	DefaultContentSelectors = []string{"p", "article"}
)

// Defaults for session setup and search.
const (
	// MaxSearchResults caps the URLs returned by a search.
	MaxSearchResults = 5

	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720
)

// Options configures a browser session.
type Options struct {
	// Headless controls whether the browser runs without a window.
	Headless bool

	// UserAgent overrides the context's User-Agent when non-empty.
	UserAgent string

	// NavigationTimeoutMillis bounds a single page load, in
	// milliseconds. Zero means the playwright default.
	NavigationTimeoutMillis float64
}
