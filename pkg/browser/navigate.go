package browser

import (
	"math/rand"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/mirvald-space/WebNinja/pkg/types"
)

// Navigate attempts to load the given URL. Failures (DNS, timeout, TLS)
// are absorbed and reported as false; they never propagate to callers.
func (b *Browser) Navigate(url string) bool {
	_, err := b.page.Goto(url)
	if err != nil {
		b.log.Warnf("navigation to %s failed: %v", url, err)
		return false
	}
	return true
}

// EmulateHuman performs a short randomized pause, scroll, and mouse move
// to look less like an automated visitor. Input errors are ignored; this
// is best-effort camouflage, not page interaction.
func (b *Browser) EmulateHuman() {
	time.Sleep(time.Duration(1000+rand.Intn(2000)) * time.Millisecond)

	_ = b.page.Mouse().Wheel(0, float64(300+rand.Intn(400)))
	time.Sleep(time.Duration(500+rand.Intn(1000)) * time.Millisecond)

	_ = b.page.Mouse().Move(float64(100+rand.Intn(400)), float64(100+rand.Intn(400)))
}

// VisitKnownSite navigates to a site and extracts its content using the
// selector profile registered for its domain. A failed navigation
// degrades to a record with empty content rather than an error.
func (b *Browser) VisitKnownSite(url string) types.Extraction {
	if !b.Navigate(url) {
		return types.Extraction{URL: url}
	}

	headers, content := SelectorsFor(b.profiles, url)
	return b.ExtractContent(headers, content)
}

// waitForNetworkIdle blocks until the page's network settles, bounded by
// the page's default timeout. Used after submitting searches.
func (b *Browser) waitForNetworkIdle() error {
	return b.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateNetworkidle,
	})
}
