package fetcher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"finviz/internal/browser"

	"github.com/go-rod/rod/lib/proto"
)

// RenderFetcher loads pages in a browser and returns the rendered document.
type RenderFetcher struct {
	browser   *browser.Browser
	userAgent string
	timeout   time.Duration
}

// NewRenderFetcher creates a RenderFetcher on an already launched browser.
func NewRenderFetcher(b *browser.Browser, userAgent string, timeout time.Duration) *RenderFetcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &RenderFetcher{browser: b, userAgent: userAgent, timeout: timeout}
}

// Fetch navigates to url, waits for the load event and returns the outer HTML
// of the document.
func (f *RenderFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	page, err := f.browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	defer page.Close()

	timed := page.Context(ctx).Timeout(f.timeout)
	defer timed.CancelTimeout()
	if f.userAgent != "" {
		if err := timed.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
			return nil, fmt.Errorf("failed to set user agent: %w", err)
		}
	}
	if err := timed.Navigate(url); err != nil {
		return nil, fmt.Errorf("failed to navigate: %w", err)
	}
	if err := timed.WaitLoad(); err != nil {
		return nil, fmt.Errorf("failed to wait for page load: %w", err)
	}

	result, err := timed.Eval(`() => {
		return document.documentElement.outerHTML;
	}`)
	if err != nil {
		return nil, fmt.Errorf("failed to get full HTML: %w", err)
	}

	html := result.Value.Str()
	if !strings.Contains(html, "<!DOCTYPE") {
		html = "<!DOCTYPE html>\n" + html
	}
	return []byte(html), nil
}
