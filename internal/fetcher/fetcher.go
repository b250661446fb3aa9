package fetcher

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// DefaultUserAgent is sent when no user agent is configured.
const DefaultUserAgent = "curl/7.82.0"

// ErrStatus is returned when the server answers with a non-2xx status.
var ErrStatus = errors.New("unexpected status")

// Fetcher retrieves the body of a page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Config configures an HTTPFetcher.
type Config struct {
	UserAgent string
	Timeout   time.Duration
	ProxyURL  string
}

// HTTPFetcher fetches pages with plain GET requests.
type HTTPFetcher struct {
	client *resty.Client
}

// New creates an HTTPFetcher.
func New(cfg Config) *HTTPFetcher {
	ua := cfg.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}

	client := resty.New()
	client.SetHeader("User-Agent", ua)
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	if cfg.ProxyURL != "" {
		client.SetProxy(cfg.ProxyURL)
	}
	return &HTTPFetcher{client: client}
}

// Fetch performs a GET and returns the body. Text bodies are decoded to UTF-8;
// anything else, such as chart images, is returned untouched.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w %d for %s", ErrStatus, resp.StatusCode(), url)
	}

	contentType := resp.Header().Get("Content-Type")
	if !isText(contentType) {
		return resp.Body(), nil
	}
	body, err := Decode(resp.Body(), contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", url, err)
	}
	return body, nil
}

func isText(contentType string) bool {
	ct := strings.ToLower(contentType)
	if ct == "" || strings.HasPrefix(ct, "text/") {
		return true
	}
	for _, s := range []string{"html", "xml", "json", "javascript"} {
		if strings.Contains(ct, s) {
			return true
		}
	}
	return false
}

type paced struct {
	next    Fetcher
	limiter *rate.Limiter
}

// Paced waits on limiter before every fetch. A nil limiter returns f unchanged.
func Paced(f Fetcher, limiter *rate.Limiter) Fetcher {
	if limiter == nil {
		return f
	}
	return &paced{next: f, limiter: limiter}
}

func (p *paced) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return p.next.Fetch(ctx, url)
}

// Limiter builds a limiter allowing perSecond requests with the given burst,
// or nil when perSecond is not positive.
func Limiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}
