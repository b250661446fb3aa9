package finviz

import (
	"context"
	"fmt"
	"strings"

	"finviz/internal/browser"
	"finviz/internal/fetcher"
	"finviz/internal/output"
	"finviz/internal/scraper"

	"go.uber.org/zap"
)

// DefaultBaseURL is the site root requests are made against.
const DefaultBaseURL = "https://finviz.com"

// Names lists the table endpoints in the order they are shown on the command line.
var Names = []string{"screener", "crypto", "forex", "futures", "groups", "insider", "news", "quote"}

func init() {
	for _, name := range Names {
		scraper.Register(&TableScraper{name: name})
	}
	scraper.Register(&ChartScraper{})
}

// Run fetches e from baseURL and extracts its tables.
func Run(ctx context.Context, f fetcher.Fetcher, baseURL string, e Endpoint) ([]output.Table, error) {
	body, err := f.Fetch(ctx, strings.TrimRight(baseURL, "/")+e.Path())
	if err != nil {
		return nil, err
	}
	tables, err := e.Extract(body)
	if err != nil {
		return nil, fmt.Errorf("failed to extract %s: %w", e.Path(), err)
	}
	return tables, nil
}

// newFetcher builds the fetcher described by opts. The returned cleanup must
// be called once fetching is done.
func newFetcher(opts scraper.Options) (fetcher.Fetcher, func(), error) {
	var f fetcher.Fetcher
	cleanup := func() {}

	if opts.Render {
		b, err := browser.New(browser.Config{
			ProxyURL: opts.ProxyURL,
			Headless: !opts.ShowUI,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create browser: %w", err)
		}
		f = fetcher.NewRenderFetcher(b, opts.UserAgent, opts.Timeout)
		cleanup = func() { _ = b.Close() }
	} else {
		f = fetcher.New(fetcher.Config{
			UserAgent: opts.UserAgent,
			Timeout:   opts.Timeout,
			ProxyURL:  opts.ProxyURL,
		})
	}
	return fetcher.Paced(f, fetcher.Limiter(opts.Rate, opts.Burst)), cleanup, nil
}

func baseURL(opts scraper.Options) string {
	if opts.BaseURL != "" {
		return opts.BaseURL
	}
	return DefaultBaseURL
}

func logger(opts scraper.Options) *zap.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return zap.NewNop()
}

// TableScraper scrapes one table endpoint.
type TableScraper struct {
	name string
}

func (s *TableScraper) Name() string { return s.name }

func (s *TableScraper) Scrape(ctx context.Context, target string, opts scraper.Options) (scraper.Content, error) {
	log := logger(opts).With(zap.String("endpoint", s.name))

	var stats Stats
	e, err := NewEndpoint(s.name, strings.TrimSpace(target), opts.Extra, stats.Observe(logger(opts), s.name))
	if err != nil {
		return nil, err
	}

	f, cleanup, err := newFetcher(opts)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	log.Info("fetching", zap.String("path", e.Path()), zap.Bool("render", opts.Render))
	tables, err := Run(ctx, f, baseURL(opts), e)
	if err != nil {
		return nil, fmt.Errorf("failed to scrape %s: %w", s.name, err)
	}
	if stats.Dropped > 0 {
		log.Warn("rows dropped during extraction", zap.Int("dropped", stats.Dropped))
	}
	return output.NewContent(tables, opts.MaxRows), nil
}

// ChartScraper downloads a ticker chart image into opts.OutDir.
type ChartScraper struct{}

func (s *ChartScraper) Name() string { return "chart" }

func (s *ChartScraper) Scrape(ctx context.Context, target string, opts scraper.Options) (scraper.Content, error) {
	chart, err := NewChart(strings.TrimSpace(target), opts.Extra)
	if err != nil {
		return nil, err
	}

	// images are never rendered through the browser
	opts.Render = false
	f, cleanup, err := newFetcher(opts)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	base := baseURL(opts)
	path, err := chart.Download(ctx, f, base, opts.OutDir)
	if err != nil {
		return nil, fmt.Errorf("failed to download chart: %w", err)
	}
	logger(opts).Info("chart saved", zap.String("symbol", chart.Symbol), zap.String("file", path))

	return output.NewContent([]output.Table{{
		Title:  "Chart",
		Header: []string{"Ticker", "Style", "Frame", "URL", "File"},
		Rows:   [][]string{{chart.Symbol, chart.Style.String(), chart.Frame.String(), strings.TrimRight(base, "/") + chart.Path(), path}},
	}}, 0), nil
}
