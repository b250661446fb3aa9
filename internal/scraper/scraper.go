package scraper

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Scraper interface {
	Name() string
	Scrape(ctx context.Context, target string, opts Options) (Content, error)
}

type Content interface {
	ToHTML() (string, error)
	ToText() (string, error)
	ToMarkdown() (string, error)
	ToJSON() ([]byte, error)
	ToCSV() (string, error)
	ToXLSX() ([]byte, error)
}

type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	ProxyURL  string // --proxy flag or FINVIZ_PROXY env var
	Render    bool   // fetch through a headless browser instead of plain HTTP
	ShowUI    bool
	Rate      float64 // requests per second, 0 disables pacing
	Burst     int
	MaxRows   int
	OutDir    string
	Logger    *zap.Logger
	Extra     map[string]string // endpoint parameters (view/signal/order/group, etc.)
}
