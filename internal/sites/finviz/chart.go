package finviz

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"finviz/internal/fetcher"
	"finviz/internal/param"
	"finviz/internal/request"
)

// Chart is the chart image of one ticker. It is a binary download, not a
// table page.
type Chart struct {
	Symbol string
	Style  param.ChartStyle
	Frame  param.ChartFrame
}

func (c Chart) Path() string {
	ty, ta := c.Style.Tokens(c.Frame)
	return request.Build("/chart.ashx",
		request.Param("t", c.Symbol),
		request.Param("ty", ty),
		request.Param("ta", ta),
		request.Param("p", c.Frame.Token()),
	)
}

// Download fetches the image from baseURL and saves it as <outDir>/<Symbol>.png,
// creating outDir when needed. An empty outDir means the working directory.
func (c Chart) Download(ctx context.Context, f fetcher.Fetcher, baseURL, outDir string) (string, error) {
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := f.Fetch(ctx, strings.TrimRight(baseURL, "/")+c.Path())
	if err != nil {
		return "", err
	}

	path := filepath.Join(outDir, c.Symbol+".png")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write chart: %w", err)
	}
	return path, nil
}
