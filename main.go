package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"finviz/internal/config"
	"finviz/internal/formatter"
	"finviz/internal/log"
	"finviz/internal/param"
	"finviz/internal/scraper"
	"finviz/internal/sites/finviz"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

var (
	outputFormat string
	outputFile   string
	timeout      time.Duration
	configFile   string
	view         string
	signal       string
	order        string
	desc         bool
	group        string
	groupType    string
	timeframe    string
	forex        string
	insider      string
	owner        string
	chartStyle   string
	outDir       string
	columns      int
	maxRows      int
	render       bool
	showUI       bool
	proxyURL     string
	rateLimit    float64
	logLevel     string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:     "finviz ENDPOINT [SYMBOL]",
		Short:   "Extract finviz.com tables",
		Version: version,
		Long: `finviz fetches a finviz.com page and prints its tables.

Endpoints: ` + strings.Join(finviz.Names, ", ") + `, chart.
quote and chart take a ticker symbol.`,
		Example: `  # Screener results with a signal, sorted by descending price
  finviz screener --signal doublebottom --order price --desc

  # Industry performance rollup as markdown
  finviz groups --group industry --group-type performance --order perf-week -f markdown

  # Insider trades of owners above a percentile, to a spreadsheet
  finviz insider --insider numeric --owner 10 -o insider.xlsx

  # Fundamentals of one ticker, three pairs per row
  finviz quote AAPL --columns 3

  # Download the daily advanced chart into ./charts
  finviz chart AAPL --chart advanced --out-dir charts

  # List the accepted values of an option
  finviz options signal`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cmd.Help()
				os.Exit(0)
			}
			return cobra.RangeArgs(1, 2)(cmd, args)
		},
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format (text, markdown, html, json, csv, xlsx)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path (format inferred from extension if -f not specified)")
	rootCmd.Flags().DurationVarP(&timeout, "timeout", "t", 0, "Request timeout duration (default from config, 30s)")
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "config.json5", "Config file; <name>.local.<ext> next to it overrides it")
	rootCmd.Flags().StringVar(&view, "view", "", "Screener view (see: finviz options section)")
	rootCmd.Flags().StringVarP(&signal, "signal", "s", "", "Screener signal (see: finviz options signal)")
	rootCmd.Flags().StringVar(&order, "order", "", "Sort field (see: finviz options order / group-order)")
	rootCmd.Flags().BoolVar(&desc, "desc", false, "Sort descending")
	rootCmd.Flags().StringVarP(&group, "group", "g", "", "Group dimension (see: finviz options group)")
	rootCmd.Flags().StringVar(&groupType, "group-type", "", "Group detail level (see: finviz options group-type)")
	rootCmd.Flags().StringVar(&timeframe, "timeframe", "", "Futures or chart time frame (daily, weekly, monthly...)")
	rootCmd.Flags().StringVar(&forex, "forex", "", "Forex unit (percent, pips)")
	rootCmd.Flags().StringVar(&insider, "insider", "", "Insider report (see: finviz options insider)")
	rootCmd.Flags().StringVar(&owner, "owner", "", "Owner filter value for --insider numeric")
	rootCmd.Flags().StringVar(&chartStyle, "chart", "", "Chart style (candle, line, advanced)")
	rootCmd.Flags().StringVar(&outDir, "out-dir", ".", "Directory chart images are saved to")
	rootCmd.Flags().IntVar(&columns, "columns", 1, "Key/value pairs per row for quote")
	rootCmd.Flags().IntVarP(&maxRows, "rows", "n", 0, "Max rows per table in text, markdown and html output (0 for all)")
	rootCmd.Flags().BoolVar(&render, "render", false, "Fetch pages through a headless browser")
	rootCmd.Flags().BoolVar(&showUI, "showui", false, "Show browser UI with --render (disable headless mode)")
	rootCmd.Flags().StringVarP(&proxyURL, "proxy", "p", os.Getenv("FINVIZ_PROXY"), "Proxy URL (e.g. http://127.0.0.1:7890), defaults to FINVIZ_PROXY env var")
	rootCmd.Flags().Float64Var(&rateLimit, "rate", 0, "Max requests per second (0 for no limit)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newOptionsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	endpoint := strings.ToLower(args[0])
	var symbol string
	if len(args) > 1 {
		symbol = args[1]
	}

	s, ok := scraper.Get(endpoint)
	if !ok {
		return fmt.Errorf("unknown endpoint: %s", endpoint)
	}

	// If output file is specified but format is not, infer format from file extension
	if outputFile != "" && !cmd.Flags().Changed("format") {
		inferredFormat := inferFormatFromExtension(outputFile)
		if inferredFormat != "" {
			outputFormat = inferredFormat
		}
	}

	if err := validateFlags(); err != nil {
		return err
	}

	cfg, err := config.Read(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cmd, &cfg)

	reqTimeout, err := cfg.TimeoutDuration()
	if err != nil {
		return err
	}

	logger, closer, err := log.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	defer closer.Close()
	defer logger.Sync()

	opts := scraper.Options{
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
		Timeout:   reqTimeout,
		ProxyURL:  cfg.Proxy,
		Render:    cfg.Render,
		ShowUI:    showUI,
		Rate:      cfg.Rate,
		Burst:     cfg.Burst,
		MaxRows:   maxRows,
		OutDir:    outDir,
		Logger:    logger,
		Extra: map[string]string{
			finviz.KeyView:      view,
			finviz.KeySignal:    signal,
			finviz.KeyOrder:     order,
			finviz.KeyDesc:      strconv.FormatBool(desc),
			finviz.KeyGroup:     group,
			finviz.KeyGroupType: groupType,
			finviz.KeyTimeframe: timeframe,
			finviz.KeyForex:     forex,
			finviz.KeyInsider:   insider,
			finviz.KeyOwner:     owner,
			finviz.KeyChart:     chartStyle,
			finviz.KeyColumns:   strconv.Itoa(columns),
		},
	}

	logger.Debug("scraping", zap.String("endpoint", endpoint), zap.String("symbol", symbol))
	content, err := s.Scrape(context.Background(), symbol, opts)
	if err != nil {
		return err
	}

	// Format output
	outputContent, err := formatter.Format(content, outputFormat)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	// Output result
	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(outputContent), 0644); err != nil {
			return fmt.Errorf("failed to write to file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Output written to: %s\n", outputFile)
	} else {
		fmt.Println(outputContent)
	}
	return nil
}

// applyFlags overrides config values with the flags given on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("timeout") {
		cfg.Timeout = timeout.String()
	}
	if flags.Changed("proxy") || (cfg.Proxy == "" && proxyURL != "") {
		cfg.Proxy = proxyURL
	}
	if flags.Changed("render") {
		cfg.Render = render
	}
	if flags.Changed("rate") {
		cfg.Rate = rateLimit
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
}

func validateFlags() error {
	validFormats := map[string]bool{
		"html":     true,
		"text":     true,
		"markdown": true,
		"json":     true,
		"csv":      true,
		"xlsx":     true,
	}
	if !validFormats[outputFormat] {
		return fmt.Errorf("invalid output format: %s", outputFormat)
	}

	if outputFormat == "xlsx" && outputFile == "" {
		return fmt.Errorf("--output is required for xlsx format")
	}

	if showUI && !render {
		return fmt.Errorf("--showui is only valid with --render")
	}

	return nil
}

// inferFormatFromExtension infers output format from file extension
func inferFormatFromExtension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown":
		return "markdown"
	case ".json":
		return "json"
	case ".html", ".htm":
		return "html"
	case ".txt":
		return "text"
	case ".csv":
		return "csv"
	case ".xlsx":
		return "xlsx"
	default:
		return ""
	}
}

func newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options [FAMILY]",
		Short: "List option families or the values of one family",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := table.NewWriter()
			t.SetStyle(table.StyleLight)
			t.SetOutputMirror(os.Stdout)

			if len(args) == 0 {
				t.AppendHeader(table.Row{"Family", "Values"})
				for _, name := range param.Families() {
					opts, _ := param.Options(name)
					t.AppendRow(table.Row{name, len(opts)})
				}
				t.Render()
				return nil
			}

			opts, ok := param.Options(args[0])
			if !ok {
				return fmt.Errorf("unknown option family: %s (one of %s)", args[0], strings.Join(param.Families(), ", "))
			}
			t.AppendHeader(table.Row{"Name", "Token", "Description"})
			for _, o := range opts {
				t.AppendRow(table.Row{o.Name, o.Token, o.Label})
			}
			t.Render()
			return nil
		},
	}
}
