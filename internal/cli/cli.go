package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/liangyc/courtwatch/internal/cache"
	"github.com/liangyc/courtwatch/internal/config"
	"github.com/liangyc/courtwatch/internal/logger"
	"github.com/liangyc/courtwatch/internal/runner"
	"github.com/liangyc/courtwatch/internal/scraper"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

const defaultCacheDir = "~/.cache/courtwatch"

var (
	flagConfig   string
	flagKeywords []string
	flagMaxAge   int
	flagMaxPages int
	flagFormat   string
	flagCacheDir string
	flagNoCache  bool
	flagNoColor  bool
	flagVerbose  bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courtwatch",
		Short: "Aggregate badminton-court announcements from school websites",
		Long: `Scrapes the configured schools' announcement listings, keeps the
recent keyword-matching announcements, and explains every exclusion.`,
		RunE: runScan,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config (built-in sites when omitted)")
	cmd.Flags().StringSliceVar(&flagKeywords, "keyword", nil, "Override configured keywords (repeatable)")
	cmd.Flags().IntVar(&flagMaxAge, "max-age", 0, "Override recency window in days")
	cmd.Flags().IntVar(&flagMaxPages, "max-pages", 0, "Override pages fetched per site (1-10)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagCacheDir, "cache-dir", defaultCacheDir, "Directory for cached pages")
	cmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Fetch every page, ignoring cached copies")
	cmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colored trace output")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Show the full decision trace and progress logs")

	return cmd
}

// runScan is the main command logic
func runScan(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level := logger.LevelWarn
	if flagVerbose {
		level = logger.LevelDebug
	}
	log := logger.New(level, os.Stderr)
	logger.SetDefault(log)

	fetcher, err := buildFetcher(cfg, log)
	if err != nil {
		return err
	}

	sites := cfg.ScraperSites()
	log.Info("starting run", logger.Fields{
		"sites":    len(sites),
		"keywords": cfg.Keywords,
		"max_age":  cfg.MaxAgeDays,
	})

	report := runner.Run(fetcher, sites, runner.Options{
		Keywords:   cfg.Keywords,
		MaxAgeDays: cfg.MaxAgeDays,
		MaxPages:   cfg.MaxPages,
	})

	for _, tr := range report.Traces {
		log.Debug("site finished", logger.Fields{
			"site":      tr.Site,
			"pages":     len(tr.Pages),
			"errors":    len(tr.Errors),
			"decisions": len(tr.Decisions),
		})
	}

	return WriteReport(os.Stdout, &report, format, Options{
		Verbose: flagVerbose,
		Color:   !flagNoColor,
	})
}

// loadConfig reads the configured file or falls back to the built-in sites,
// then applies flag overrides.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flagConfig != "" {
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = config.Default()
	}

	if len(flagKeywords) > 0 {
		cfg.Keywords = flagKeywords
	}
	if flagMaxAge > 0 {
		cfg.MaxAgeDays = flagMaxAge
	}
	if flagMaxPages > 0 {
		cfg.MaxPages = flagMaxPages
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildFetcher wires the HTTP fetcher, wrapped in the page cache unless the
// user opted out.
func buildFetcher(cfg *config.Config, log *logger.Logger) (scraper.Fetcher, error) {
	fetcher := scraper.Fetcher(scraper.NewHTTPFetcher(cfg.Timeout()))
	if flagNoCache {
		return fetcher, nil
	}

	pageCache, err := cache.New(flagCacheDir, cfg.CacheDuration())
	if err != nil {
		// A broken cache directory should not stop the run.
		log.Warn("cache disabled", logger.Fields{"dir": flagCacheDir, "reason": err.Error()})
		return fetcher, nil
	}
	return pageCache.Wrap(fetcher), nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
