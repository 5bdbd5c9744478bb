// Package config loads the site list and filter settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/liangyc/courtwatch/internal/scraper"
)

// Configuration validation errors.
var (
	ErrNoSites            = errors.New("at least one site is required")
	ErrSiteMissingName    = errors.New("site name is required")
	ErrSiteMissingURL     = errors.New("site url is required")
	ErrSiteInvalidAdapter = errors.New("site adapter must be 'table' or 'generic'")
	ErrNoKeywords         = errors.New("at least one keyword is required")
	ErrInvalidMaxAge      = errors.New("max_age_days must be at least 1")
	ErrInvalidMaxPages    = errors.New("max_pages must be between 1 and 10")
)

// Config is the complete courtwatch configuration.
type Config struct {
	Keywords   []string     `yaml:"keywords"`
	MaxAgeDays int          `yaml:"max_age_days"`
	MaxPages   int          `yaml:"max_pages"`
	TimeoutSec int          `yaml:"timeout_sec"`
	CacheTTL   string       `yaml:"cache_ttl"`
	Sites      []SiteConfig `yaml:"sites"`
}

// SiteConfig describes one school's announcement listing.
type SiteConfig struct {
	Name          string `yaml:"name"`
	URL           string `yaml:"url"`
	Base          string `yaml:"base"`
	Adapter       string `yaml:"adapter"`
	MinTitleLen   int    `yaml:"min_title_len"`
	NextPageLabel string `yaml:"next_page_label"`
}

// Default returns the built-in configuration covering the tracked schools.
func Default() *Config {
	return &Config{
		Keywords:   []string{"羽球", "羽毛球", "badminton"},
		MaxAgeDays: 120,
		MaxPages:   3,
		TimeoutSec: 15,
		CacheTTL:   "10m",
		Sites: []SiteConfig{
			{
				Name:    "興雅國中",
				URL:     "https://www.syajh.tp.edu.tw/news_list.php",
				Base:    "https://www.syajh.tp.edu.tw/",
				Adapter: "generic",
			},
			{
				Name:    "永春高中",
				URL:     "https://www.ycsh.tp.edu.tw/news/list",
				Base:    "https://www.ycsh.tp.edu.tw/",
				Adapter: "table",
			},
			{
				Name:    "松山工農",
				URL:     "https://www.saihs.edu.tw/news/list",
				Base:    "https://www.saihs.edu.tw/",
				Adapter: "table",
			},
		},
	}
}

// Load reads a configuration file. Missing optional fields fall back to the
// defaults; validation failures are reported, not patched over.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if len(c.Keywords) == 0 {
		c.Keywords = def.Keywords
	}
	if c.MaxAgeDays == 0 {
		c.MaxAgeDays = def.MaxAgeDays
	}
	if c.MaxPages == 0 {
		c.MaxPages = def.MaxPages
	}
	if c.TimeoutSec == 0 {
		c.TimeoutSec = def.TimeoutSec
	}
	if c.CacheTTL == "" {
		c.CacheTTL = def.CacheTTL
	}
}

// Validate checks the configuration for errors that would make a run
// meaningless.
func (c *Config) Validate() error {
	if len(c.Sites) == 0 {
		return ErrNoSites
	}
	if len(c.Keywords) == 0 {
		return ErrNoKeywords
	}
	if c.MaxAgeDays < 1 {
		return ErrInvalidMaxAge
	}
	if c.MaxPages < 1 || c.MaxPages > scraper.MaxPagesCap {
		return ErrInvalidMaxPages
	}
	for i, s := range c.Sites {
		if s.Name == "" {
			return fmt.Errorf("site %d: %w", i, ErrSiteMissingName)
		}
		if s.URL == "" {
			return fmt.Errorf("site %q: %w", s.Name, ErrSiteMissingURL)
		}
		switch scraper.AdapterKind(s.Adapter) {
		case scraper.AdapterTable, scraper.AdapterGeneric:
		default:
			return fmt.Errorf("site %q: %w", s.Name, ErrSiteInvalidAdapter)
		}
	}
	return nil
}

// Timeout returns the fetch timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// CacheDuration returns the parsed cache TTL, or zero when disabled or
// malformed.
func (c *Config) CacheDuration() time.Duration {
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// ScraperSites converts the configured sites into scraper form.
func (c *Config) ScraperSites() []scraper.Site {
	sites := make([]scraper.Site, 0, len(c.Sites))
	for _, s := range c.Sites {
		sites = append(sites, scraper.Site{
			Name:          s.Name,
			ListingURL:    s.URL,
			BaseURL:       s.Base,
			Adapter:       scraper.AdapterKind(s.Adapter),
			MinTitleLen:   s.MinTitleLen,
			NextPageLabel: s.NextPageLabel,
		})
	}
	return sites
}
