package config

import (
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config holds the module's tunables. Environment variables are parsed from
// the INTERCOM_ prefix, e.g. INTERCOM_BASE_URL, INTERCOM_HTTP_TIMEOUT.
type Config struct {
	// BaseURL points the module at an Intercom-compatible API. Production
	// keeps the default; tests and local tooling override it.
	BaseURL string `envconfig:"BASE_URL" default:"https://api.intercom.io"`

	// HTTPTimeout bounds each request to Intercom.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"300s"`

	// PerPage is the page size requested from the users and companies
	// listings.
	PerPage int `envconfig:"PER_PAGE" default:"60"`

	// MaxPages caps pages fetched per resource; longer listings are
	// silently truncated.
	MaxPages int `envconfig:"MAX_PAGES" default:"50"`

	// DebugHTTP dumps each request and response through the logger.
	DebugHTTP bool `envconfig:"DEBUG_HTTP" default:"false"`
}

// Validate rejects values the HTTP layer cannot work with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return errors.Errorf("BASE_URL must be an http(s) URL, got %q", c.BaseURL)
	}
	if c.HTTPTimeout <= 0 {
		return errors.New("HTTP_TIMEOUT must be positive")
	}
	if c.PerPage < 1 {
		return errors.New("PER_PAGE must be at least 1")
	}
	if c.MaxPages < 1 {
		return errors.New("MAX_PAGES must be at least 1")
	}
	return nil
}

// New creates a Config by parsing environment variables.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("INTERCOM", &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to process environment variables")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
