package api

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const (
	defaultBaseURL  = "https://api.intercom.io"
	defaultTimeout  = 300 * time.Second
	defaultPerPage  = 60
	defaultMaxPages = 50
)

// Config carries the knobs for one Client. Zero values fall back to the
// Intercom production defaults; Logger should be zerolog.Nop() when the
// caller wants silence.
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	PerPage  int
	MaxPages int
	Debug    bool
	Logger   zerolog.Logger
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.PerPage <= 0 {
		c.PerPage = defaultPerPage
	}
	if c.MaxPages <= 0 {
		c.MaxPages = defaultMaxPages
	}
	return c
}

// Client issues authenticated requests against one Intercom workspace. A
// Client is built per fetch because the bearer token travels with it.
type Client struct {
	http     *resty.Client
	perPage  int
	maxPages int
	log      zerolog.Logger
}

// New builds a Client for the given bearer token.
func New(token string, cfg Config) *Client {
	cfg = cfg.withDefaults()

	hc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Accept", "application/json").
		SetAuthToken(token).
		SetTimeout(cfg.Timeout)
	if cfg.Debug {
		hc.SetLogger(restyLogger{log: cfg.Logger})
		hc.SetDebug(true)
	}

	return &Client{
		http:     hc,
		perPage:  cfg.PerPage,
		maxPages: cfg.MaxPages,
		log:      cfg.Logger,
	}
}

// restyLogger routes resty's debug/warn/error output through zerolog.
type restyLogger struct {
	log zerolog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) { l.log.Error().Msgf(format, v...) }
func (l restyLogger) Warnf(format string, v ...interface{})  { l.log.Warn().Msgf(format, v...) }
func (l restyLogger) Debugf(format string, v ...interface{}) { l.log.Debug().Msgf(format, v...) }
