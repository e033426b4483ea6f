package intercom

// Functional options applied by New after environment defaults. Keeping them
// in a standalone file makes the available knobs easy to discover at a
// glance.

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Module during construction in New.
type Option func(*Module) error

// WithBaseURL points the module at an Intercom-compatible API, replacing
// https://api.intercom.io. Mostly useful against test doubles.
func WithBaseURL(u string) Option {
	return func(m *Module) error {
		if u == "" {
			return fmt.Errorf("base URL cannot be empty")
		}
		m.baseURL = u
		return nil
	}
}

// WithHTTPTimeout bounds the total time spent on a single request to
// Intercom, including connection setup and reading the response body. The
// value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(m *Module) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		m.timeout = d
		return nil
	}
}

// WithPerPage sets the page size requested from the users and companies
// listings.
func WithPerPage(n int) Option {
	return func(m *Module) error {
		if n < 1 {
			return fmt.Errorf("per page must be >= 1")
		}
		m.perPage = n
		return nil
	}
}

// WithMaxPages caps the pages fetched per resource. Listings longer than the
// cap are silently truncated.
func WithMaxPages(n int) Option {
	return func(m *Module) error {
		if n < 1 {
			return fmt.Errorf("max pages must be >= 1")
		}
		m.maxPages = n
		return nil
	}
}

// WithLogger routes the module's logs through log. The default is a no-op
// logger, so library users opt in to output.
func WithLogger(log zerolog.Logger) Option {
	return func(m *Module) error {
		m.log = log
		return nil
	}
}

// WithDebugLogging dumps each HTTP request and response through the logger
// when enabled is true. Dumps include headers; do not enable this in
// production environments.
func WithDebugLogging(enabled bool) Option {
	return func(m *Module) error {
		m.debugHTTP = enabled
		return nil
	}
}
