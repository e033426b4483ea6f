// Package intercom implements the Workbench "intercom" fetch module. One
// fetch downloads every user in the connected Intercom workspace together
// with the workspace's companies, segments and tags, and returns a table with
// one row per user. Failures come back as localizable messages rather than
// Go errors so the host can render them to the workflow owner.
//
// Construction reads defaults from INTERCOM_* environment variables (see
// internal/config); functional options override them in code.
package intercom

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/CJWorkbench/intercom/internal/api"
	"github.com/CJWorkbench/intercom/internal/config"
	"github.com/CJWorkbench/intercom/internal/usertable"
	"github.com/CJWorkbench/intercom/workbench"
)

// AccessTokenParam is the secret parameter ID the host stores the OAuth
// connection under.
const AccessTokenParam = "access_token"

// Module is the fetch entry point. A Module is safe for concurrent use;
// per-fetch state (the bearer token, the correlation ID) lives inside Fetch.
type Module struct {
	baseURL   string
	timeout   time.Duration
	perPage   int
	maxPages  int
	debugHTTP bool
	log       zerolog.Logger
}

// New constructs a Module. Defaults come from INTERCOM_* environment
// variables; opts are applied afterwards and win over the environment.
func New(opts ...Option) (*Module, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	m := &Module{
		baseURL:   cfg.BaseURL,
		timeout:   cfg.HTTPTimeout,
		perPage:   cfg.PerPage,
		maxPages:  cfg.MaxPages,
		debugHTTP: cfg.DebugHTTP,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	m.log.Debug().
		Str("base_url", m.baseURL).
		Dur("http_timeout", m.timeout).
		Int("per_page", m.perPage).
		Int("max_pages", m.maxPages).
		Bool("debug_http", m.debugHTTP).
		Msg("configuration loaded")

	return m, nil
}

// Fetch runs one fetch against the workspace the secrets grant access to.
// params is accepted for signature compatibility with the host; the module
// declares no parameters besides its connected account.
//
// The result is always well-formed: a table on success, a message on
// failure. A missing or never-connected account yields the sign-in prompt
// without any network traffic.
func (m *Module) Fetch(ctx context.Context, params workbench.Params, secrets workbench.Secrets) workbench.FetchResult {
	token := secrets.AccessToken(AccessTokenParam)
	if token == "" {
		return workbench.ErrorResult(workbench.Trans(
			"badParam.access_token.empty",
			"Please sign in to Intercom",
			nil,
		))
	}

	log := m.log.With().Str("fetch_id", uuid.NewString()).Logger()
	start := time.Now()

	table, err := m.fetchTable(ctx, token, log)
	fetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		fetchesTotal.WithLabelValues("error").Inc()
		log.Warn().Err(err).Msg("fetch failed")
		return workbench.ErrorResult(fetchError(err))
	}

	fetchesTotal.WithLabelValues("ok").Inc()
	log.Info().
		Int("rows", table.NumRows()).
		Dur("duration", time.Since(start)).
		Msg("fetch complete")
	return workbench.TableResult(table)
}

// fetchTable lists the four resources in order and assembles the user table.
// The resources are fetched sequentially so a bad token fails fast on the
// first request.
func (m *Module) fetchTable(ctx context.Context, token string, log zerolog.Logger) (workbench.Table, error) {
	client := api.New(token, api.Config{
		BaseURL:  m.baseURL,
		Timeout:  m.timeout,
		PerPage:  m.perPage,
		MaxPages: m.maxPages,
		Debug:    m.debugHTTP,
		Logger:   log,
	})

	users, err := client.ListUsers(ctx)
	if err != nil {
		return workbench.Table{}, err
	}
	companies, err := client.ListCompanies(ctx)
	if err != nil {
		return workbench.Table{}, err
	}
	segments, err := client.ListSegments(ctx)
	if err != nil {
		return workbench.Table{}, err
	}
	tags, err := client.ListTags(ctx)
	if err != nil {
		return workbench.Table{}, err
	}

	return usertable.Build(users, companies, segments, tags), nil
}

// fetchError maps a fetch failure onto the user-facing message catalog:
// payload-shape problems get the response-handling message, everything else
// (network failures, non-2xx statuses) the generic query message.
func fetchError(err error) workbench.Message {
	if api.IsPayloadError(err) {
		return workbench.Trans(
			"error.unexpectedIntercomJson.general",
			"Error handling Intercom response: {error}",
			map[string]string{"error": err.Error()},
		)
	}
	return workbench.Trans(
		"error.httpError.general",
		"Error querying Intercom: {error}",
		map[string]string{"error": err.Error()},
	)
}
