// Package apitest runs a fake Intercom API for tests: the four list
// endpoints, bearer-token checking, and pages.next pagination over canned
// records. Fault injection (bad status codes, broken bodies) is left to
// per-test inline servers.
package apitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gorilla/mux"
)

// Config selects the records the fake workspace serves.
type Config struct {
	// Token is the bearer token requests must present. Empty disables the
	// auth check.
	Token string

	// PageSize caps records per page; pages.next links chain the rest.
	// Zero serves each resource on a single page.
	PageSize int

	Users     []any
	Companies []any
	Segments  []any
	Tags      []any
}

// Server is a live fake Intercom API. It shuts down via t.Cleanup.
type Server struct {
	*httptest.Server

	t        *testing.T
	token    string
	pageSize int
	records  map[string][]any
}

// New starts the fake API.
func New(t *testing.T, cfg Config) *Server {
	s := &Server{
		t:        t,
		token:    cfg.Token,
		pageSize: cfg.PageSize,
		records: map[string][]any{
			"users":     orEmpty(cfg.Users),
			"companies": orEmpty(cfg.Companies),
			"segments":  orEmpty(cfg.Segments),
			"tags":      orEmpty(cfg.Tags),
		},
	}

	r := mux.NewRouter()
	r.HandleFunc("/users", s.handleList("users")).Methods(http.MethodGet)
	r.HandleFunc("/companies", s.handleList("companies")).Methods(http.MethodGet)
	r.HandleFunc("/segments", s.handleList("segments")).Methods(http.MethodGet)
	r.HandleFunc("/tags", s.handleList("tags")).Methods(http.MethodGet)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

func orEmpty(items []any) []any {
	if items == nil {
		return []any{}
	}
	return items
}

func (s *Server) handleList(resource string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.token != "" && r.Header.Get("Authorization") != "Bearer "+s.token {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"type":"error.list","errors":[{"code":"token_unauthorized"}]}`)
			return
		}
		if accept := r.Header.Get("Accept"); accept != "application/json" {
			s.t.Errorf("%s request missing Accept: application/json (got %q)", r.URL.Path, accept)
		}

		page := 1
		if v := r.URL.Query().Get("page"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				page = n
			}
		}

		records := s.records[resource]
		size := s.pageSize
		if size <= 0 {
			size = len(records) + 1
		}
		start := (page - 1) * size
		if start > len(records) {
			start = len(records)
		}
		end := start + size
		if end > len(records) {
			end = len(records)
		}

		envelope := map[string]any{resource: records[start:end]}
		if end < len(records) {
			envelope["pages"] = map[string]any{
				"next": fmt.Sprintf("%s/%s?page=%d", s.URL, resource, page+1),
			}
		} else {
			envelope["pages"] = map[string]any{"next": nil}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(envelope); err != nil {
			s.t.Errorf("encode %s page %d: %v", resource, page, err)
		}
	}
}
