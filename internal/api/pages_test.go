package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
)

func newTestClient(baseURL string, maxPages int) *Client {
	return New("test-token", Config{BaseURL: baseURL, MaxPages: maxPages, Logger: zerolog.Nop()})
}

func TestFetchPaginated_FollowsNext(t *testing.T) {
	t.Parallel()
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q", got)
		}
		base := "http://" + r.Host
		switch r.URL.Query().Get("page") {
		case "":
			fmt.Fprintf(w, `{"users":[{"id":"u1"},{"id":"u2"}],"pages":{"next":"%s/users?page=2"}}`, base)
		case "2":
			fmt.Fprintf(w, `{"users":[{"id":"u3"}],"pages":{"next":"%s/users?page=3"}}`, base)
		case "3":
			fmt.Fprint(w, `{"users":[{"id":"u4"}],"pages":{"next":null}}`)
		default:
			t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
		}
	}))
	defer srv.Close()

	records, err := newTestClient(srv.URL, 50).fetchPaginated(context.Background(), "/users?per_page=60", "users")
	if err != nil {
		t.Fatalf("fetchPaginated error: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}
	if n := requests.Load(); n != 3 {
		t.Fatalf("made %d requests, want 3", n)
	}
}

func TestFetchPaginated_StopsAtPageCap(t *testing.T) {
	t.Parallel()
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		fmt.Fprintf(w, `{"users":[{"id":"u"}],"pages":{"next":"http://%s/users"}}`, r.Host)
	}))
	defer srv.Close()

	records, err := newTestClient(srv.URL, 3).fetchPaginated(context.Background(), "/users", "users")
	if err != nil {
		t.Fatalf("fetchPaginated error: %v", err)
	}
	if len(records) != 3 || requests.Load() != 3 {
		t.Fatalf("got %d records over %d requests, want 3 over 3", len(records), requests.Load())
	}
}

func TestFetchPaginated_PayloadErrors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		body string
		want string
	}{
		{"array body", `[1,2,3]`, "Intercom did not return a JSON Object"},
		{"null body", `null`, "Intercom did not return a JSON Object"},
		{"invalid json", `<html>whoops</html>`, "Intercom did not return a JSON Object"},
		{"missing key", `{"pages":{"next":null}}`, `Intercom did not return "users" data`},
		{"non-list data", `{"users":42}`, `Intercom did not return "users" data`},
		{"null data", `{"users":null}`, `Intercom did not return "users" data`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tc.body)
			}))
			defer srv.Close()

			_, err := newTestClient(srv.URL, 50).fetchPaginated(context.Background(), "/users", "users")
			var pe *PayloadError
			if !errors.As(err, &pe) {
				t.Fatalf("err = %v, want PayloadError", err)
			}
			if pe.Reason != tc.want {
				t.Fatalf("reason = %q, want %q", pe.Reason, tc.want)
			}
			if !IsPayloadError(err) {
				t.Fatal("IsPayloadError = false")
			}
		})
	}
}

func TestFetchPaginated_EmptyList(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tags":[]}`)
	}))
	defer srv.Close()

	records, err := newTestClient(srv.URL, 50).fetchPaginated(context.Background(), "/tags", "tags")
	if err != nil {
		t.Fatalf("fetchPaginated error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("got %d records, want 0", len(records))
	}
}

func TestFetchPaginated_StatusError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"type":"error.list"}`)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, 50).fetchPaginated(context.Background(), "/users", "users")
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want StatusError", err)
	}
	if se.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", se.StatusCode)
	}
	if se.Error() != "Intercom returned status 401 Unauthorized" {
		t.Fatalf("message = %q", se.Error())
	}
	if IsPayloadError(err) {
		t.Fatal("status error misclassified as payload error")
	}
}

func TestFetchPaginated_RequestError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // unreachable from here on

	_, err := newTestClient(srv.URL, 50).fetchPaginated(context.Background(), "/users", "users")
	var re *RequestError
	if !errors.As(err, &re) {
		t.Fatalf("err = %v, want RequestError", err)
	}
	if IsPayloadError(err) {
		t.Fatal("request error misclassified as payload error")
	}
}

func TestFetchPaginated_NoNextVariants(t *testing.T) {
	t.Parallel()
	bodies := []string{
		`{"users":[{"id":"u"}]}`,
		`{"users":[{"id":"u"}],"pages":null}`,
		`{"users":[{"id":"u"}],"pages":{"next":""}}`,
		`{"users":[{"id":"u"}],"pages":{"next":null}}`,
		`{"users":[{"id":"u"}],"pages":42}`,
	}
	for _, body := range bodies {
		var requests atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			fmt.Fprint(w, body)
		}))

		records, err := newTestClient(srv.URL, 50).fetchPaginated(context.Background(), "/users", "users")
		if err != nil || len(records) != 1 || requests.Load() != 1 {
			t.Fatalf("body %s: records=%d requests=%d err=%v", body, len(records), requests.Load(), err)
		}
		srv.Close()
	}
}
