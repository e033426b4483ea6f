package api

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestConfigWithDefaults(t *testing.T) {
	t.Parallel()
	cfg := Config{}.withDefaults()
	if cfg.BaseURL != "https://api.intercom.io" {
		t.Fatalf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timeout != 300*time.Second {
		t.Fatalf("Timeout = %v", cfg.Timeout)
	}
	if cfg.PerPage != 60 || cfg.MaxPages != 50 {
		t.Fatalf("PerPage = %d MaxPages = %d", cfg.PerPage, cfg.MaxPages)
	}
}

func TestConfigWithDefaults_KeepsOverrides(t *testing.T) {
	t.Parallel()
	cfg := Config{BaseURL: "http://localhost:9", Timeout: time.Second, PerPage: 2, MaxPages: 3}.withDefaults()
	if cfg.BaseURL != "http://localhost:9" || cfg.Timeout != time.Second || cfg.PerPage != 2 || cfg.MaxPages != 3 {
		t.Fatalf("overrides lost: %+v", cfg)
	}
}

func TestRestyLogger_RoutesThroughZerolog(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := restyLogger{log: zerolog.New(&buf)}

	l.Debugf("debug %s", "one")
	l.Warnf("warn %s", "two")
	l.Errorf("error %s", "three")

	out := buf.String()
	for _, want := range []string{"debug one", "warn two", "error three"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q: %s", want, out)
		}
	}
}
