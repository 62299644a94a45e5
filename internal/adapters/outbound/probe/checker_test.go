package probe_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sitelint/sitelint/internal/adapters/outbound/probe"
	"github.com/sitelint/sitelint/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func probeConfig() domain.AuditConfig {
	cfg := domain.DefaultConfig()
	cfg.Timeout = 2 * time.Second
	return cfg
}

func checkOne(t *testing.T, url string) domain.ProbeOutcome {
	t.Helper()
	outcomes := probe.New().CheckAll(context.Background(), []string{url}, probeConfig())
	require.Len(t, outcomes, 1)
	return outcomes[0]
}

func TestCheckAll_AliveAndDead(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	ok := checkOne(t, srv.URL+"/ok")
	assert.True(t, ok.Alive)
	assert.Equal(t, http.StatusOK, ok.StatusCode)

	dead := checkOne(t, srv.URL+"/gone")
	assert.False(t, dead.Alive)
	assert.Equal(t, http.StatusNotFound, dead.StatusCode)
	assert.Equal(t, "status 404", dead.Reason)
}

func TestCheckAll_MethodNotAllowedFallsBackToGet(t *testing.T) {
	var gets atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodHead:
			w.WriteHeader(http.StatusMethodNotAllowed)
		case http.MethodGet:
			gets.Add(1)
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer srv.Close()

	out := checkOne(t, srv.URL)
	assert.True(t, out.Alive)
	assert.Equal(t, int32(1), gets.Load(), "a 405 HEAD must be retried once with GET")
}

func TestCheckAll_NoFallbackOnOtherStatuses(t *testing.T) {
	var gets atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			gets.Add(1)
		}
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	out := checkOne(t, srv.URL)
	assert.False(t, out.Alive)
	assert.Equal(t, int32(0), gets.Load(), "only 405 earns a GET retry")
}

func TestCheckAll_TransportErrorIsDead(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	out := checkOne(t, srv.URL)
	assert.False(t, out.Alive)
	assert.NotEmpty(t, out.Reason)
}

func TestCheckAll_BoundedPoolCoversEveryURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := probeConfig()
	cfg.Workers = 2

	urls := make([]string, 7)
	for i := range urls {
		urls[i] = fmt.Sprintf("%s/page-%d", srv.URL, i)
	}

	outcomes := probe.New().CheckAll(context.Background(), urls, cfg)
	require.Len(t, outcomes, 7)

	seen := make(map[string]bool)
	for i, o := range outcomes {
		assert.True(t, o.Alive)
		seen[o.URL] = true
		if i > 0 {
			assert.Less(t, outcomes[i-1].URL, o.URL, "outcomes must be sorted by URL")
		}
	}
	assert.Len(t, seen, 7)
}

func TestCheckAll_EmptyInput(t *testing.T) {
	assert.Nil(t, probe.New().CheckAll(context.Background(), nil, probeConfig()))
}

func TestCheckAll_SetsUserAgent(t *testing.T) {
	var ua string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	checkOne(t, srv.URL)
	assert.Contains(t, ua, "SitelintBot")
}
