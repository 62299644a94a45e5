// Package probe implements the external-link liveness checker: a bounded
// pool of workers, one probe per URL, a single HEAD→GET method fallback,
// and no retries beyond that. Transient failures count as dead for the
// run; that tradeoff is accepted, not a bug.
package probe

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/sitelint/sitelint/internal/domain"
	"golang.org/x/sync/errgroup"
)

const userAgent = "Mozilla/5.0 (compatible; SitelintBot/1.0)"

// maxFallbackBody caps how much of a GET fallback body is drained.
const maxFallbackBody = 64 << 10

// Checker implements domain.LinkProber over HTTP.
type Checker struct {
	client *http.Client
}

func New() *Checker {
	return &Checker{
		client: &http.Client{
			Transport: &http.Transport{
				Proxy:           http.ProxyFromEnvironment,
				MaxIdleConns:    40,
				IdleConnTimeout: 30 * time.Second,
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 15 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 5 * time.Second,
			},
		},
	}
}

// CheckAll probes every URL once and blocks until all probes complete or
// time out. Outcomes are merged under one lock at drain and returned
// sorted by URL, so completion order never leaks into the result.
func (c *Checker) CheckAll(ctx context.Context, urls []string, cfg domain.AuditConfig) []domain.ProbeOutcome {
	if len(urls) == 0 {
		return nil
	}

	var (
		mu       sync.Mutex
		outcomes = make([]domain.ProbeOutcome, 0, len(urls))
	)

	var g errgroup.Group
	g.SetLimit(cfg.Workers)

	for _, u := range urls {
		g.Go(func() error {
			o := c.probe(ctx, u, cfg.Timeout)
			mu.Lock()
			outcomes = append(outcomes, o)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures become outcomes

	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].URL < outcomes[j].URL })
	return outcomes
}

// probe issues a HEAD request; on 405 Method Not Allowed it retries once
// with GET, streaming the body without downloading it fully.
func (c *Checker) probe(ctx context.Context, rawURL string, timeout time.Duration) domain.ProbeOutcome {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	status, err := c.do(ctx, http.MethodHead, rawURL)
	if err == nil && status == http.StatusMethodNotAllowed {
		status, err = c.do(ctx, http.MethodGet, rawURL)
	}

	if err != nil {
		return domain.ProbeOutcome{URL: rawURL, Reason: err.Error()}
	}
	if status >= 400 {
		return domain.ProbeOutcome{
			URL:        rawURL,
			StatusCode: status,
			Reason:     fmt.Sprintf("status %d", status),
		}
	}
	return domain.ProbeOutcome{URL: rawURL, StatusCode: status, Alive: true}
}

func (c *Checker) do(ctx context.Context, method, rawURL string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if method == http.MethodGet {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxFallbackBody))
	}
	return resp.StatusCode, nil
}
