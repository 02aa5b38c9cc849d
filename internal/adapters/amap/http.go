package amap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"meetspot/internal/metrics"
)

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("code %d: %s", e.Code, e.Body)
}

// getJSON issues one GET with the API key attached, retrying transient
// failures (429, 5xx, network errors) with exponential backoff while
// respecting context cancellation, then decodes the body into out.
// Per-endpoint request counts and latency are recorded.
func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	params.Set("key", c.key)
	u := c.baseURL + endpoint + "?" + params.Encode()

	start := time.Now()
	metrics.AmapRequestsTotal.WithLabelValues(endpoint).Inc()

	resp, err := c.doWithRetry(ctx, u)
	if err != nil {
		metrics.AmapFailTotal.WithLabelValues(endpoint).Inc()
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.AmapFailTotal.WithLabelValues(endpoint).Inc()
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}

	dur := time.Since(start).Milliseconds()
	metrics.AmapDurationMs.WithLabelValues(endpoint).Observe(float64(dur))
	log.Debug().Str("endpoint", endpoint).Int64("dur_ms", dur).Msg("amap request")

	return nil
}

func (c *Client) doWithRetry(ctx context.Context, u string) (*http.Response, error) {
	const maxAttempts = 4
	backoff := 200 * time.Millisecond

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		retry := false
		var he *httpStatusError
		if errors.As(err, &he) {
			switch he.Code {
			case 429, 500, 502, 503, 504:
				retry = true
			}
		}

		var netErr net.Error
		if !retry && errors.As(err, &netErr) {
			retry = true
		}

		if !retry || attempt == maxAttempts {
			return nil, lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, lastErr
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}
