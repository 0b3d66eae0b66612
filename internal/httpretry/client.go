// Package httpretry wraps outbound HTTP calls with bounded retries, linear backoff and a
// per-attempt timeout.
//
// Policy: transport errors and 5xx responses are retried; any other status is returned
// to the caller right away. When retries run out on a 5xx the last response is returned
// without an error; when they run out on a transport error, that error is returned.
package httpretry

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"carpet-auction-house/utils"

	"github.com/hashicorp/go-retryablehttp"
)

// Defaults for Options
const (
	DefaultRetries = 3
	DefaultBackoff = 1000 * time.Millisecond
	DefaultTimeout = 20000 * time.Millisecond
)

// Options tunes a Client. A call makes at most Retries+1 attempts and waits
// Backoff*(n+1) after the n-th failed attempt (n from 0).
type Options struct {
	Retries int
	Backoff time.Duration
	Timeout time.Duration
}

// DefaultOptions returns 3 retries, 1s base backoff and a 20s per-attempt timeout
func DefaultOptions() Options {
	return Options{Retries: DefaultRetries, Backoff: DefaultBackoff, Timeout: DefaultTimeout}
}

// Client performs requests under the retry policy
type Client struct {
	name string
	rc   *retryablehttp.Client
}

// New creates a client; name labels its logs and metrics
func New(name string, opts Options) *Client {
	if opts.Retries < 0 {
		opts.Retries = 0
	}
	if opts.Backoff < 0 {
		opts.Backoff = 0
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	c := &Client{name: name}
	c.rc = &retryablehttp.Client{
		HTTPClient:   &http.Client{Timeout: opts.Timeout},
		Logger:       logrusLogger{client: name},
		RetryWaitMin: opts.Backoff,
		RetryWaitMax: opts.Backoff * time.Duration(opts.Retries+1),
		RetryMax:     opts.Retries,
		CheckRetry:   checkRetry,
		Backoff:      linearBackoff,
		ErrorHandler: retryablehttp.PassthroughErrorHandler,
		RequestLogHook: func(_ retryablehttp.Logger, req *http.Request, attempt int) {
			attempts.WithLabelValues(name).Inc()
			if attempt > 0 {
				utils.Warn("httpretry: retrying request", map[string]any{
					"client":  name,
					"method":  req.Method,
					"url":     req.URL.String(),
					"attempt": attempt,
				})
			}
		},
		ResponseLogHook: func(_ retryablehttp.Logger, resp *http.Response) {
			responses.WithLabelValues(name, strconv.Itoa(resp.StatusCode/100)+"xx").Inc()
		},
	}
	return c
}

// Do sends one logical request. The body is held as bytes so every attempt can replay it.
// The caller owns closing the returned response body.
func (c *Client) Do(ctx context.Context, method, url string, body []byte, header http.Header) (*http.Response, error) {
	var payload any
	if body != nil {
		payload = body
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return nil, fmt.Errorf("httpretry: build %s request: %w", c.name, err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	return c.rc.Do(req)
}

// Get is Do without a body
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	return c.Do(ctx, http.MethodGet, url, nil, nil)
}

func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return true, nil
	}
	return resp.StatusCode >= http.StatusInternalServerError, nil
}

// linearBackoff waits base*(attempt+1); retryablehttp numbers attempts from 0
func linearBackoff(base, _ time.Duration, attempt int, _ *http.Response) time.Duration {
	return base * time.Duration(attempt+1)
}

// logrusLogger adapts retryablehttp's LeveledLogger to the service logger
type logrusLogger struct {
	client string
}

func (l logrusLogger) fields(keysAndValues []any) map[string]any {
	fields := map[string]any{"client": l.client}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return fields
}

func (l logrusLogger) Error(msg string, keysAndValues ...any) {
	utils.Error("httpretry: "+msg, l.fields(keysAndValues))
}

func (l logrusLogger) Info(msg string, keysAndValues ...any) {
	utils.Info("httpretry: "+msg, l.fields(keysAndValues))
}

func (l logrusLogger) Debug(msg string, keysAndValues ...any) {
	utils.Debug("httpretry: "+msg, l.fields(keysAndValues))
}

func (l logrusLogger) Warn(msg string, keysAndValues ...any) {
	utils.Warn("httpretry: "+msg, l.fields(keysAndValues))
}
