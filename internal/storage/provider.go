// Package storage publishes auction assets and metadata to content-addressed storage.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=storage

// Provider uploads content and returns its content address
type Provider interface {
	Name() string
	UploadFile(ctx context.Context, filename string, data []byte) (string, error)
	UploadJSON(ctx context.Context, v any) (string, error)
}

// Doer sends one logical request; *httpretry.Client satisfies it
type Doer interface {
	Do(ctx context.Context, method, url string, body []byte, header http.Header) (*http.Response, error)
}

// Upload stages, used in logs and metrics
const (
	StageFile = "file"
	StageJSON = "json"
)

// StatusError is a non-2xx answer from a provider
type StatusError struct {
	Provider string
	Stage    string
	Status   int
}

func (e *StatusError) Error() string {
	what := "upload"
	if e.Stage == StageJSON {
		what = "JSON upload"
	}
	return fmt.Sprintf("%s %s failed: status %d", e.Provider, what, e.Status)
}

// post sends body and decodes the JSON answer into out
func post(ctx context.Context, client Doer, provider, stage, url string, body []byte, header http.Header, out any) error {
	resp, err := client.Do(ctx, http.MethodPost, url, body, header)
	if err != nil {
		return fmt.Errorf("%s %s upload: %w", provider, stage, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Provider: provider, Stage: stage, Status: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s upload: decode response: %w", provider, stage, err)
	}
	return nil
}

func bearer(token string) http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+token)
	return h
}
