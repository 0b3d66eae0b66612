package storage

import (
	"context"
	"fmt"

	"carpet-auction-house/internal/auctionerrors"
	"carpet-auction-house/utils"
)

// Chain tries providers in order and returns the first success
type Chain struct {
	providers []Provider
}

// NewChain builds a chain; nil providers are skipped
func NewChain(providers ...Provider) *Chain {
	c := &Chain{}
	for _, p := range providers {
		if p != nil {
			c.providers = append(c.providers, p)
		}
	}
	return c
}

// Len is the number of configured providers
func (c *Chain) Len() int { return len(c.providers) }

func (c *Chain) Name() string { return "chain" }

func (c *Chain) UploadFile(ctx context.Context, filename string, data []byte) (string, error) {
	return c.run(ctx, StageFile, func(p Provider) (string, error) {
		return p.UploadFile(ctx, filename, data)
	})
}

func (c *Chain) UploadJSON(ctx context.Context, v any) (string, error) {
	return c.run(ctx, StageJSON, func(p Provider) (string, error) {
		return p.UploadJSON(ctx, v)
	})
}

func (c *Chain) run(ctx context.Context, stage string, upload func(Provider) (string, error)) (string, error) {
	if len(c.providers) == 0 {
		return "", fmt.Errorf("storage: %s upload: %w. Set WEB3_STORAGE_TOKEN or PINATA_JWT", stage, auctionerrors.ErrNoStorageProvider)
	}

	var last error
	for _, p := range c.providers {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("storage: %s upload: %w", stage, err)
		}
		cid, err := upload(p)
		if err == nil {
			uploads.WithLabelValues(p.Name(), stage, "ok").Inc()
			return cid, nil
		}
		uploads.WithLabelValues(p.Name(), stage, "failed").Inc()
		utils.Warn("storage: provider failed, trying next", map[string]any{
			"provider": p.Name(),
			"stage":    stage,
			"error":    err.Error(),
		})
		last = err
	}
	return "", fmt.Errorf("storage: %s upload: %w: %w", stage, auctionerrors.ErrUploadFailed, last)
}

var _ Provider = (*Chain)(nil)
