package reconcile

import (
	"context"
	"fmt"
	"strings"

	model "carpet-auction-house/internal/models"
	"carpet-auction-house/utils"

	lru "github.com/hashicorp/golang-lru/v2"
)

//go:generate mockgen -source=titles.go -destination=mock_titles.go -package=reconcile

// MetadataReader fetches an auction's off-chain metadata document
type MetadataReader interface {
	Metadata(ctx context.Context, ref string) (model.Metadata, error)
}

// DefaultTitleCacheSize bounds the number of resolved titles kept between passes
const DefaultTitleCacheSize = 512

// TitleResolver turns a metadata URI into a display title.
// Content addresses are immutable, so resolved titles are cached by URI; failures are not.
type TitleResolver struct {
	reader MetadataReader
	cache  *lru.Cache[string, string]
}

// NewTitleResolver creates a resolver; size <= 0 uses DefaultTitleCacheSize
func NewTitleResolver(reader MetadataReader, size int) (*TitleResolver, error) {
	if size <= 0 {
		size = DefaultTitleCacheSize
	}
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("reconcile: create title cache: %w", err)
	}
	return &TitleResolver{reader: reader, cache: cache}, nil
}

// FallbackTitle is the synthetic title used when metadata cannot be read
func FallbackTitle(id model.AuctionID) string {
	return "Auction #" + id.String()
}

// Resolve never fails: unreadable or nameless metadata yields FallbackTitle
func (r *TitleResolver) Resolve(ctx context.Context, id model.AuctionID, uri string) string {
	if r == nil || r.reader == nil || strings.TrimSpace(uri) == "" {
		return FallbackTitle(id)
	}
	if title, ok := r.cache.Get(uri); ok {
		return title
	}

	meta, err := r.reader.Metadata(ctx, uri)
	if err != nil {
		utils.Warn("reconcile: metadata fetch failed, using fallback title", map[string]any{
			"auction_id":   id,
			"metadata_uri": uri,
			"error":        err.Error(),
		})
		return FallbackTitle(id)
	}
	if strings.TrimSpace(meta.Name) == "" {
		return FallbackTitle(id)
	}

	r.cache.Add(uri, meta.Name)
	return meta.Name
}
