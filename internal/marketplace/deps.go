package marketplace

import (
	"context"

	model "carpet-auction-house/internal/models"
	"carpet-auction-house/internal/storage"
)

//go:generate mockgen -source=deps.go -destination=mock_deps.go -package=marketplace

// Publisher uploads a listing's image and metadata
type Publisher interface {
	Publish(ctx context.Context, asset storage.Asset, doc storage.Document) (storage.Published, error)
}

// Dashboarder builds the per-account dashboard
type Dashboarder interface {
	Dashboard(ctx context.Context, account string) model.Dashboard
}

// MetadataReader reads a metadata document by URI
type MetadataReader interface {
	Metadata(ctx context.Context, ref string) (model.Metadata, error)
}
