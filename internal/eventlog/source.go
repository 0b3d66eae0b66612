// Package eventlog queries the marketplace contract's append-only event logs.
package eventlog

import (
	"context"

	model "carpet-auction-house/internal/models"
)

//go:generate mockgen -source=source.go -destination=mock_source.go -package=eventlog

// CreatedFilter narrows AuctionCreated queries. Nil fields match everything.
type CreatedFilter struct {
	AuctionID *model.AuctionID
	Seller    *string
}

// BidFilter narrows BidPlaced queries
type BidFilter struct {
	AuctionID *model.AuctionID
	Bidder    *string
}

// EndedFilter narrows AuctionEnded queries
type EndedFilter struct {
	AuctionID *model.AuctionID
}

// Source returns events in log order
type Source interface {
	AuctionCreated(ctx context.Context, filter CreatedFilter) ([]model.AuctionCreated, error)
	BidPlaced(ctx context.Context, filter BidFilter) ([]model.BidPlaced, error)
	AuctionEnded(ctx context.Context, filter EndedFilter) ([]model.AuctionEnded, error)
}

// ByAuction is a filter helper for a single auction id
func ByAuction(id model.AuctionID) *model.AuctionID {
	return &id
}

// ByAddress is a filter helper for a seller or bidder address
func ByAddress(addr string) *string {
	return &addr
}
