package eventlog

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"carpet-auction-house/internal/auctionerrors"
	model "carpet-auction-house/internal/models"
)

// MemoryLog is a concurrency-safe in-memory implementation of Source.
// Events are kept in append order, which is the order queries return them in.
type MemoryLog struct {
	mu      sync.RWMutex
	created []model.AuctionCreated
	bids    []model.BidPlaced
	ended   []model.AuctionEnded
	nextID  model.AuctionID
}

// NewMemoryLog creates an empty log; auction ids start at 1
func NewMemoryLog() *MemoryLog {
	return &MemoryLog{nextID: 1}
}

// CreateAuction appends an AuctionCreated event and returns the assigned id
func (l *MemoryLog) CreateAuction(seller, metadataURI string) model.AuctionID {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.nextID
	l.nextID++
	l.created = append(l.created, model.AuctionCreated{AuctionID: id, Seller: seller, MetadataURI: metadataURI})
	return id
}

// PlaceBid appends a BidPlaced event for a known auction
func (l *MemoryLog) PlaceBid(id model.AuctionID, bidder string, amount *big.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.known(id) {
		return fmt.Errorf("place bid on auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	if amount == nil || amount.Sign() <= 0 {
		return fmt.Errorf("place bid on auction %s: %w", id, auctionerrors.ErrInvalidBid)
	}
	l.bids = append(l.bids, model.BidPlaced{AuctionID: id, Bidder: bidder, Amount: new(big.Int).Set(amount)})
	return nil
}

// EndAuction appends an AuctionEnded event. The log does not police duplicate endings;
// callers that replay it decide how to treat them.
func (l *MemoryLog) EndAuction(id model.AuctionID, winner string, amount *big.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.known(id) {
		return fmt.Errorf("end auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	if amount == nil {
		amount = new(big.Int)
	}
	l.ended = append(l.ended, model.AuctionEnded{AuctionID: id, Winner: winner, Amount: new(big.Int).Set(amount)})
	return nil
}

func (l *MemoryLog) known(id model.AuctionID) bool {
	for _, c := range l.created {
		if c.AuctionID == id {
			return true
		}
	}
	return false
}

// AuctionCreated returns creation events matching the filter
func (l *MemoryLog) AuctionCreated(ctx context.Context, filter CreatedFilter) ([]model.AuctionCreated, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.AuctionCreated, 0, len(l.created))
	for _, ev := range l.created {
		if filter.AuctionID != nil && ev.AuctionID != *filter.AuctionID {
			continue
		}
		if filter.Seller != nil && !model.SameAddress(ev.Seller, *filter.Seller) {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

// BidPlaced returns bid events matching the filter
func (l *MemoryLog) BidPlaced(ctx context.Context, filter BidFilter) ([]model.BidPlaced, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.BidPlaced, 0, len(l.bids))
	for _, ev := range l.bids {
		if filter.AuctionID != nil && ev.AuctionID != *filter.AuctionID {
			continue
		}
		if filter.Bidder != nil && !model.SameAddress(ev.Bidder, *filter.Bidder) {
			continue
		}
		ev.Amount = new(big.Int).Set(ev.Amount)
		out = append(out, ev)
	}
	return out, nil
}

// AuctionEnded returns ending events matching the filter
func (l *MemoryLog) AuctionEnded(ctx context.Context, filter EndedFilter) ([]model.AuctionEnded, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.AuctionEnded, 0, len(l.ended))
	for _, ev := range l.ended {
		if filter.AuctionID != nil && ev.AuctionID != *filter.AuctionID {
			continue
		}
		ev.Amount = new(big.Int).Set(ev.Amount)
		out = append(out, ev)
	}
	return out, nil
}
