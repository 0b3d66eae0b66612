// Package reconcile rebuilds per-user auction views from the contract's event logs.
//
// Every function in this file is a pure fold over a slice of events. The ended index is
// built in its own pass and handed to the later passes explicitly.
package reconcile

import (
	"math/big"

	model "carpet-auction-house/internal/models"
	"carpet-auction-house/internal/units"
)

// Ending is the settled result of one auction
type Ending struct {
	Winner string
	Amount *big.Int
}

// EndedIndex maps an auction to its AuctionEnded payload
type EndedIndex map[model.AuctionID]Ending

// BuildEndedIndex folds AuctionEnded events into an index. A repeated id keeps the
// last event; the repeated ids are returned so the caller can report them.
func BuildEndedIndex(events []model.AuctionEnded) (EndedIndex, []model.AuctionID) {
	index := make(EndedIndex, len(events))
	var duplicates []model.AuctionID
	for _, ev := range events {
		if _, seen := index[ev.AuctionID]; seen {
			duplicates = append(duplicates, ev.AuctionID)
		}
		index[ev.AuctionID] = Ending{Winner: ev.Winner, Amount: ev.Amount}
	}
	return index, duplicates
}

// Status is Ended iff the auction is in the index
func (idx EndedIndex) Status(id model.AuctionID) model.AuctionStatus {
	if _, ok := idx[id]; ok {
		return model.StatusEnded
	}
	return model.StatusActive
}

// Classify returns the buyer outcome of an auction for account
func (idx EndedIndex) Classify(id model.AuctionID, account string) model.Outcome {
	ending, ok := idx[id]
	switch {
	case !ok:
		return model.OutcomeOngoing
	case model.SameAddress(ending.Winner, account):
		return model.OutcomeWon
	default:
		return model.OutcomeLost
	}
}

// HighestBid is the maximum raw amount over bids, 0 when there are none
func HighestBid(bids []model.BidPlaced) *big.Int {
	highest := new(big.Int)
	for _, b := range bids {
		if b.Amount != nil && b.Amount.Cmp(highest) > 0 {
			highest.Set(b.Amount)
		}
	}
	return highest
}

// HighestBidBy is HighestBid restricted to one bidder
func HighestBidBy(bids []model.BidPlaced, bidder string) *big.Int {
	highest := new(big.Int)
	for _, b := range bids {
		if !model.SameAddress(b.Bidder, bidder) {
			continue
		}
		if b.Amount != nil && b.Amount.Cmp(highest) > 0 {
			highest.Set(b.Amount)
		}
	}
	return highest
}

// FirstSeenAuctions lists the distinct auction ids of bids in order of first appearance
func FirstSeenAuctions(bids []model.BidPlaced) []model.AuctionID {
	seen := make(map[model.AuctionID]struct{}, len(bids))
	ids := make([]model.AuctionID, 0, len(bids))
	for _, b := range bids {
		if _, ok := seen[b.AuctionID]; ok {
			continue
		}
		seen[b.AuctionID] = struct{}{}
		ids = append(ids, b.AuctionID)
	}
	return ids
}

// SummarizeSeller builds one seller row. The winner is only shown once the auction ended.
func SummarizeSeller(created model.AuctionCreated, title string, bids []model.BidPlaced, idx EndedIndex) model.SellerSummary {
	summary := model.SellerSummary{
		ID:         created.AuctionID,
		Title:      title,
		Status:     idx.Status(created.AuctionID),
		HighestBid: units.DisplayEther(HighestBid(bids)),
	}
	if ending, ok := idx[created.AuctionID]; ok {
		winner := model.ShortenAddress(ending.Winner)
		summary.Winner = &winner
	}
	return summary
}

// SummarizeBuyer builds one buyer row from every bid on the auction
func SummarizeBuyer(id model.AuctionID, title string, bids []model.BidPlaced, account string, idx EndedIndex) model.BuyerSummary {
	outcome := idx.Classify(id, account)
	return model.BuyerSummary{
		ID:           id,
		Title:        title,
		MyHighestBid: units.DisplayEther(HighestBidBy(bids, account)),
		Outcome:      outcome,
		Won:          outcome == model.OutcomeWon,
	}
}
