package models

import (
	"fmt"
	"math/big"
	"strings"
	"time"
)

// AuctionID is the contract-assigned identifier of an auction
type AuctionID uint64

func (id AuctionID) String() string {
	return fmt.Sprintf("%d", uint64(id))
}

// AuctionCreated is emitted by the contract when a seller publishes an auction
type AuctionCreated struct {
	AuctionID   AuctionID `json:"auction_id"`
	Seller      string    `json:"seller"`
	MetadataURI string    `json:"metadata_uri"`
}

// BidPlaced is emitted for every accepted bid. Amount is in wei.
type BidPlaced struct {
	AuctionID AuctionID `json:"auction_id"`
	Bidder    string    `json:"bidder"`
	Amount    *big.Int  `json:"amount"`
}

// AuctionEnded is emitted once per auction when it settles. Amount is in wei.
type AuctionEnded struct {
	AuctionID AuctionID `json:"auction_id"`
	Winner    string    `json:"winner"`
	Amount    *big.Int  `json:"amount"`
}

// AuctionStatus is the seller-side lifecycle state of an auction
type AuctionStatus string

const (
	StatusActive AuctionStatus = "Active"
	StatusEnded  AuctionStatus = "Ended"
)

// Outcome is the buyer-side result of an auction the account bid on
type Outcome string

const (
	OutcomeOngoing Outcome = "Ongoing"
	OutcomeWon     Outcome = "Won"
	OutcomeLost    Outcome = "Lost"
)

// SellerSummary is one row of the seller dashboard
type SellerSummary struct {
	ID         AuctionID     `json:"id"`
	Title      string        `json:"title"`
	Status     AuctionStatus `json:"status"`
	HighestBid string        `json:"highest_bid"`
	Winner     *string       `json:"winner"`
}

// BuyerSummary is one row of the buyer dashboard
type BuyerSummary struct {
	ID           AuctionID `json:"id"`
	Title        string    `json:"title"`
	MyHighestBid string    `json:"my_highest_bid"`
	Outcome      Outcome   `json:"outcome"`
	Won          bool      `json:"won"`
}

// DataSource tells the caller where a dashboard came from
type DataSource string

const (
	SourceLive     DataSource = "live"
	SourceDemo     DataSource = "demo"
	SourceFallback DataSource = "fallback"
)

// Dashboard holds both projections of a single aggregation pass
type Dashboard struct {
	Seller []SellerSummary `json:"seller"`
	Buyer  []BuyerSummary  `json:"buyer"`
	Source DataSource      `json:"source"`
}

// AuctionListing is an entry of the explore page
type AuctionListing struct {
	ID         AuctionID `json:"id"`
	Title      string    `json:"title"`
	HighestBid string    `json:"highest_bid"`
	EndTime    time.Time `json:"end_time"`
	Image      string    `json:"image"`
}

// AuctionDetails is the full on-chain view of one auction
type AuctionDetails struct {
	ID            AuctionID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Seller        string    `json:"seller"`
	HighestBid    string    `json:"highest_bid"`
	HighestBidder string    `json:"highest_bidder"`
	EndTime       time.Time `json:"end_time"`
	Active        bool      `json:"active"`
	Image         string    `json:"image"`
}

// BidRecord is a display row of an auction's bid history
type BidRecord struct {
	Bidder string `json:"bidder"`
	Amount string `json:"amount"`
}

// Metadata is the off-chain JSON document an auction's metadata URI points at
type Metadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// NormalizeAddress lowercases and trims an address for comparisons
func NormalizeAddress(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

// SameAddress compares two addresses ignoring case
func SameAddress(a, b string) bool {
	return NormalizeAddress(a) == NormalizeAddress(b)
}

// ShortenAddress renders an address as 0x1234...abcd
func ShortenAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}

// AuctionList is the explore page payload
type AuctionList struct {
	Auctions []AuctionListing `json:"auctions"`
	Source   DataSource       `json:"source"`
}

// AuctionView is the detail page payload; Bids are newest first
type AuctionView struct {
	Auction AuctionDetails `json:"auction"`
	Bids    []BidRecord    `json:"bids"`
	Source  DataSource     `json:"source"`
}

// WalletStatus describes the signing account the service acts as
type WalletStatus struct {
	Connected bool   `json:"connected"`
	Account   string `json:"account,omitempty"`
	Short     string `json:"short,omitempty"`
	ChainID   uint64 `json:"chain_id"`
	DemoMode  bool   `json:"demo_mode"`
}
