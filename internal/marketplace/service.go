// Package marketplace implements the carpet auction use cases on top of the contract,
// the event log and content storage.
package marketplace

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"carpet-auction-house/internal/auctionerrors"
	"carpet-auction-house/internal/chain"
	"carpet-auction-house/internal/eventlog"
	"carpet-auction-house/internal/ipfs"
	model "carpet-auction-house/internal/models"
	"carpet-auction-house/internal/reconcile"
	"carpet-auction-house/internal/storage"
	"carpet-auction-house/internal/units"
	"carpet-auction-house/utils"

	"github.com/jonboulle/clockwork"
)

// Deps are the collaborators of a Service. A nil Contract puts the read paths in demo
// mode and makes every write fail with ErrNoContract.
type Deps struct {
	Contract  chain.Contract
	Wallet    chain.Wallet
	Events    eventlog.Source
	Publisher Publisher
	Dashboard Dashboarder
	Metadata  MetadataReader
	Gateways  ipfs.Gateways
	// ChainID is the network writes must go to; 0 skips the check
	ChainID uint64
	Clock   clockwork.Clock
}

// Service defines the marketplace business logic
type Service struct {
	contract  chain.Contract
	wallet    chain.Wallet
	events    eventlog.Source
	publisher Publisher
	dashboard Dashboarder
	metadata  MetadataReader
	gateways  ipfs.Gateways
	chainID   uint64
	clock     clockwork.Clock
}

// NewService creates a new Service instance
func NewService(d Deps) *Service {
	s := &Service{
		contract:  d.Contract,
		wallet:    d.Wallet,
		events:    d.Events,
		publisher: d.Publisher,
		dashboard: d.Dashboard,
		metadata:  d.Metadata,
		gateways:  d.Gateways,
		chainID:   d.ChainID,
		clock:     d.Clock,
	}
	if s.dashboard == nil {
		s.dashboard = reconcile.NewEngine(nil, nil)
	}
	if len(s.gateways) == 0 {
		s.gateways = ipfs.NewGateways()
	}
	if s.clock == nil {
		s.clock = clockwork.NewRealClock()
	}
	return s
}

// DemoMode reports whether reads are served from placeholder data
func (s *Service) DemoMode() bool {
	return s.contract == nil
}

// ListAuctions returns every auction whose title contains search, ignoring case.
// Placeholder listings are returned in demo mode and when the contract read fails.
func (s *Service) ListAuctions(ctx context.Context, search string) model.AuctionList {
	list := model.AuctionList{Source: model.SourceLive}

	if s.contract == nil {
		utils.Info("service: using placeholder auctions", map[string]any{"reason": "no contract configured"})
		list.Auctions, list.Source = placeholderAuctions(s.clock.Now()), model.SourceDemo
	} else {
		auctions, err := s.contract.AllAuctions(ctx)
		if err != nil {
			utils.Error("service: failed to fetch auctions, using placeholder data", map[string]any{"error": err.Error()})
			auctions, list.Source = placeholderAuctions(s.clock.Now()), model.SourceFallback
		}
		list.Auctions = auctions
	}

	list.Auctions = filterByTitle(list.Auctions, search)
	for i := range list.Auctions {
		if img := list.Auctions[i].Image; img != "" {
			list.Auctions[i].Image = s.gateways.FirstURL(img)
		}
	}
	return list
}

func filterByTitle(auctions []model.AuctionListing, search string) []model.AuctionListing {
	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]model.AuctionListing, 0, len(auctions))
	for _, a := range auctions {
		if term == "" || strings.Contains(strings.ToLower(a.Title), term) {
			out = append(out, a)
		}
	}
	return out
}

// AuctionDetails returns one auction with its bid history, newest bid first.
// Mock data is returned in demo mode and when reading the chain fails; an id the
// contract does not know is reported as ErrAuctionNotFound.
func (s *Service) AuctionDetails(ctx context.Context, id model.AuctionID) (model.AuctionView, error) {
	if id == 0 {
		return model.AuctionView{}, fmt.Errorf("service: %w - auction id must be positive", auctionerrors.ErrInvalidAuction)
	}
	if s.contract == nil {
		return s.mockView(id, model.SourceDemo), nil
	}

	details, err := s.contract.AuctionByID(ctx, id)
	if errors.Is(err, auctionerrors.ErrAuctionNotFound) {
		return model.AuctionView{}, fmt.Errorf("service: failed to get auction %s: %w", id, err)
	}
	if err != nil {
		utils.Error("service: failed to fetch auction, using mock data", map[string]any{"auction_id": id, "error": err.Error()})
		return s.mockView(id, model.SourceFallback), nil
	}

	history, err := s.bidHistory(ctx, id)
	if err != nil {
		utils.Error("service: failed to fetch bid history, using mock data", map[string]any{"auction_id": id, "error": err.Error()})
		return s.mockView(id, model.SourceFallback), nil
	}

	details.Image = s.auctionImage(ctx, id)
	return model.AuctionView{Auction: details, Bids: history, Source: model.SourceLive}, nil
}

func (s *Service) mockView(id model.AuctionID, source model.DataSource) model.AuctionView {
	return model.AuctionView{Auction: mockAuction(id, s.clock.Now()), Bids: mockBidHistory(), Source: source}
}

func (s *Service) bidHistory(ctx context.Context, id model.AuctionID) ([]model.BidRecord, error) {
	if s.events == nil {
		return []model.BidRecord{}, nil
	}
	bids, err := s.events.BidPlaced(ctx, eventlog.BidFilter{AuctionID: eventlog.ByAuction(id)})
	if err != nil {
		return nil, err
	}
	history := make([]model.BidRecord, 0, len(bids))
	for i := len(bids) - 1; i >= 0; i-- {
		history = append(history, model.BidRecord{
			Bidder: model.ShortenAddress(bids[i].Bidder),
			Amount: units.DisplayEther(bids[i].Amount),
		})
	}
	return history, nil
}

// auctionImage follows the creation event to the metadata document's image
func (s *Service) auctionImage(ctx context.Context, id model.AuctionID) string {
	if s.events == nil || s.metadata == nil {
		return PlaceholderImage
	}
	created, err := s.events.AuctionCreated(ctx, eventlog.CreatedFilter{AuctionID: eventlog.ByAuction(id)})
	if err != nil || len(created) == 0 {
		return PlaceholderImage
	}
	meta, err := s.metadata.Metadata(ctx, created[0].MetadataURI)
	if err != nil || meta.Image == "" {
		utils.Warn("service: auction image unavailable", map[string]any{"auction_id": id, "metadata_uri": created[0].MetadataURI})
		return PlaceholderImage
	}
	return s.gateways.FirstURL(meta.Image)
}

// PlaceBid submits a bid of amount ether and waits for it to be mined
func (s *Service) PlaceBid(ctx context.Context, id model.AuctionID, amount string) (chain.Receipt, error) {
	wei, err := validateBid(id, amount)
	if err != nil {
		return chain.Receipt{}, err
	}
	return s.submit(ctx, "place bid", id, func(opts *bindOpts) (chain.Receipt, error) {
		return s.contract.PlaceBid(ctx, opts, id, wei)
	})
}

// validateBid checks the auction id and parses a strictly positive ether amount
func validateBid(id model.AuctionID, amount string) (*big.Int, error) {
	if id == 0 {
		return nil, fmt.Errorf("service: %w - auction id must be positive", auctionerrors.ErrInvalidBid)
	}
	wei, err := units.ParseEther(amount)
	if err != nil {
		return nil, fmt.Errorf("service: %w - %v", auctionerrors.ErrInvalidBid, err)
	}
	if wei.Sign() <= 0 {
		return nil, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}
	return wei, nil
}

// ClaimFunds pays the seller of an ended auction
func (s *Service) ClaimFunds(ctx context.Context, id model.AuctionID) (chain.Receipt, error) {
	if id == 0 {
		return chain.Receipt{}, fmt.Errorf("service: %w - auction id must be positive", auctionerrors.ErrInvalidAuction)
	}
	return s.submit(ctx, "claim funds", id, func(opts *bindOpts) (chain.Receipt, error) {
		return s.contract.ClaimFunds(ctx, opts, id)
	})
}

// ClaimNFT transfers the token of an ended auction to its winner
func (s *Service) ClaimNFT(ctx context.Context, id model.AuctionID) (chain.Receipt, error) {
	if id == 0 {
		return chain.Receipt{}, fmt.Errorf("service: %w - auction id must be positive", auctionerrors.ErrInvalidAuction)
	}
	return s.submit(ctx, "claim nft", id, func(opts *bindOpts) (chain.Receipt, error) {
		return s.contract.ClaimNFT(ctx, opts, id)
	})
}

// PublishRequest is a new listing as entered by the seller
type PublishRequest struct {
	Name        string
	Description string
	// Price is the starting bid in ether
	Price string
	// DurationHours is a whole number of hours
	DurationHours string
	Filename      string
	Image         []byte
}

// PublishResult references the stored objects and the creating transaction
type PublishResult struct {
	storage.Published
	Receipt chain.Receipt `json:"receipt"`
}

type listing struct {
	price    *big.Int
	duration time.Duration
}

func validateListing(req PublishRequest) (listing, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Description) == "" ||
		strings.TrimSpace(req.Price) == "" || strings.TrimSpace(req.DurationHours) == "" || len(req.Image) == 0 {
		return listing{}, fmt.Errorf("service: %w - name, description, price, duration and image are required", auctionerrors.ErrInvalidListing)
	}
	price, err := units.ParseEther(req.Price)
	if err != nil {
		return listing{}, fmt.Errorf("service: %w - price: %v", auctionerrors.ErrInvalidListing, err)
	}
	hours, err := strconv.Atoi(strings.TrimSpace(req.DurationHours))
	if err != nil || hours < 1 {
		return listing{}, fmt.Errorf("service: %w - duration must be a whole number of hours, at least 1", auctionerrors.ErrInvalidListing)
	}
	return listing{price: price, duration: time.Duration(hours) * time.Hour}, nil
}

// Publish stores the image and metadata, then creates the auction on chain.
// Nothing is uploaded unless a wallet and a contract are available.
func (s *Service) Publish(ctx context.Context, req PublishRequest) (PublishResult, error) {
	l, err := validateListing(req)
	if err != nil {
		return PublishResult{}, err
	}
	if err := s.ready(ctx, "publish"); err != nil {
		return PublishResult{}, err
	}
	if s.publisher == nil {
		return PublishResult{}, fmt.Errorf("service: publish: %w", auctionerrors.ErrNoStorageProvider)
	}

	published, err := s.publisher.Publish(ctx,
		storage.Asset{Filename: req.Filename, Data: req.Image},
		storage.Document{Name: strings.TrimSpace(req.Name), Description: strings.TrimSpace(req.Description)})
	if err != nil {
		utils.Error("service: failed to store listing", map[string]any{"name": req.Name, "error": err.Error()})
		return PublishResult{}, fmt.Errorf("service: failed to store listing %q: %w", req.Name, err)
	}

	receipt, err := s.transact(ctx, "publish", 0, func(opts *bindOpts) (chain.Receipt, error) {
		return s.contract.CreateAuction(ctx, opts, published.MetadataURL, l.price, l.duration)
	})
	if err != nil {
		return PublishResult{}, err
	}
	return PublishResult{Published: published, Receipt: receipt}, nil
}

// Dashboard returns the seller and buyer views of account
func (s *Service) Dashboard(ctx context.Context, account string) model.Dashboard {
	return s.dashboard.Dashboard(ctx, account)
}

// WalletStatus reports the signing account without prompting for one
func (s *Service) WalletStatus(ctx context.Context) model.WalletStatus {
	st := model.WalletStatus{ChainID: s.chainID, DemoMode: s.DemoMode()}
	if s.wallet == nil {
		return st
	}
	if acct, ok := s.wallet.CurrentAccount(); ok {
		st.Connected, st.Account, st.Short = true, acct, model.ShortenAddress(acct)
	}
	return st
}
