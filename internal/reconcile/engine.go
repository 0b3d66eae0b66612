package reconcile

import (
	"context"
	"fmt"
	"strings"

	"carpet-auction-house/internal/auctionerrors"
	"carpet-auction-house/internal/eventlog"
	model "carpet-auction-house/internal/models"
	"carpet-auction-house/utils"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers bounds the per-auction sub-queries in flight during one pass
const DefaultWorkers = 4

// Engine aggregates seller and buyer dashboards from the event log
type Engine struct {
	source  eventlog.Source
	titles  *TitleResolver
	workers int
}

// Option configures an Engine
type Option func(*Engine)

// WithWorkers sets the per-auction query concurrency; values below 1 mean sequential
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n < 1 {
			n = 1
		}
		e.workers = n
	}
}

// NewEngine creates an engine. A nil source puts it permanently in demo mode.
func NewEngine(source eventlog.Source, titles *TitleResolver, opts ...Option) *Engine {
	e := &Engine{source: source, titles: titles, workers: DefaultWorkers}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Dashboard returns the seller and buyer views of account.
// Without an account or a source it returns the sample data (SourceDemo). Any failure
// during a live pass discards partial results and returns the sample data (SourceFallback).
func (e *Engine) Dashboard(ctx context.Context, account string) model.Dashboard {
	account = strings.TrimSpace(account)
	if e.source == nil || account == "" {
		utils.Info("reconcile: using demo data for dashboard", map[string]any{
			"has_account": account != "",
			"has_source":  e.source != nil,
		})
		dashboardPasses.WithLabelValues(string(model.SourceDemo)).Inc()
		return sampleDashboard(model.SourceDemo)
	}

	d, err := e.aggregate(ctx, account)
	if err != nil {
		utils.Error("reconcile: dashboard aggregation failed, using fallback data", map[string]any{
			"account": account,
			"error":   err.Error(),
		})
		dashboardPasses.WithLabelValues(string(model.SourceFallback)).Inc()
		return sampleDashboard(model.SourceFallback)
	}

	dashboardPasses.WithLabelValues(string(model.SourceLive)).Inc()
	return d
}

func (e *Engine) aggregate(ctx context.Context, account string) (model.Dashboard, error) {
	var (
		created []model.AuctionCreated
		ended   []model.AuctionEnded
		mine    []model.BidPlaced
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		created, err = e.source.AuctionCreated(gctx, eventlog.CreatedFilter{Seller: eventlog.ByAddress(account)})
		if err != nil {
			return fmt.Errorf("query created auctions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		ended, err = e.source.AuctionEnded(gctx, eventlog.EndedFilter{})
		if err != nil {
			return fmt.Errorf("query ended auctions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		mine, err = e.source.BidPlaced(gctx, eventlog.BidFilter{Bidder: eventlog.ByAddress(account)})
		if err != nil {
			return fmt.Errorf("query own bids: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return model.Dashboard{}, err
	}

	index, duplicates := BuildEndedIndex(ended)
	if len(duplicates) > 0 {
		duplicateEndings.WithLabelValues().Add(float64(len(duplicates)))
		utils.Warn("reconcile: auction ended more than once, keeping the last event", map[string]any{
			"auction_ids": duplicates,
		})
	}

	seller, err := e.sellerSummaries(ctx, created, index)
	if err != nil {
		return model.Dashboard{}, err
	}
	buyer, err := e.buyerSummaries(ctx, account, mine, index)
	if err != nil {
		return model.Dashboard{}, err
	}

	return model.Dashboard{Seller: seller, Buyer: buyer, Source: model.SourceLive}, nil
}

func (e *Engine) sellerSummaries(ctx context.Context, created []model.AuctionCreated, index EndedIndex) ([]model.SellerSummary, error) {
	out := make([]model.SellerSummary, len(created))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, ev := range created {
		i, ev := i, ev
		g.Go(func() error {
			bids, err := e.auctionBids(gctx, ev.AuctionID)
			if err != nil {
				return err
			}
			title := e.titles.Resolve(gctx, ev.AuctionID, ev.MetadataURI)
			out[i] = SummarizeSeller(ev, title, bids, index)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("seller summaries: %w", err)
	}
	return out, nil
}

func (e *Engine) buyerSummaries(ctx context.Context, account string, mine []model.BidPlaced, index EndedIndex) ([]model.BuyerSummary, error) {
	ids := FirstSeenAuctions(mine)
	out := make([]model.BuyerSummary, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			bids, err := e.auctionBids(gctx, id)
			if err != nil {
				return err
			}
			title, err := e.auctionTitle(gctx, id)
			if err != nil {
				return err
			}
			out[i] = SummarizeBuyer(id, title, bids, account, index)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("buyer summaries: %w", err)
	}
	return out, nil
}

// auctionBids returns every bid on one auction, rejecting events without an amount
func (e *Engine) auctionBids(ctx context.Context, id model.AuctionID) ([]model.BidPlaced, error) {
	bids, err := e.source.BidPlaced(ctx, eventlog.BidFilter{AuctionID: eventlog.ByAuction(id)})
	if err != nil {
		return nil, fmt.Errorf("query bids for auction %s: %w", id, err)
	}
	for _, b := range bids {
		if b.Amount == nil {
			return nil, fmt.Errorf("bid on auction %s by %s has no amount: %w", id, b.Bidder, auctionerrors.ErrMalformedEvent)
		}
	}
	return bids, nil
}

// auctionTitle looks up the creation event of an auction someone else published
func (e *Engine) auctionTitle(ctx context.Context, id model.AuctionID) (string, error) {
	created, err := e.source.AuctionCreated(ctx, eventlog.CreatedFilter{AuctionID: eventlog.ByAuction(id)})
	if err != nil {
		return "", fmt.Errorf("query creation of auction %s: %w", id, err)
	}
	if len(created) == 0 {
		return FallbackTitle(id), nil
	}
	return e.titles.Resolve(ctx, id, created[0].MetadataURI), nil
}
