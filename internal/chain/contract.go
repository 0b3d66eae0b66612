package chain

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"carpet-auction-house/internal/auctionerrors"
	"carpet-auction-house/internal/marketabi"
	model "carpet-auction-house/internal/models"
	"carpet-auction-house/internal/units"
	"carpet-auction-house/utils"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate mockgen -source=contract.go -destination=mock_contract.go -package=chain

// Receipt identifies a mined transaction
type Receipt struct {
	TxHash      string `json:"tx_hash"`
	BlockNumber uint64 `json:"block_number"`
}

// Contract is the marketplace contract surface. Write methods return once the
// transaction is mined and fail with ErrTxReverted when it did not succeed.
type Contract interface {
	AllAuctions(ctx context.Context) ([]model.AuctionListing, error)
	AuctionByID(ctx context.Context, id model.AuctionID) (model.AuctionDetails, error)
	CreateAuction(ctx context.Context, opts *bind.TransactOpts, metadataURL string, startPrice *big.Int, duration time.Duration) (Receipt, error)
	PlaceBid(ctx context.Context, opts *bind.TransactOpts, id model.AuctionID, amount *big.Int) (Receipt, error)
	ClaimFunds(ctx context.Context, opts *bind.TransactOpts, id model.AuctionID) (Receipt, error)
	ClaimNFT(ctx context.Context, opts *bind.TransactOpts, id model.AuctionID) (Receipt, error)
}

// auctionRow mirrors one element of getAllAuctions
type auctionRow struct {
	Id         *big.Int
	Title      string
	HighestBid *big.Int
	EndTime    *big.Int
	Image      string
}

// auctionInfo mirrors the getAuctionById tuple
type auctionInfo struct {
	Id            *big.Int
	Title         string
	Description   string
	Seller        common.Address
	HighestBid    *big.Int
	HighestBidder common.Address
	EndTime       *big.Int
	Active        bool
}

// EthContract talks to the deployed marketplace through go-ethereum bindings
type EthContract struct {
	address common.Address
	bound   *bind.BoundContract
	backend Backend
}

// NewEthContract binds the contract at address
func NewEthContract(address common.Address, backend Backend) (*EthContract, error) {
	parsed, err := marketabi.Parsed()
	if err != nil {
		return nil, fmt.Errorf("chain: parse contract abi: %w", err)
	}
	return &EthContract{
		address: address,
		bound:   bind.NewBoundContract(address, parsed, backend, backend, backend),
		backend: backend,
	}, nil
}

func (c *EthContract) AllAuctions(ctx context.Context) ([]model.AuctionListing, error) {
	var out []interface{}
	if err := c.bound.Call(&bind.CallOpts{Context: ctx}, &out, marketabi.MethodGetAllAuctions); err != nil {
		return nil, fmt.Errorf("chain: %s: %w", marketabi.MethodGetAllAuctions, err)
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("chain: %s returned %d values: %w", marketabi.MethodGetAllAuctions, len(out), auctionerrors.ErrMalformedEvent)
	}
	rows := *abi.ConvertType(out[0], new([]auctionRow)).(*[]auctionRow)

	listings := make([]model.AuctionListing, 0, len(rows))
	for _, r := range rows {
		id, err := toAuctionID(r.Id)
		if err != nil {
			return nil, err
		}
		listings = append(listings, model.AuctionListing{
			ID:         id,
			Title:      r.Title,
			HighestBid: units.DisplayEther(r.HighestBid),
			EndTime:    unixTime(r.EndTime),
			Image:      r.Image,
		})
	}
	return listings, nil
}

func (c *EthContract) AuctionByID(ctx context.Context, id model.AuctionID) (model.AuctionDetails, error) {
	var out []interface{}
	arg := new(big.Int).SetUint64(uint64(id))
	if err := c.bound.Call(&bind.CallOpts{Context: ctx}, &out, marketabi.MethodGetAuctionByID, arg); err != nil {
		return model.AuctionDetails{}, fmt.Errorf("chain: %s(%s): %w", marketabi.MethodGetAuctionByID, id, err)
	}
	if len(out) != 1 {
		return model.AuctionDetails{}, fmt.Errorf("chain: %s returned %d values: %w", marketabi.MethodGetAuctionByID, len(out), auctionerrors.ErrMalformedEvent)
	}
	info := *abi.ConvertType(out[0], new(auctionInfo)).(*auctionInfo)

	// the contract answers unknown ids with a zeroed struct
	if info.Seller == (common.Address{}) {
		return model.AuctionDetails{}, fmt.Errorf("chain: auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
	}

	bidder := ""
	if info.HighestBidder != (common.Address{}) {
		bidder = info.HighestBidder.Hex()
	}
	return model.AuctionDetails{
		ID:            id,
		Title:         info.Title,
		Description:   info.Description,
		Seller:        info.Seller.Hex(),
		HighestBid:    units.DisplayEther(info.HighestBid),
		HighestBidder: bidder,
		EndTime:       unixTime(info.EndTime),
		Active:        info.Active,
	}, nil
}

// CreateAuction lists metadataURL; duration is sent in whole seconds
func (c *EthContract) CreateAuction(ctx context.Context, opts *bind.TransactOpts, metadataURL string, startPrice *big.Int, duration time.Duration) (Receipt, error) {
	seconds := new(big.Int).SetInt64(int64(duration / time.Second))
	return c.transact(ctx, opts, marketabi.MethodCreateAuction, metadataURL, startPrice, seconds)
}

func (c *EthContract) PlaceBid(ctx context.Context, opts *bind.TransactOpts, id model.AuctionID, amount *big.Int) (Receipt, error) {
	return c.transact(ctx, opts, marketabi.MethodPlaceBid, new(big.Int).SetUint64(uint64(id)), amount)
}

func (c *EthContract) ClaimFunds(ctx context.Context, opts *bind.TransactOpts, id model.AuctionID) (Receipt, error) {
	return c.transact(ctx, opts, marketabi.MethodClaimFunds, new(big.Int).SetUint64(uint64(id)))
}

func (c *EthContract) ClaimNFT(ctx context.Context, opts *bind.TransactOpts, id model.AuctionID) (Receipt, error) {
	return c.transact(ctx, opts, marketabi.MethodClaimNFT, new(big.Int).SetUint64(uint64(id)))
}

func (c *EthContract) transact(ctx context.Context, opts *bind.TransactOpts, method string, params ...interface{}) (Receipt, error) {
	if opts == nil {
		return Receipt{}, fmt.Errorf("chain: %s: %w", method, auctionerrors.ErrNoWallet)
	}
	opts.Context = ctx

	tx, err := c.bound.Transact(opts, method, params...)
	if err != nil {
		return Receipt{}, fmt.Errorf("chain: send %s: %w", method, classify(err))
	}
	utils.Info("chain: transaction sent", map[string]any{
		"method":  method,
		"tx_hash": tx.Hash().Hex(),
		"from":    opts.From.Hex(),
	})

	receipt, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		return Receipt{}, fmt.Errorf("chain: wait for %s: %w", method, err)
	}
	out := Receipt{TxHash: receipt.TxHash.Hex()}
	if receipt.BlockNumber != nil {
		out.BlockNumber = receipt.BlockNumber.Uint64()
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return out, fmt.Errorf("chain: %s in tx %s: %w", method, out.TxHash, auctionerrors.ErrTxReverted)
	}
	return out, nil
}

func toAuctionID(v *big.Int) (model.AuctionID, error) {
	if v == nil || v.Sign() < 0 || !v.IsUint64() {
		return 0, fmt.Errorf("chain: auction id %v out of range: %w", v, auctionerrors.ErrMalformedEvent)
	}
	return model.AuctionID(v.Uint64()), nil
}

func unixTime(v *big.Int) time.Time {
	if v == nil || !v.IsInt64() {
		return time.Time{}
	}
	return time.Unix(v.Int64(), 0).UTC()
}

var _ Contract = (*EthContract)(nil)
