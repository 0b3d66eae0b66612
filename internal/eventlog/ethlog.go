package eventlog

import (
	"context"
	"fmt"
	"math/big"

	"carpet-auction-house/internal/auctionerrors"
	"carpet-auction-house/internal/marketabi"
	model "carpet-auction-house/internal/models"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// LogFilterer is the slice of an ethclient.Client the log source needs
type LogFilterer interface {
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
}

// EthLog reads marketplace events from an Ethereum JSON-RPC node
type EthLog struct {
	client    LogFilterer
	address   common.Address
	abi       abi.ABI
	fromBlock *big.Int
}

// NewEthLog creates a log source for the contract at address, scanning from fromBlock
func NewEthLog(client LogFilterer, address common.Address, fromBlock uint64) (*EthLog, error) {
	parsed, err := marketabi.Parsed()
	if err != nil {
		return nil, fmt.Errorf("eventlog: parse contract abi: %w", err)
	}
	return &EthLog{
		client:    client,
		address:   address,
		abi:       parsed,
		fromBlock: new(big.Int).SetUint64(fromBlock),
	}, nil
}

// AuctionCreated queries creation events; auctionId and seller are indexed
func (l *EthLog) AuctionCreated(ctx context.Context, filter CreatedFilter) ([]model.AuctionCreated, error) {
	logs, err := l.query(ctx, marketabi.EventAuctionCreated, idTopic(filter.AuctionID), addressTopic(filter.Seller))
	if err != nil {
		return nil, err
	}

	out := make([]model.AuctionCreated, 0, len(logs))
	for _, lg := range logs {
		if err := expectTopics(lg, 3); err != nil {
			return nil, err
		}
		id, err := topicToID(lg.Topics[1])
		if err != nil {
			return nil, err
		}
		values, err := l.abi.Unpack(marketabi.EventAuctionCreated, lg.Data)
		if err != nil || len(values) != 1 {
			return nil, malformed(lg, "decode AuctionCreated data", err)
		}
		uri, ok := values[0].(string)
		if !ok {
			return nil, malformed(lg, "metadataURI is not a string", nil)
		}
		out = append(out, model.AuctionCreated{
			AuctionID:   id,
			Seller:      common.BytesToAddress(lg.Topics[2].Bytes()).Hex(),
			MetadataURI: uri,
		})
	}
	return out, nil
}

// BidPlaced queries bid events; auctionId and bidder are indexed
func (l *EthLog) BidPlaced(ctx context.Context, filter BidFilter) ([]model.BidPlaced, error) {
	logs, err := l.query(ctx, marketabi.EventBidPlaced, idTopic(filter.AuctionID), addressTopic(filter.Bidder))
	if err != nil {
		return nil, err
	}

	out := make([]model.BidPlaced, 0, len(logs))
	for _, lg := range logs {
		if err := expectTopics(lg, 3); err != nil {
			return nil, err
		}
		id, err := topicToID(lg.Topics[1])
		if err != nil {
			return nil, err
		}
		values, err := l.abi.Unpack(marketabi.EventBidPlaced, lg.Data)
		if err != nil || len(values) != 1 {
			return nil, malformed(lg, "decode BidPlaced data", err)
		}
		amount, ok := values[0].(*big.Int)
		if !ok {
			return nil, malformed(lg, "amount is not uint256", nil)
		}
		out = append(out, model.BidPlaced{
			AuctionID: id,
			Bidder:    common.BytesToAddress(lg.Topics[2].Bytes()).Hex(),
			Amount:    amount,
		})
	}
	return out, nil
}

// AuctionEnded queries ending events; only auctionId is indexed
func (l *EthLog) AuctionEnded(ctx context.Context, filter EndedFilter) ([]model.AuctionEnded, error) {
	logs, err := l.query(ctx, marketabi.EventAuctionEnded, idTopic(filter.AuctionID))
	if err != nil {
		return nil, err
	}

	out := make([]model.AuctionEnded, 0, len(logs))
	for _, lg := range logs {
		if err := expectTopics(lg, 2); err != nil {
			return nil, err
		}
		id, err := topicToID(lg.Topics[1])
		if err != nil {
			return nil, err
		}
		values, err := l.abi.Unpack(marketabi.EventAuctionEnded, lg.Data)
		if err != nil || len(values) != 2 {
			return nil, malformed(lg, "decode AuctionEnded data", err)
		}
		winner, ok := values[0].(common.Address)
		if !ok {
			return nil, malformed(lg, "winner is not an address", nil)
		}
		amount, ok := values[1].(*big.Int)
		if !ok {
			return nil, malformed(lg, "amount is not uint256", nil)
		}
		out = append(out, model.AuctionEnded{AuctionID: id, Winner: winner.Hex(), Amount: amount})
	}
	return out, nil
}

func (l *EthLog) query(ctx context.Context, event string, topics ...[]common.Hash) ([]types.Log, error) {
	ev, ok := l.abi.Events[event]
	if !ok {
		return nil, fmt.Errorf("eventlog: unknown event %s", event)
	}

	q := ethereum.FilterQuery{
		FromBlock: l.fromBlock,
		Addresses: []common.Address{l.address},
		Topics:    append([][]common.Hash{{ev.ID}}, topics...),
	}
	logs, err := l.client.FilterLogs(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("eventlog: filter %s logs: %w", event, err)
	}

	// drop logs rolled back by a reorg
	kept := logs[:0]
	for _, lg := range logs {
		if !lg.Removed {
			kept = append(kept, lg)
		}
	}
	return kept, nil
}

func idTopic(id *model.AuctionID) []common.Hash {
	if id == nil {
		return nil
	}
	return []common.Hash{common.BigToHash(new(big.Int).SetUint64(uint64(*id)))}
}

func addressTopic(addr *string) []common.Hash {
	if addr == nil {
		return nil
	}
	return []common.Hash{common.BytesToHash(common.HexToAddress(*addr).Bytes())}
}

func topicToID(h common.Hash) (model.AuctionID, error) {
	v := new(big.Int).SetBytes(h.Bytes())
	if !v.IsUint64() {
		return 0, fmt.Errorf("eventlog: auction id %s out of range: %w", v, auctionerrors.ErrMalformedEvent)
	}
	return model.AuctionID(v.Uint64()), nil
}

func expectTopics(lg types.Log, n int) error {
	if len(lg.Topics) != n {
		return malformed(lg, fmt.Sprintf("want %d topics, got %d", n, len(lg.Topics)), nil)
	}
	return nil
}

func malformed(lg types.Log, what string, err error) error {
	if err != nil {
		return fmt.Errorf("eventlog: tx %s log %d: %s: %v: %w", lg.TxHash.Hex(), lg.Index, what, err, auctionerrors.ErrMalformedEvent)
	}
	return fmt.Errorf("eventlog: tx %s log %d: %s: %w", lg.TxHash.Hex(), lg.Index, what, auctionerrors.ErrMalformedEvent)
}
