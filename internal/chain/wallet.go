// Package chain signs and submits marketplace transactions and reads contract state.
package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"carpet-auction-house/internal/auctionerrors"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

//go:generate mockgen -source=wallet.go -destination=mock_wallet.go -package=chain

// Wallet is the signing capability the service acts through
type Wallet interface {
	// CurrentAccount returns the connected account without prompting
	CurrentAccount() (string, bool)
	// RequestConnection asks for access and returns the granted account
	RequestConnection(ctx context.Context) (string, error)
	// EnsureNetwork fails with a *NetworkMismatchError unless connected to chainID; 0 accepts any chain
	EnsureNetwork(ctx context.Context, chainID uint64) error
	TransactOpts(ctx context.Context) (*bind.TransactOpts, error)
}

// ChainIDReader reports the chain id of the connected node
type ChainIDReader interface {
	ChainID(ctx context.Context) (*big.Int, error)
}

// KeyedWallet signs locally with a private key held by the service
type KeyedWallet struct {
	key     *ecdsa.PrivateKey
	address common.Address
	node    ChainIDReader

	mu      sync.Mutex
	chainID *big.Int
}

// NewKeyedWallet parses a hex private key, with or without 0x prefix
func NewKeyedWallet(hexKey string, node ChainIDReader) (*KeyedWallet, error) {
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	if hexKey == "" {
		return nil, fmt.Errorf("chain: signer key not set: %w", auctionerrors.ErrNoWallet)
	}
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("chain: parse signer key: %w", err)
	}
	return &KeyedWallet{key: key, address: crypto.PubkeyToAddress(key.PublicKey), node: node}, nil
}

func (w *KeyedWallet) CurrentAccount() (string, bool) {
	return w.address.Hex(), true
}

// RequestConnection never prompts; a keyed wallet is always connected
func (w *KeyedWallet) RequestConnection(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return w.address.Hex(), nil
}

func (w *KeyedWallet) EnsureNetwork(ctx context.Context, chainID uint64) error {
	if chainID == 0 {
		return nil
	}
	got, err := w.networkID(ctx)
	if err != nil {
		return err
	}
	if !got.IsUint64() || got.Uint64() != chainID {
		return &auctionerrors.NetworkMismatchError{Want: chainID, Got: new(big.Int).Set(got)}
	}
	return nil
}

// TransactOpts returns EIP-155 signing options bound to ctx
func (w *KeyedWallet) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	id, err := w.networkID(ctx)
	if err != nil {
		return nil, err
	}
	opts, err := bind.NewKeyedTransactorWithChainID(w.key, id)
	if err != nil {
		return nil, fmt.Errorf("chain: build transactor: %w", err)
	}
	opts.Context = ctx
	return opts, nil
}

// networkID asks the node once and remembers the answer
func (w *KeyedWallet) networkID(ctx context.Context) (*big.Int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.chainID != nil {
		return w.chainID, nil
	}
	if w.node == nil {
		return nil, fmt.Errorf("chain: no node to read the chain id from: %w", auctionerrors.ErrNoContract)
	}
	id, err := w.node.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("chain: read chain id: %w", err)
	}
	w.chainID = id
	return id, nil
}

var _ Wallet = (*KeyedWallet)(nil)
