package auctionerrors

import (
	"errors"
	"fmt"
	"math/big"
)

// Lookup errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrFetchFailed     = errors.New("failed to fetch IPFS JSON")
)

// Validation errors
var (
	ErrInvalidAuction = errors.New("invalid auction")
	ErrInvalidBid     = errors.New("invalid bid")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidListing = errors.New("invalid listing")
)

// Storage errors
var (
	ErrMissingCredential = errors.New("missing storage credential")
	ErrNoStorageProvider = errors.New("no storage provider configured")
	ErrUploadFailed      = errors.New("upload failed")
)

// Chain and wallet errors
var (
	ErrNoWallet        = errors.New("wallet not connected")
	ErrNoContract      = errors.New("contract not configured")
	ErrUserRejected    = errors.New("request rejected in wallet")
	ErrTxReverted      = errors.New("transaction reverted")
	ErrMalformedEvent  = errors.New("malformed contract event")
	ErrNetworkMismatch = errors.New("wrong network")
)

// UserRejectedCode is the EIP-1193 code a wallet returns when the user declines a request.
const UserRejectedCode = 4001

// RejectedError is a wallet-side failure carrying an EIP-1193 style code
type RejectedError struct {
	Code    int
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("wallet error %d: %s", e.Code, e.Message)
}

// Is lets errors.Is(err, ErrUserRejected) match a 4001 rejection.
func (e *RejectedError) Is(target error) bool {
	return target == ErrUserRejected && e.Code == UserRejectedCode
}

// IsUserRejection reports whether err is a wallet rejection by the user
func IsUserRejection(err error) bool {
	var rej *RejectedError
	return errors.As(err, &rej) && rej.Code == UserRejectedCode
}

// NetworkMismatchError is returned when the connected chain differs from the configured one.
// Got is the node's chain id as reported, which may exceed uint64.
type NetworkMismatchError struct {
	Want uint64
	Got  *big.Int
}

func (e *NetworkMismatchError) Error() string {
	return fmt.Sprintf("connected to chain %v, want chain %d", e.Got, e.Want)
}

func (e *NetworkMismatchError) Unwrap() error {
	return ErrNetworkMismatch
}
