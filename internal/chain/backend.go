package chain

import (
	"errors"

	"carpet-auction-house/internal/auctionerrors"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
)

// Backend is what an ethclient.Client offers for contract calls and receipts
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// rpcCoder is implemented by JSON-RPC errors that carry a code
type rpcCoder interface {
	ErrorCode() int
}

// classify turns a wallet-side 4001 into a *RejectedError
func classify(err error) error {
	var coded rpcCoder
	if errors.As(err, &coded) && coded.ErrorCode() == auctionerrors.UserRejectedCode {
		return &auctionerrors.RejectedError{Code: coded.ErrorCode(), Message: err.Error()}
	}
	return err
}
