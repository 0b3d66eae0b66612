package marketplace

import (
	"context"
	"fmt"

	"carpet-auction-house/internal/auctionerrors"
	"carpet-auction-house/internal/chain"
	model "carpet-auction-house/internal/models"
	"carpet-auction-house/utils"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
)

type bindOpts = bind.TransactOpts

// ready checks the write prerequisites: a connected wallet, a contract and the right network
func (s *Service) ready(ctx context.Context, op string) error {
	if s.wallet == nil {
		return fmt.Errorf("service: %s: %w", op, auctionerrors.ErrNoWallet)
	}
	if _, ok := s.wallet.CurrentAccount(); !ok {
		if _, err := s.wallet.RequestConnection(ctx); err != nil {
			return s.walletError(op, 0, err)
		}
	}
	if s.contract == nil {
		return fmt.Errorf("service: %s: %w", op, auctionerrors.ErrNoContract)
	}
	if err := s.wallet.EnsureNetwork(ctx, s.chainID); err != nil {
		utils.Warn("service: wallet on the wrong network", map[string]any{"operation": op, "error": err.Error()})
		return fmt.Errorf("service: %s: %w", op, err)
	}
	return nil
}

func (s *Service) submit(ctx context.Context, op string, id model.AuctionID, send func(*bindOpts) (chain.Receipt, error)) (chain.Receipt, error) {
	if err := s.ready(ctx, op); err != nil {
		return chain.Receipt{}, err
	}
	return s.transact(ctx, op, id, send)
}

// transact signs with the wallet and waits for the receipt
func (s *Service) transact(ctx context.Context, op string, id model.AuctionID, send func(*bindOpts) (chain.Receipt, error)) (chain.Receipt, error) {
	opts, err := s.wallet.TransactOpts(ctx)
	if err != nil {
		return chain.Receipt{}, s.walletError(op, id, err)
	}
	receipt, err := send(opts)
	if err != nil {
		return receipt, s.walletError(op, id, err)
	}

	transactions.WithLabelValues(op, "ok").Inc()
	utils.Info("service: transaction mined", map[string]any{
		"operation":  op,
		"auction_id": id,
		"tx_hash":    receipt.TxHash,
		"block":      receipt.BlockNumber,
	})
	return receipt, nil
}

// walletError logs user rejections as warnings and everything else as errors
func (s *Service) walletError(op string, id model.AuctionID, err error) error {
	fields := map[string]any{"operation": op, "error": err.Error()}
	if id != 0 {
		fields["auction_id"] = id
	}
	if auctionerrors.IsUserRejection(err) {
		transactions.WithLabelValues(op, "rejected").Inc()
		utils.Warn("service: request rejected in wallet", fields)
		return fmt.Errorf("service: %s: %w", op, err)
	}
	transactions.WithLabelValues(op, "failed").Inc()
	utils.Error("service: transaction failed", fields)
	return fmt.Errorf("service: failed to %s: %w", op, err)
}
