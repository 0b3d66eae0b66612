package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"carpet-auction-house/internal/chain"
	"carpet-auction-house/internal/config"
	"carpet-auction-house/internal/eventlog"
	"carpet-auction-house/internal/httpretry"
	"carpet-auction-house/internal/ipfs"
	"carpet-auction-house/internal/marketplace"
	"carpet-auction-house/internal/reconcile"
	"carpet-auction-house/internal/server"
	"carpet-auction-house/internal/storage"
	"carpet-auction-house/utils"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/spf13/viper"
)

func main() {
	cfg, err := config.Load(viper.New())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := utils.SetLevel(cfg.LogLevel); err != nil {
		utils.Warn("unknown log level, keeping info", map[string]any{"level": cfg.LogLevel})
	}

	svc, closeFn, err := buildService(cfg)
	if err != nil {
		utils.Fatal("failed to build marketplace service", map[string]any{"error": err.Error()})
	}
	defer closeFn()

	srv := &http.Server{
		Addr:    cfg.ListenAddr(),
		Handler: server.SetupRouter(svc),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		utils.Info("starting carpet auction server", map[string]any{"addr": srv.Addr, "demo_mode": svc.DemoMode()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Error("server stopped", map[string]any{"error": err.Error()})
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("graceful shutdown failed", map[string]any{"error": err.Error()})
		return
	}
	utils.Info("server shut down", nil)
}

// buildService wires the marketplace from cfg. Without a node and contract the service
// runs in demo mode on placeholder data.
func buildService(cfg config.Config) (*marketplace.Service, func(), error) {
	gateways := ipfs.NewGateways(cfg.Gateways...)
	// the reader moves to the next gateway itself, so its client makes a single attempt
	readerOpts := cfg.HTTP
	readerOpts.Retries = 0
	reader := ipfs.NewReader(gateways, httpretry.New("ipfs", readerOpts))

	if cfg.DemoMode() {
		utils.Warn("no contract configured, running in demo mode", map[string]any{
			"rpc_url":  cfg.RPCURL,
			"contract": cfg.ContractAddress,
		})
		return marketplace.NewService(marketplace.Deps{Gateways: gateways, ChainID: cfg.ChainID}), func() {}, nil
	}

	client, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, nil, fmt.Errorf("dial %s: %w", cfg.RPCURL, err)
	}

	events, err := eventlog.NewEthLog(client, cfg.Contract(), cfg.FromBlock)
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	contract, err := chain.NewEthContract(cfg.Contract(), client)
	if err != nil {
		client.Close()
		return nil, nil, err
	}

	titles, err := reconcile.NewTitleResolver(reader, cfg.TitleCacheSize)
	if err != nil {
		client.Close()
		return nil, nil, err
	}

	deps := marketplace.Deps{
		Contract:  contract,
		Events:    events,
		Publisher: newPublisher(cfg, gateways),
		Dashboard: reconcile.NewEngine(events, titles, reconcile.WithWorkers(cfg.Workers)),
		Metadata:  reader,
		Gateways:  gateways,
		ChainID:   cfg.ChainID,
	}

	if cfg.SignerKey != "" {
		wallet, err := chain.NewKeyedWallet(cfg.SignerKey, client)
		if err != nil {
			client.Close()
			return nil, nil, err
		}
		deps.Wallet = wallet
		if acct, ok := wallet.CurrentAccount(); ok {
			utils.Info("signing wallet loaded", map[string]any{"account": acct})
		}
	} else {
		utils.Warn("no signer key configured, write operations are disabled", nil)
	}

	return marketplace.NewService(deps), client.Close, nil
}

// newPublisher registers the storage providers that have credentials, primary first
func newPublisher(cfg config.Config, gateways ipfs.Gateways) *storage.Publisher {
	uploads := httpretry.New("storage", cfg.HTTP)

	var providers []storage.Provider
	if cfg.Web3StorageToken != "" {
		providers = append(providers, storage.NewWeb3Storage(storage.DefaultWeb3StorageURL, cfg.Web3StorageToken, uploads))
	}
	if cfg.PinataJWT != "" {
		providers = append(providers, storage.NewPinata(storage.DefaultPinataURL, cfg.PinataJWT, uploads))
	}
	if len(providers) == 0 {
		utils.Warn("no storage provider configured, publishing will fail", nil)
	}
	return storage.NewPublisher(storage.NewChain(providers...), gateways)
}
