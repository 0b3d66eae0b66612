// Package config reads service settings from the environment.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"carpet-auction-house/internal/httpretry"
	"carpet-auction-house/internal/reconcile"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"
)

// PlaceholderContract is the unconfigured contract address shipped in samples
const PlaceholderContract = "YOUR_CONTRACT_ADDRESS"

// Environment keys
const (
	KeyPort             = "PORT"
	KeyLogLevel         = "LOG_LEVEL"
	KeyRPCURL           = "RPC_URL"
	KeyContractAddress  = "CONTRACT_ADDRESS"
	KeyChainID          = "CHAIN_ID"
	KeyFromBlock        = "FROM_BLOCK"
	KeyWeb3StorageToken = "WEB3_STORAGE_TOKEN"
	KeyPinataJWT        = "PINATA_JWT"
	KeySignerKey        = "SIGNER_KEY"
	KeyGateways         = "IPFS_GATEWAYS"
	KeyTitleCacheSize   = "TITLE_CACHE_SIZE"
	KeyWorkers          = "DASHBOARD_WORKERS"
	KeyHTTPRetries      = "HTTP_RETRIES"
	KeyHTTPBackoff      = "HTTP_BACKOFF"
	KeyHTTPTimeout      = "HTTP_TIMEOUT"
	KeyShutdownTimeout  = "SHUTDOWN_TIMEOUT"
)

// Config is the full service configuration
type Config struct {
	Port            string
	LogLevel        string
	RPCURL          string
	ContractAddress string
	// ChainID 0 accepts whatever chain the node is on
	ChainID          uint64
	FromBlock        uint64
	Web3StorageToken string
	PinataJWT        string
	SignerKey        string
	Gateways         []string
	TitleCacheSize   int
	Workers          int
	HTTP             httpretry.Options
	ShutdownTimeout  time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyPort, "8080")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyContractAddress, PlaceholderContract)
	v.SetDefault(KeyChainID, 0)
	v.SetDefault(KeyFromBlock, 0)
	v.SetDefault(KeyTitleCacheSize, reconcile.DefaultTitleCacheSize)
	v.SetDefault(KeyWorkers, reconcile.DefaultWorkers)
	v.SetDefault(KeyHTTPRetries, httpretry.DefaultRetries)
	v.SetDefault(KeyHTTPBackoff, httpretry.DefaultBackoff)
	v.SetDefault(KeyHTTPTimeout, httpretry.DefaultTimeout)
	v.SetDefault(KeyShutdownTimeout, 10*time.Second)
}

// Load reads the configuration through v, which is bound to the environment.
// Pass viper.New() in production; tests may Set values directly.
func Load(v *viper.Viper) (Config, error) {
	setDefaults(v)
	v.AutomaticEnv()

	cfg := Config{
		Port:             strings.TrimPrefix(strings.TrimSpace(v.GetString(KeyPort)), ":"),
		LogLevel:         v.GetString(KeyLogLevel),
		RPCURL:           strings.TrimSpace(v.GetString(KeyRPCURL)),
		ContractAddress:  strings.TrimSpace(v.GetString(KeyContractAddress)),
		ChainID:          v.GetUint64(KeyChainID),
		FromBlock:        v.GetUint64(KeyFromBlock),
		Web3StorageToken: v.GetString(KeyWeb3StorageToken),
		PinataJWT:        v.GetString(KeyPinataJWT),
		SignerKey:        v.GetString(KeySignerKey),
		Gateways:         splitList(v.GetString(KeyGateways)),
		TitleCacheSize:   v.GetInt(KeyTitleCacheSize),
		Workers:          v.GetInt(KeyWorkers),
		HTTP: httpretry.Options{
			Retries: v.GetInt(KeyHTTPRetries),
			Backoff: getDuration(v, KeyHTTPBackoff),
			Timeout: getDuration(v, KeyHTTPTimeout),
		},
		ShutdownTimeout: getDuration(v, KeyShutdownTimeout),
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// getDuration reads a Go duration ("250ms", "3s"). A bare integer is taken as milliseconds.
func getDuration(v *viper.Viper, key string) time.Duration {
	if s, ok := v.Get(key).(string); ok {
		if ms, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return v.GetDuration(key)
}

func (c Config) validate() error {
	if p, err := strconv.Atoi(c.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("config: %s must be a port number, got %q", KeyPort, c.Port)
	}
	if c.hasContract() && !common.IsHexAddress(c.ContractAddress) {
		return fmt.Errorf("config: %s is not an address: %q", KeyContractAddress, c.ContractAddress)
	}
	if c.HTTP.Retries < 0 {
		return fmt.Errorf("config: %s must not be negative", KeyHTTPRetries)
	}
	if c.HTTP.Timeout <= 0 {
		return fmt.Errorf("config: %s must be positive", KeyHTTPTimeout)
	}
	return nil
}

func (c Config) hasContract() bool {
	return c.ContractAddress != "" && c.ContractAddress != PlaceholderContract
}

// DemoMode is true when there is no node or contract to talk to
func (c Config) DemoMode() bool {
	return c.RPCURL == "" || !c.hasContract()
}

// Contract returns the parsed contract address
func (c Config) Contract() common.Address {
	return common.HexToAddress(c.ContractAddress)
}

// ListenAddr is the address the HTTP server binds
func (c Config) ListenAddr() string {
	return ":" + c.Port
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
