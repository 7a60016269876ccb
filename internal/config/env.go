package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Config contains all configuration parameters for the application.
// Note: the wallet password is prompted at runtime and kept in a PasswordStore.
type Config struct {
	Port        string `envconfig:"PORT" default:"8080" validate:"required,numeric"`
	Environment string `envconfig:"ENV" default:"local"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=trace debug info warn error"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"text" validate:"oneof=text json"`
	SentryDSN   string `envconfig:"SENTRY_DSN" validate:"omitempty,url"`

	WalletFilePath string `envconfig:"WALLET_FILE_PATH"`

	ChainID          int64  `envconfig:"CHAIN_ID" default:"31337" validate:"gt=0"`
	ChainName        string `envconfig:"CHAIN_NAME" default:"Localhost" validate:"required"`
	RPCURL           string `envconfig:"RPC_URL" default:"http://127.0.0.1:8545" validate:"required,url"`
	BlockExplorerURL string `envconfig:"BLOCK_EXPLORER_URL" validate:"omitempty,url"`
	CurrencyName     string `envconfig:"CURRENCY_NAME" default:"Ether"`
	CurrencySymbol   string `envconfig:"CURRENCY_SYMBOL" default:"ETH"`

	FactoryAddress     string `envconfig:"CREATOR_FACTORY_ADDRESS" required:"true" validate:"required,eth_addr"`
	MarketplaceAddress string `envconfig:"CREATOR_MARKETPLACE_ADDRESS" required:"true" validate:"required,eth_addr"`

	CoinGeckoURL  string `envconfig:"COINGECKO_URL" default:"https://api.coingecko.com/api/v3" validate:"required,url"`
	PricePlatform string `envconfig:"PRICE_PLATFORM" default:"ethereum" validate:"required"`
	NativeAssetID string `envconfig:"NATIVE_ASSET_ID" default:"ethereum" validate:"required"`

	IPFSAPIURL     string `envconfig:"IPFS_API_URL" default:"http://127.0.0.1:5001" validate:"required,url"`
	IPFSGatewayURL string `envconfig:"IPFS_GATEWAY_URL" default:"https://ipfs.io/ipfs" validate:"required,url"`
	UploadWorkers  int    `envconfig:"UPLOAD_WORKERS" default:"4" validate:"min=1,max=32"`
	MaxUploadMB    int64  `envconfig:"MAX_UPLOAD_MB" default:"50" validate:"min=1"`

	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"15s"`
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// MaxUploadBytes returns the per-file upload limit in bytes
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}
