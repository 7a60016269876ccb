package main

import (
	"context"
	"errors"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/term"

	"github.com/AlexZinkM/creatorweb3/docs"
	"github.com/AlexZinkM/creatorweb3/internal/api"
	"github.com/AlexZinkM/creatorweb3/internal/client"
	"github.com/AlexZinkM/creatorweb3/internal/config"
	"github.com/AlexZinkM/creatorweb3/internal/content"
	"github.com/AlexZinkM/creatorweb3/internal/crypto"
	"github.com/AlexZinkM/creatorweb3/internal/handler"
	"github.com/AlexZinkM/creatorweb3/internal/logger"
	"github.com/AlexZinkM/creatorweb3/internal/market"
	"github.com/AlexZinkM/creatorweb3/internal/price"
	"github.com/AlexZinkM/creatorweb3/internal/sentryutil"
	"github.com/AlexZinkM/creatorweb3/internal/storage"
	"github.com/AlexZinkM/creatorweb3/internal/wallet"
)

const shutdownTimeout = 10 * time.Second

// @title           CreatorWeb3 API
// @version         1.0
// @description     Creator tokens, token-gated content and a local wallet on an EVM chain.
// @BasePath        /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.For(ctx).WithError(err).Fatal("failed to load config")
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	log := logger.For(ctx)

	if err := sentryutil.Init(cfg.SentryDSN, cfg.Environment); err != nil {
		log.WithError(err).Warn("failed to init sentry")
	}
	defer sentryutil.Flush()

	passwords := &config.PasswordStore{}
	promptPassword(ctx, cfg.WalletFilePath, passwords)
	defer passwords.Clear()

	// Chain
	ethClient, nodeChainID, err := client.DialEthereum(ctx, cfg.RPCURL)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to node")
	}
	defer ethClient.Close()
	log.WithField("chainId", client.HexChainID(nodeChainID)).Info("connected to node")

	dial := func(ctx context.Context, rpcURL string) (wallet.ChainClient, *big.Int, error) {
		c, id, err := client.DialEthereum(ctx, rpcURL)
		if err != nil {
			return nil, nil, err
		}
		return c, id, nil
	}
	provider := wallet.NewLocalProvider(cfg.WalletFilePath, passwords, ethClient, nodeChainID, dial)
	defer provider.Lock()

	chain := wallet.ChainParams{
		ChainID:   big.NewInt(cfg.ChainID),
		ChainName: cfg.ChainName,
		RPCURLs:   []string{cfg.RPCURL},
		NativeCurrency: wallet.NativeCurrency{
			Name:     cfg.CurrencyName,
			Symbol:   cfg.CurrencySymbol,
			Decimals: 18,
		},
	}
	if cfg.BlockExplorerURL != "" {
		chain.BlockExplorerURLs = []string{cfg.BlockExplorerURL}
	}
	bridge := wallet.NewBridge(provider, chain)
	session := wallet.NewSession(bridge)
	session.Restore(ctx)
	go func() {
		if err := session.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.WithError(err).Error("wallet watcher stopped")
		}
	}()

	// Services
	markets := market.NewService(bridge, market.Deployment{
		FactoryAddress:     common.HexToAddress(cfg.FactoryAddress),
		MarketplaceAddress: common.HexToAddress(cfg.MarketplaceAddress),
	})
	prices := price.NewService(client.NewCoinGeckoClient(cfg.CoinGeckoURL, cfg.PricePlatform, cfg.HTTPTimeout), cfg.NativeAssetID)
	store := storage.NewService(
		client.NewIPFSShell(cfg.IPFSAPIURL, cfg.HTTPTimeout),
		client.NewGatewayReader(cfg.IPFSGatewayURL, cfg.HTTPTimeout),
		cfg.UploadWorkers,
	)
	contents := content.NewService(markets, store, prices, bridge, cfg.MaxUploadBytes())

	h := handler.New(handler.Deps{
		Session:        session,
		Market:         markets,
		Content:        contents,
		Prices:         prices,
		Storage:        store,
		Passwords:      passwords,
		WalletFilePath: cfg.WalletFilePath,
		KDF:            crypto.DefaultKDF(),
		MaxUploadBytes: cfg.MaxUploadBytes(),
	})

	docs.SwaggerInfo.Host = "localhost:" + cfg.Port

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.SetupRouter(h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("addr", server.Addr).Info("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("failed to shut down server")
	}
}

// promptPassword asks for the wallet password when a terminal is attached.
// Without one the store stays empty and connecting is rejected.
func promptPassword(ctx context.Context, walletPath string, passwords *config.PasswordStore) {
	if walletPath == "" || !term.IsTerminal(int(os.Stdin.Fd())) {
		return
	}

	prompt := "Wallet password: "
	if _, err := crypto.ReadWalletAddress(walletPath); errors.Is(err, crypto.ErrNoWalletFile) {
		prompt = "Password for new wallet: "
	}

	password, err := config.PromptForPassword(prompt)
	if err != nil {
		logger.For(ctx).WithError(err).Warn("wallet password not entered")
		return
	}
	defer clear(password)
	passwords.Set(password)
}
