package wallet

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"github.com/sirupsen/logrus"

	"github.com/AlexZinkM/creatorweb3/internal/apperr"
	"github.com/AlexZinkM/creatorweb3/internal/logger"
)

// Bridge is the single point of contact with the wallet provider.
// It tracks the active account and keeps the application on the configured chain.
type Bridge struct {
	provider Provider
	chain    ChainParams

	mu      sync.Mutex
	account *common.Address
	scope   *event.SubscriptionScope
}

// NewBridge creates a bridge. provider may be nil when no wallet is installed;
// every provider-backed operation then fails with ProviderMissing.
func NewBridge(provider Provider, chain ChainParams) *Bridge {
	return &Bridge{
		provider: provider,
		chain:    chain,
		scope:    new(event.SubscriptionScope),
	}
}

// Chain returns the configured chain parameters
func (b *Bridge) Chain() ChainParams { return b.chain }

// Connect requests account access, moves the provider to the configured chain
// and returns the connected address.
func (b *Bridge) Connect(ctx context.Context) (common.Address, error) {
	if b.provider == nil {
		return common.Address{}, apperr.New(apperr.KindProviderMissing, "no wallet provider found")
	}

	accounts, err := b.provider.RequestAccounts(ctx)
	if err != nil {
		return common.Address{}, providerError("failed to connect wallet", err)
	}
	if len(accounts) == 0 {
		return common.Address{}, apperr.New(apperr.KindNotConnected, "no accounts authorized")
	}

	if err := b.ensureChain(ctx); err != nil {
		return common.Address{}, err
	}

	b.adopt(accounts[0])
	logger.For(ctx).WithFields(logrus.Fields{"address": accounts[0].Hex()}).Info("wallet connected")
	return accounts[0], nil
}

// ensureChain switches to the configured chain, adding it to the provider when unknown
func (b *Bridge) ensureChain(ctx context.Context) error {
	current, err := b.provider.ChainID(ctx)
	if err != nil {
		return providerError("failed to read chain id", err)
	}
	if current.Cmp(b.chain.ChainID) == 0 {
		return nil
	}

	log := logger.For(ctx).WithFields(logrus.Fields{"current": current.String(), "expected": b.chain.ChainID.String()})
	log.Warn("network mismatch, switching")

	err = b.provider.SwitchChain(ctx, b.chain.ChainID)
	if err == nil {
		return nil
	}

	switch ErrorCodeOf(err) {
	case CodeUnrecognizedChain:
		if addErr := b.provider.AddChain(ctx, b.chain); addErr != nil {
			log.WithError(addErr).Error("failed to add network")
			if ErrorCodeOf(addErr) == CodeUserRejected {
				return apperr.Wrap(apperr.KindUserRejected, "network add rejected", addErr)
			}
			return apperr.Wrap(apperr.KindNetworkSwitchFailed, "failed to add network", addErr)
		}
		return nil
	case CodeUserRejected:
		return apperr.Wrap(apperr.KindUserRejected, "network switch rejected", err)
	}
	log.WithError(err).Error("failed to switch network")
	return apperr.Wrap(apperr.KindNetworkSwitchFailed, "failed to switch network", err)
}

func (b *Bridge) adopt(account common.Address) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.account = &account
}

// Address returns the active account
func (b *Bridge) Address() (common.Address, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.account == nil {
		return common.Address{}, false
	}
	return *b.account, true
}

// Balance returns the native balance of the active account in wei
func (b *Bridge) Balance(ctx context.Context) (*big.Int, error) {
	account, ok := b.Address()
	if !ok {
		return nil, apperr.New(apperr.KindNotConnected, "wallet not connected")
	}
	if b.provider == nil {
		return nil, apperr.New(apperr.KindProviderMissing, "no wallet provider found")
	}

	balance, err := b.provider.BalanceAt(ctx, account)
	if err != nil {
		return nil, apperr.RemoteCallFailed("failed to get balance", err)
	}
	return balance, nil
}

// IsConnected reports whether the provider has at least one authorized account
func (b *Bridge) IsConnected(ctx context.Context) bool {
	if b.provider == nil {
		return false
	}
	accounts, err := b.provider.Accounts(ctx)
	if err != nil {
		logger.For(ctx).WithError(err).Warn("failed to check wallet connection")
		return false
	}
	return len(accounts) > 0
}

// Disconnect forgets the active account. Providers have no revocation call.
func (b *Bridge) Disconnect() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.account = nil
}

// SubscribeAccountsChanged registers ch for account changes until
// the subscription is cancelled or RemoveAllListeners is called.
func (b *Bridge) SubscribeAccountsChanged(ch chan<- []common.Address) event.Subscription {
	if b.provider == nil {
		return b.track(idleSubscription())
	}
	return b.track(b.provider.SubscribeAccountsChanged(ch))
}

// SubscribeChainChanged registers ch for chain changes until
// the subscription is cancelled or RemoveAllListeners is called.
func (b *Bridge) SubscribeChainChanged(ch chan<- *big.Int) event.Subscription {
	if b.provider == nil {
		return b.track(idleSubscription())
	}
	return b.track(b.provider.SubscribeChainChanged(ch))
}

func (b *Bridge) track(sub event.Subscription) event.Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.scope.Track(sub)
}

// RemoveAllListeners cancels every subscription made through the bridge.
// Subscribing afterwards works again.
func (b *Bridge) RemoveAllListeners() {
	b.mu.Lock()
	scope := b.scope
	b.scope = new(event.SubscriptionScope)
	b.mu.Unlock()
	scope.Close()
}

// Backend returns the read handle of the provider
func (b *Bridge) Backend() (ChainClient, error) {
	if b.provider == nil {
		return nil, apperr.New(apperr.KindProviderMissing, "no wallet provider found")
	}
	return b.provider.Backend(), nil
}

// Transactor returns a signer for the active account
func (b *Bridge) Transactor(ctx context.Context) (*bind.TransactOpts, error) {
	account, ok := b.Address()
	if !ok {
		return nil, apperr.New(apperr.KindNotConnected, "wallet not connected")
	}
	if b.provider == nil {
		return nil, apperr.New(apperr.KindProviderMissing, "no wallet provider found")
	}

	opts, err := b.provider.Transactor(ctx, account)
	if err != nil {
		return nil, providerError("failed to get signer", err)
	}
	return opts, nil
}

// providerError classifies a provider failure
func providerError(message string, err error) error {
	switch ErrorCodeOf(err) {
	case CodeUserRejected:
		return apperr.Wrap(apperr.KindUserRejected, message, err)
	case CodeUnauthorized:
		return apperr.Wrap(apperr.KindNotConnected, message, err)
	}
	return apperr.RemoteCallFailed(message, err)
}

// idleSubscription never delivers and ends when unsubscribed
func idleSubscription() event.Subscription {
	return event.NewSubscription(func(quit <-chan struct{}) error {
		<-quit
		return nil
	})
}
