package wallet

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/event"
	"github.com/sirupsen/logrus"

	"github.com/AlexZinkM/creatorweb3/internal/apperr"
	"github.com/AlexZinkM/creatorweb3/internal/crypto"
	"github.com/AlexZinkM/creatorweb3/internal/logger"
)

// PasswordSource supplies the wallet file password.
// An error means the user declined.
type PasswordSource interface {
	Password(ctx context.Context) ([]byte, error)
}

// Dialer opens a node connection and reports its chain id
type Dialer func(ctx context.Context, rpcURL string) (ChainClient, *big.Int, error)

// LocalProvider is a Provider backed by an encrypted wallet file and a node connection
type LocalProvider struct {
	walletPath string
	passwords  PasswordSource
	dial       Dialer

	mu      sync.RWMutex
	client  ChainClient
	chainID *big.Int
	chains  map[string]ChainParams
	key     *ecdsa.PrivateKey

	accountsFeed event.Feed
	chainFeed    event.Feed
}

// NewLocalProvider creates a provider over the wallet file at walletPath, connected
// to client on chainID. dial is used for chains added or switched to later.
func NewLocalProvider(walletPath string, passwords PasswordSource, client ChainClient, chainID *big.Int, dial Dialer) *LocalProvider {
	return &LocalProvider{
		walletPath: walletPath,
		passwords:  passwords,
		dial:       dial,
		client:     client,
		chainID:    new(big.Int).Set(chainID),
		chains:     map[string]ChainParams{},
	}
}

// RequestAccounts unlocks the wallet file
func (p *LocalProvider) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	if accounts := p.accounts(); len(accounts) > 0 {
		return accounts, nil
	}
	if p.walletPath == "" {
		return nil, apperr.Wrap(apperr.KindProviderMissing, "no wallet file configured", crypto.ErrNoWalletFile)
	}

	// Ask for password
	password, err := p.passwords.Password(ctx)
	if err != nil {
		logger.For(ctx).WithError(err).Info("password request declined")
		return nil, &ProviderError{Code: CodeUserRejected, Message: "user rejected the request"}
	}
	defer clear(password)

	// Decrypt wallet file
	_, data, err := crypto.DecryptWallet(p.walletPath, password)
	if err != nil {
		switch {
		case errors.Is(err, crypto.ErrInvalidPassword):
			return nil, &ProviderError{Code: CodeUserRejected, Message: "invalid password"}
		case errors.Is(err, crypto.ErrNoWalletFile):
			return nil, apperr.Wrap(apperr.KindProviderMissing, "wallet file not found", err)
		}
		return nil, fmt.Errorf("failed to decrypt wallet: %w", err)
	}
	defer clear(data.PrivateKey)

	key, err := ethcrypto.ToECDSA(data.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load private key: %w", err)
	}

	p.mu.Lock()
	p.key = key
	p.mu.Unlock()

	accounts := []common.Address{ethcrypto.PubkeyToAddress(key.PublicKey)}
	logger.For(ctx).WithFields(logrus.Fields{"address": accounts[0].Hex()}).Info("wallet unlocked")
	p.accountsFeed.Send(accounts)
	return accounts, nil
}

// Accounts returns the unlocked account, if any
func (p *LocalProvider) Accounts(ctx context.Context) ([]common.Address, error) {
	return p.accounts(), nil
}

func (p *LocalProvider) accounts() []common.Address {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.key == nil {
		return []common.Address{}
	}
	return []common.Address{ethcrypto.PubkeyToAddress(p.key.PublicKey)}
}

// ChainID returns the current chain id
func (p *LocalProvider) ChainID(ctx context.Context) (*big.Int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return new(big.Int).Set(p.chainID), nil
}

// SwitchChain selects a previously added chain
func (p *LocalProvider) SwitchChain(ctx context.Context, chainID *big.Int) error {
	p.mu.RLock()
	current := p.chainID.Cmp(chainID) == 0
	params, known := p.chains[chainID.String()]
	p.mu.RUnlock()

	if current {
		return nil
	}
	if !known {
		return &ProviderError{Code: CodeUnrecognizedChain, Message: fmt.Sprintf("unrecognized chain id %s", chainID)}
	}
	return p.connect(ctx, params)
}

// AddChain registers a chain and switches to it.
// The node behind the first RPC URL must report params.ChainID.
func (p *LocalProvider) AddChain(ctx context.Context, params ChainParams) error {
	if params.ChainID == nil || len(params.RPCURLs) == 0 {
		return &ProviderError{Code: CodeInvalidParams, Message: "chain id and rpc url are required"}
	}
	if err := p.connect(ctx, params); err != nil {
		return err
	}

	p.mu.Lock()
	p.chains[params.ChainID.String()] = params
	p.mu.Unlock()
	return nil
}

func (p *LocalProvider) connect(ctx context.Context, params ChainParams) error {
	if p.dial == nil {
		return &ProviderError{Code: CodeUnrecognizedChain, Message: "chain switching is not supported"}
	}
	if len(params.RPCURLs) == 0 {
		return &ProviderError{Code: CodeInvalidParams, Message: "rpc url is required"}
	}

	// Dial and verify chain
	client, chainID, err := p.dial(ctx, params.RPCURLs[0])
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", params.ChainName, err)
	}
	if chainID.Cmp(params.ChainID) != 0 {
		client.Close()
		return &ProviderError{
			Code:    CodeInvalidParams,
			Message: fmt.Sprintf("rpc endpoint reports chain %s, expected %s", chainID, params.ChainID),
		}
	}

	p.mu.Lock()
	old := p.client
	p.client = client
	p.chainID = new(big.Int).Set(chainID)
	p.mu.Unlock()

	if old != nil {
		old.Close()
	}

	logger.For(ctx).WithFields(logrus.Fields{"chainId": chainID.String(), "chain": params.ChainName}).Info("switched chain")
	p.chainFeed.Send(new(big.Int).Set(chainID))
	return nil
}

// BalanceAt returns the latest native balance of account
func (p *LocalProvider) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	return p.Backend().BalanceAt(ctx, account, nil)
}

// Backend returns the current node connection
func (p *LocalProvider) Backend() ChainClient {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.client
}

// Transactor returns a signer for the unlocked account
func (p *LocalProvider) Transactor(ctx context.Context, account common.Address) (*bind.TransactOpts, error) {
	p.mu.RLock()
	key := p.key
	chainID := new(big.Int).Set(p.chainID)
	p.mu.RUnlock()

	if key == nil || ethcrypto.PubkeyToAddress(key.PublicKey) != account {
		return nil, &ProviderError{Code: CodeUnauthorized, Message: "account is not authorized"}
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx
	return opts, nil
}

// Lock forgets the unlocked key and notifies subscribers with no accounts
func (p *LocalProvider) Lock() {
	p.mu.Lock()
	p.key = nil
	p.mu.Unlock()
	p.accountsFeed.Send([]common.Address{})
}

// SubscribeAccountsChanged delivers the authorized accounts whenever they change
func (p *LocalProvider) SubscribeAccountsChanged(ch chan<- []common.Address) event.Subscription {
	return p.accountsFeed.Subscribe(ch)
}

// SubscribeChainChanged delivers the new chain id whenever the chain changes
func (p *LocalProvider) SubscribeChainChanged(ch chan<- *big.Int) event.Subscription {
	return p.chainFeed.Subscribe(ch)
}
