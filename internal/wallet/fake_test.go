package wallet

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
)

var (
	testAccount  = common.HexToAddress("0x1111111111111111111111111111111111111111")
	otherAccount = common.HexToAddress("0x2222222222222222222222222222222222222222")
	testChain    = ChainParams{
		ChainID:        big.NewInt(31337),
		ChainName:      "Localhost",
		RPCURLs:        []string{"http://127.0.0.1:8545"},
		NativeCurrency: NativeCurrency{Name: "Ether", Symbol: "ETH", Decimals: 18},
	}
)

// fakeProvider is an in-memory Provider
type fakeProvider struct {
	mu         sync.Mutex
	accounts   []common.Address
	requestErr error
	chainID    *big.Int
	switchErr  error
	addErr     error
	switched   []*big.Int
	added      []ChainParams
	balance    *big.Int
	balanceErr error
	// balanceGate, when set, blocks BalanceAt until it is closed
	balanceGate   chan struct{}
	balanceCalled chan struct{}

	accountsFeed event.Feed
	chainFeed    event.Feed
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		accounts: []common.Address{testAccount},
		chainID:  new(big.Int).Set(testChain.ChainID),
		balance:  big.NewInt(1500000000000000000),
	}
}

func (f *fakeProvider) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.requestErr != nil {
		return nil, f.requestErr
	}
	return f.accounts, nil
}

func (f *fakeProvider) Accounts(ctx context.Context) ([]common.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.accounts, nil
}

func (f *fakeProvider) ChainID(ctx context.Context) (*big.Int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return new(big.Int).Set(f.chainID), nil
}

func (f *fakeProvider) SwitchChain(ctx context.Context, chainID *big.Int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.switched = append(f.switched, chainID)
	if f.switchErr != nil {
		return f.switchErr
	}
	f.chainID = new(big.Int).Set(chainID)
	return nil
}

func (f *fakeProvider) AddChain(ctx context.Context, params ChainParams) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.added = append(f.added, params)
	if f.addErr != nil {
		return f.addErr
	}
	f.chainID = new(big.Int).Set(params.ChainID)
	return nil
}

func (f *fakeProvider) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	if f.balanceCalled != nil {
		f.balanceCalled <- struct{}{}
	}
	if f.balanceGate != nil {
		<-f.balanceGate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.balance, f.balanceErr
}

func (f *fakeProvider) Backend() ChainClient { return nil }

func (f *fakeProvider) Transactor(ctx context.Context, account common.Address) (*bind.TransactOpts, error) {
	return &bind.TransactOpts{From: account, Context: ctx}, nil
}

func (f *fakeProvider) SubscribeAccountsChanged(ch chan<- []common.Address) event.Subscription {
	return f.accountsFeed.Subscribe(ch)
}

func (f *fakeProvider) SubscribeChainChanged(ch chan<- *big.Int) event.Subscription {
	return f.chainFeed.Subscribe(ch)
}

// fakeChainClient answers balance and chain id queries
type fakeChainClient struct {
	ChainClient
	chainID *big.Int
	balance *big.Int
	closed  bool
}

func (c *fakeChainClient) ChainID(ctx context.Context) (*big.Int, error) { return c.chainID, nil }

func (c *fakeChainClient) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
	return c.balance, nil
}

func (c *fakeChainClient) Close() { c.closed = true }

// switchingProvider emits chainChanged after every successful switch, like a
// browser wallet does.
type switchingProvider struct {
	*fakeProvider
}

func (p switchingProvider) SwitchChain(ctx context.Context, chainID *big.Int) error {
	if err := p.fakeProvider.SwitchChain(ctx, chainID); err != nil {
		return err
	}
	p.chainFeed.Send(new(big.Int).Set(chainID))
	return nil
}
