package market

import (
	"context"
	"errors"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/AlexZinkM/creatorweb3/internal/apperr"
	"github.com/AlexZinkM/creatorweb3/internal/contracts"
	"github.com/AlexZinkM/creatorweb3/internal/wallet"
)

var (
	userAddr  = common.HexToAddress("0x1111111111111111111111111111111111111111")
	ownerAddr = common.HexToAddress("0x2222222222222222222222222222222222222222")
	tokenAddr = common.HexToAddress("0x3333333333333333333333333333333333333333")
)

func ether(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(s)
	}
	return n.Mul(n, big.NewInt(1e18))
}

type fakeChain struct {
	wallet.ChainClient
	receipts map[common.Hash]*types.Receipt
}

func (c *fakeChain) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	r, ok := c.receipts[hash]
	if !ok {
		return nil, ethereum.NotFound
	}
	return r, nil
}

type fakeWallet struct {
	address     *common.Address
	chain       *fakeChain
	backendErr  error
	transactErr error
}

func (w *fakeWallet) Address() (common.Address, bool) {
	if w.address == nil {
		return common.Address{}, false
	}
	return *w.address, true
}

func (w *fakeWallet) Backend() (wallet.ChainClient, error) {
	if w.backendErr != nil {
		return nil, w.backendErr
	}
	return w.chain, nil
}

func (w *fakeWallet) Transactor(ctx context.Context) (*bind.TransactOpts, error) {
	if w.transactErr != nil {
		return nil, w.transactErr
	}
	if w.address == nil {
		return nil, apperr.New(apperr.KindNotConnected, "wallet not connected")
	}
	return &bind.TransactOpts{From: *w.address, Context: ctx}, nil
}

type fakeFactory struct {
	creators  []contracts.CreatorRecord
	err       error
	created   []string
	createErr error
}

func (f *fakeFactory) GetCreators(opts *bind.CallOpts) ([]contracts.CreatorRecord, error) {
	return f.creators, f.err
}

func (f *fakeFactory) GetCreatorInfo(opts *bind.CallOpts, creatorID *big.Int) (contracts.CreatorRecord, error) {
	if f.err != nil {
		return contracts.CreatorRecord{}, f.err
	}
	for _, c := range f.creators {
		if c.Id.Cmp(creatorID) == 0 {
			return c, nil
		}
	}
	return contracts.CreatorRecord{}, errors.New("execution reverted: creator does not exist")
}

func (f *fakeFactory) CreateCreatorToken(opts *bind.TransactOpts, name, symbol string) (*types.Transaction, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, name+":"+symbol)
	return types.NewTx(&types.LegacyTx{Nonce: 2}), nil
}

type fakeMarketplace struct {
	mu         sync.Mutex
	price      *big.Int
	minimum    *big.Int
	minimumErr error
	cid        string
	buyErr     error
	paid       *big.Int
	bought     *big.Int
	events     []*contracts.TokensPurchased
	filterOpts *bind.FilterOpts
}

func (m *fakeMarketplace) BuyTokens(opts *bind.TransactOpts, creatorID, amount *big.Int) (*types.Transaction, error) {
	if m.buyErr != nil {
		return nil, m.buyErr
	}
	m.paid = opts.Value
	m.bought = amount
	return types.NewTx(&types.LegacyTx{Nonce: 1, Value: opts.Value}), nil
}

func (m *fakeMarketplace) GetMinimumTokensRequired(opts *bind.CallOpts, creatorID *big.Int) (*big.Int, error) {
	return m.minimum, m.minimumErr
}

func (m *fakeMarketplace) GetContentCID(opts *bind.CallOpts, creatorID *big.Int) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cid, nil
}

func (m *fakeMarketplace) SetContentCID(opts *bind.TransactOpts, creatorID *big.Int, cid string) (*types.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cid = cid
	return types.NewTx(&types.LegacyTx{Nonce: 3}), nil
}

func (m *fakeMarketplace) GetTokenPrice(opts *bind.CallOpts, creatorID *big.Int) (*big.Int, error) {
	return m.price, nil
}

func (m *fakeMarketplace) FilterTokensPurchased(opts *bind.FilterOpts, creatorIDs []*big.Int, buyers []common.Address) ([]*contracts.TokensPurchased, error) {
	m.filterOpts = opts
	var out []*contracts.TokensPurchased
	for _, ev := range m.events {
		if len(buyers) > 0 && ev.Buyer != buyers[0] {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

type fakeToken struct {
	name     string
	symbol   string
	supply   *big.Int
	balances map[common.Address]*big.Int
}

func (t *fakeToken) BalanceOf(opts *bind.CallOpts, owner common.Address) (*big.Int, error) {
	if b, ok := t.balances[owner]; ok {
		return b, nil
	}
	return new(big.Int), nil
}

func (t *fakeToken) Name(opts *bind.CallOpts) (string, error) { return t.name, nil }

func (t *fakeToken) Symbol(opts *bind.CallOpts) (string, error) { return t.symbol, nil }

func (t *fakeToken) TotalSupply(opts *bind.CallOpts) (*big.Int, error) { return t.supply, nil }

type fakeBinder struct {
	factory     *fakeFactory
	marketplace *fakeMarketplace
	token       *fakeToken
}

func (b *fakeBinder) Factory(backend bind.ContractBackend) (Factory, error) { return b.factory, nil }

func (b *fakeBinder) Marketplace(backend bind.ContractBackend) (Marketplace, error) {
	return b.marketplace, nil
}

func (b *fakeBinder) Token(address common.Address, backend bind.ContractBackend) (Token, error) {
	if address != tokenAddr {
		return nil, errors.New("no contract code at given address")
	}
	return b.token, nil
}

func newTestService() (*Service, *fakeWallet, *fakeBinder) {
	addr := userAddr
	w := &fakeWallet{address: &addr, chain: &fakeChain{receipts: map[common.Hash]*types.Receipt{}}}
	b := &fakeBinder{
		factory: &fakeFactory{creators: []contracts.CreatorRecord{
			{Id: big.NewInt(1), Name: "Alice", Symbol: "ALC", TokenAddress: tokenAddr, Owner: ownerAddr},
			{Id: big.NewInt(2), Name: "Bob", Symbol: "BOB", TokenAddress: tokenAddr, Owner: userAddr},
		}},
		marketplace: &fakeMarketplace{price: big.NewInt(1e16), minimum: ether("10")},
		token: &fakeToken{
			name:     "Alice Token",
			symbol:   "ALC",
			supply:   ether("1000000"),
			balances: map[common.Address]*big.Int{},
		},
	}
	return NewService(w, b), w, b
}
