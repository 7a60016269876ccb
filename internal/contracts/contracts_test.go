package contracts

import (
	"context"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend answers eth_call by packing canned outputs for the called method.
type fakeBackend struct {
	bind.ContractBackend
	abi     abi.ABI
	results map[string][]interface{}
	logs    []types.Log
	lastTo  common.Address
}

func newFakeBackend(t *testing.T, abiJSON string) *fakeBackend {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	require.NoError(t, err)
	return &fakeBackend{abi: parsed, results: map[string][]interface{}{}}
}

func (f *fakeBackend) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x60}, nil
}

func (f *fakeBackend) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	method, err := f.abi.MethodById(msg.Data[:4])
	if err != nil {
		return nil, err
	}
	if msg.To != nil {
		f.lastTo = *msg.To
	}
	return method.Outputs.Pack(f.results[method.Name]...)
}

func (f *fakeBackend) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	return f.logs, nil
}

var (
	factoryAddr = common.HexToAddress("0x00000000000000000000000000000000000000f1")
	tokenAddr   = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	ownerAddr   = common.HexToAddress("0x00000000000000000000000000000000000000bb")
)

func TestFactoryGetCreators(t *testing.T) {
	backend := newFakeBackend(t, CreatorFactoryABI)
	backend.results["getCreators"] = []interface{}{[]CreatorRecord{
		{Id: big.NewInt(1), Name: "Alice", Symbol: "ALC", TokenAddress: tokenAddr, Owner: ownerAddr},
		{Id: big.NewInt(2), Name: "Bob", Symbol: "BOB", TokenAddress: ownerAddr, Owner: tokenAddr},
	}}

	factory, err := NewCreatorFactory(factoryAddr, backend)
	require.NoError(t, err)

	creators, err := factory.GetCreators(&bind.CallOpts{Context: context.Background()})
	require.NoError(t, err)
	require.Len(t, creators, 2)
	assert.Equal(t, int64(1), creators[0].Id.Int64())
	assert.Equal(t, "Alice", creators[0].Name)
	assert.Equal(t, tokenAddr, creators[0].TokenAddress)
	assert.Equal(t, "BOB", creators[1].Symbol)
	assert.Equal(t, factoryAddr, backend.lastTo)
}

func TestFactoryGetCreatorInfo(t *testing.T) {
	backend := newFakeBackend(t, CreatorFactoryABI)
	backend.results["getCreatorInfo"] = []interface{}{
		CreatorRecord{Id: big.NewInt(7), Name: "Carol", Symbol: "CRL", TokenAddress: tokenAddr, Owner: ownerAddr},
	}

	factory, err := NewCreatorFactory(factoryAddr, backend)
	require.NoError(t, err)

	info, err := factory.GetCreatorInfo(&bind.CallOpts{}, big.NewInt(7))
	require.NoError(t, err)
	assert.Equal(t, "Carol", info.Name)
	assert.Equal(t, ownerAddr, info.Owner)
}

func TestFactoryCreatorTokenAddress(t *testing.T) {
	backend := newFakeBackend(t, CreatorFactoryABI)
	backend.results["creatorTokenAddress"] = []interface{}{tokenAddr}

	factory, err := NewCreatorFactory(factoryAddr, backend)
	require.NoError(t, err)

	addr, err := factory.CreatorTokenAddress(&bind.CallOpts{}, big.NewInt(7))
	require.NoError(t, err)
	assert.Equal(t, tokenAddr, addr)
}

func TestTokenReads(t *testing.T) {
	backend := newFakeBackend(t, CreatorTokenABI)
	backend.results["balanceOf"] = []interface{}{big.NewInt(42)}
	backend.results["name"] = []interface{}{"Alice Token"}
	backend.results["owner"] = []interface{}{ownerAddr}

	token, err := NewCreatorToken(tokenAddr, backend)
	require.NoError(t, err)

	bal, err := token.BalanceOf(&bind.CallOpts{}, ownerAddr)
	require.NoError(t, err)
	assert.Equal(t, int64(42), bal.Int64())

	name, err := token.Name(&bind.CallOpts{})
	require.NoError(t, err)
	assert.Equal(t, "Alice Token", name)

	owner, err := token.Owner(&bind.CallOpts{})
	require.NoError(t, err)
	assert.Equal(t, ownerAddr, owner)
}

func TestMarketplaceFilterTokensPurchased(t *testing.T) {
	backend := newFakeBackend(t, CreatorMarketplaceABI)
	event := backend.abi.Events["TokensPurchased"]

	data, err := event.Inputs.NonIndexed().Pack(big.NewInt(5), big.NewInt(500))
	require.NoError(t, err)
	backend.logs = []types.Log{{
		Address: factoryAddr,
		Topics: []common.Hash{
			event.ID,
			common.BigToHash(big.NewInt(3)),
			common.BytesToHash(ownerAddr.Bytes()),
		},
		Data:        data,
		BlockNumber: 99,
	}}

	market, err := NewCreatorMarketplace(factoryAddr, backend)
	require.NoError(t, err)

	events, err := market.FilterTokensPurchased(&bind.FilterOpts{Start: 0}, []*big.Int{big.NewInt(3)}, nil)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int64(3), events[0].CreatorId.Int64())
	assert.Equal(t, ownerAddr, events[0].Buyer)
	assert.Equal(t, int64(5), events[0].Amount.Int64())
	assert.Equal(t, int64(500), events[0].Cost.Int64())
	assert.Equal(t, uint64(99), events[0].Raw.BlockNumber)
}

func TestBuyTokensIsPayable(t *testing.T) {
	parsed, err := abi.JSON(strings.NewReader(CreatorMarketplaceABI))
	require.NoError(t, err)
	assert.True(t, parsed.Methods["buyTokens"].IsPayable())
	assert.False(t, parsed.Methods["setContentCID"].IsPayable())
}

func TestParsedABIIsCached(t *testing.T) {
	first, err := parsedABI(CreatorTokenABI)
	require.NoError(t, err)
	second, err := parsedABI(CreatorTokenABI)
	require.NoError(t, err)
	assert.Same(t, first, second)

	market, err := parsedABI(CreatorMarketplaceABI)
	require.NoError(t, err)
	assert.NotSame(t, first, market)
	assert.Contains(t, market.Methods, "buyTokens")

	_, err = parsedABI("not json")
	assert.Error(t, err)
	_, cached := abiParsed["not json"]
	assert.False(t, cached)
}
