package market

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/AlexZinkM/creatorweb3/internal/contracts"
)

// Factory is the creator registry contract
type Factory interface {
	GetCreators(opts *bind.CallOpts) ([]contracts.CreatorRecord, error)
	GetCreatorInfo(opts *bind.CallOpts, creatorID *big.Int) (contracts.CreatorRecord, error)
	CreateCreatorToken(opts *bind.TransactOpts, name, symbol string) (*types.Transaction, error)
}

// Marketplace is the token sale and content registry contract
type Marketplace interface {
	BuyTokens(opts *bind.TransactOpts, creatorID, amount *big.Int) (*types.Transaction, error)
	GetMinimumTokensRequired(opts *bind.CallOpts, creatorID *big.Int) (*big.Int, error)
	GetContentCID(opts *bind.CallOpts, creatorID *big.Int) (string, error)
	SetContentCID(opts *bind.TransactOpts, creatorID *big.Int, cid string) (*types.Transaction, error)
	GetTokenPrice(opts *bind.CallOpts, creatorID *big.Int) (*big.Int, error)
	FilterTokensPurchased(opts *bind.FilterOpts, creatorIDs []*big.Int, buyers []common.Address) ([]*contracts.TokensPurchased, error)
}

// Token is a creator ERC-20 token
type Token interface {
	BalanceOf(opts *bind.CallOpts, owner common.Address) (*big.Int, error)
	Name(opts *bind.CallOpts) (string, error)
	Symbol(opts *bind.CallOpts) (string, error)
	TotalSupply(opts *bind.CallOpts) (*big.Int, error)
}

// Binder binds contract handles to a backend
type Binder interface {
	Factory(backend bind.ContractBackend) (Factory, error)
	Marketplace(backend bind.ContractBackend) (Marketplace, error)
	Token(address common.Address, backend bind.ContractBackend) (Token, error)
}

// Deployment holds the addresses of the deployed factory and marketplace
type Deployment struct {
	FactoryAddress     common.Address
	MarketplaceAddress common.Address
}

// Factory binds the deployed factory
func (d Deployment) Factory(backend bind.ContractBackend) (Factory, error) {
	return contracts.NewCreatorFactory(d.FactoryAddress, backend)
}

// Marketplace binds the deployed marketplace
func (d Deployment) Marketplace(backend bind.ContractBackend) (Marketplace, error) {
	return contracts.NewCreatorMarketplace(d.MarketplaceAddress, backend)
}

// Token binds a creator token
func (d Deployment) Token(address common.Address, backend bind.ContractBackend) (Token, error) {
	return contracts.NewCreatorToken(address, backend)
}
