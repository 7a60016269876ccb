package contracts

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// CreatorRecord mirrors the factory's creator tuple. Field order and names
// must match the ABI components.
type CreatorRecord struct {
	Id           *big.Int
	Name         string
	Symbol       string
	TokenAddress common.Address
	Owner        common.Address
}

// CreatorFactory is a binding for the deployed CreatorFactory contract.
type CreatorFactory struct {
	abi      abi.ABI
	address  common.Address
	contract *bind.BoundContract
}

// NewCreatorFactory binds the factory deployed at address.
func NewCreatorFactory(address common.Address, backend bind.ContractBackend) (*CreatorFactory, error) {
	parsed, bound, err := bindContract(address, CreatorFactoryABI, backend)
	if err != nil {
		return nil, err
	}
	return &CreatorFactory{abi: parsed, address: address, contract: bound}, nil
}

// Address returns the contract address.
func (f *CreatorFactory) Address() common.Address { return f.address }

// GetCreators returns every registered creator.
func (f *CreatorFactory) GetCreators(opts *bind.CallOpts) ([]CreatorRecord, error) {
	return call[[]CreatorRecord](f.contract, opts, "getCreators")
}

// GetCreatorInfo returns a single creator.
func (f *CreatorFactory) GetCreatorInfo(opts *bind.CallOpts, creatorID *big.Int) (CreatorRecord, error) {
	return call[CreatorRecord](f.contract, opts, "getCreatorInfo", creatorID)
}

// CreatorTokenAddress returns the token contract of a creator.
func (f *CreatorFactory) CreatorTokenAddress(opts *bind.CallOpts, creatorID *big.Int) (common.Address, error) {
	return call[common.Address](f.contract, opts, "creatorTokenAddress", creatorID)
}

// CreateCreatorToken deploys a new creator token owned by the sender.
func (f *CreatorFactory) CreateCreatorToken(opts *bind.TransactOpts, name, symbol string) (*types.Transaction, error) {
	return f.contract.Transact(opts, "createCreatorToken", name, symbol)
}
