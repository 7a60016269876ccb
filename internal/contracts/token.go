package contracts

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// CreatorToken is a binding for a creator's ERC-20 token.
type CreatorToken struct {
	abi      abi.ABI
	address  common.Address
	contract *bind.BoundContract
}

// NewCreatorToken binds the token deployed at address.
func NewCreatorToken(address common.Address, backend bind.ContractBackend) (*CreatorToken, error) {
	parsed, bound, err := bindContract(address, CreatorTokenABI, backend)
	if err != nil {
		return nil, err
	}
	return &CreatorToken{abi: parsed, address: address, contract: bound}, nil
}

func (t *CreatorToken) Address() common.Address { return t.address }

func (t *CreatorToken) BalanceOf(opts *bind.CallOpts, owner common.Address) (*big.Int, error) {
	return call[*big.Int](t.contract, opts, "balanceOf", owner)
}

func (t *CreatorToken) Name(opts *bind.CallOpts) (string, error) {
	return call[string](t.contract, opts, "name")
}

func (t *CreatorToken) Symbol(opts *bind.CallOpts) (string, error) {
	return call[string](t.contract, opts, "symbol")
}

func (t *CreatorToken) TotalSupply(opts *bind.CallOpts) (*big.Int, error) {
	return call[*big.Int](t.contract, opts, "totalSupply")
}

func (t *CreatorToken) Owner(opts *bind.CallOpts) (common.Address, error) {
	return call[common.Address](t.contract, opts, "owner")
}

func (t *CreatorToken) Transfer(opts *bind.TransactOpts, to common.Address, amount *big.Int) (*types.Transaction, error) {
	return t.contract.Transact(opts, "transfer", to, amount)
}
