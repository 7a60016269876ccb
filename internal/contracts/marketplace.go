package contracts

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

const tokensPurchasedEvent = "TokensPurchased"

// TokensPurchased is a decoded TokensPurchased log.
type TokensPurchased struct {
	CreatorId *big.Int
	Buyer     common.Address
	Amount    *big.Int
	Cost      *big.Int
	Raw       types.Log
}

// CreatorMarketplace is a binding for the deployed CreatorMarketplace contract.
type CreatorMarketplace struct {
	abi      abi.ABI
	address  common.Address
	contract *bind.BoundContract
}

// NewCreatorMarketplace binds the marketplace deployed at address.
func NewCreatorMarketplace(address common.Address, backend bind.ContractBackend) (*CreatorMarketplace, error) {
	parsed, bound, err := bindContract(address, CreatorMarketplaceABI, backend)
	if err != nil {
		return nil, err
	}
	return &CreatorMarketplace{abi: parsed, address: address, contract: bound}, nil
}

// Address returns the contract address.
func (m *CreatorMarketplace) Address() common.Address { return m.address }

// BuyTokens purchases amount base units of a creator token.
// opts.Value must carry the total cost.
func (m *CreatorMarketplace) BuyTokens(opts *bind.TransactOpts, creatorID, amount *big.Int) (*types.Transaction, error) {
	return m.contract.Transact(opts, "buyTokens", creatorID, amount)
}

// GetMinimumTokensRequired returns the holding threshold for content access.
func (m *CreatorMarketplace) GetMinimumTokensRequired(opts *bind.CallOpts, creatorID *big.Int) (*big.Int, error) {
	return call[*big.Int](m.contract, opts, "getMinimumTokensRequired", creatorID)
}

// GetContentCID returns the content reference stored for a creator.
func (m *CreatorMarketplace) GetContentCID(opts *bind.CallOpts, creatorID *big.Int) (string, error) {
	return call[string](m.contract, opts, "getContentCID", creatorID)
}

// SetContentCID stores a content reference; only the creator owner may call it.
func (m *CreatorMarketplace) SetContentCID(opts *bind.TransactOpts, creatorID *big.Int, cid string) (*types.Transaction, error) {
	return m.contract.Transact(opts, "setContentCID", creatorID, cid)
}

// GetTokenPrice returns the price of one whole token in wei.
func (m *CreatorMarketplace) GetTokenPrice(opts *bind.CallOpts, creatorID *big.Int) (*big.Int, error) {
	return call[*big.Int](m.contract, opts, "getTokenPrice", creatorID)
}

// FilterTokensPurchased returns the TokensPurchased logs matching the given
// creators and buyers; empty filters match everything.
func (m *CreatorMarketplace) FilterTokensPurchased(opts *bind.FilterOpts, creatorIDs []*big.Int, buyers []common.Address) ([]*TokensPurchased, error) {
	var creatorRule []interface{}
	for _, id := range creatorIDs {
		creatorRule = append(creatorRule, id)
	}
	var buyerRule []interface{}
	for _, buyer := range buyers {
		buyerRule = append(buyerRule, buyer)
	}

	logs, sub, err := m.contract.FilterLogs(opts, tokensPurchasedEvent, creatorRule, buyerRule)
	if err != nil {
		return nil, err
	}
	defer sub.Unsubscribe()

	var events []*TokensPurchased
	for {
		select {
		case log := <-logs:
			ev, err := m.ParseTokensPurchased(log)
			if err != nil {
				return nil, err
			}
			events = append(events, ev)
		case err := <-sub.Err():
			if err != nil {
				return nil, err
			}
			// producer finished; collect what is still buffered
			for {
				select {
				case log := <-logs:
					ev, err := m.ParseTokensPurchased(log)
					if err != nil {
						return nil, err
					}
					events = append(events, ev)
				default:
					return events, nil
				}
			}
		}
	}
}

// ParseTokensPurchased decodes a single TokensPurchased log.
func (m *CreatorMarketplace) ParseTokensPurchased(log types.Log) (*TokensPurchased, error) {
	ev := new(TokensPurchased)
	if err := m.contract.UnpackLog(ev, tokensPurchasedEvent, log); err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", tokensPurchasedEvent, err)
	}
	ev.Raw = log
	return ev, nil
}
