// Package wallet connects the application to a wallet provider and owns the
// wallet session state.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"github.com/ethereum/go-ethereum/rpc"
)

// EIP-1193 provider error codes
const (
	CodeUserRejected      = 4001
	CodeUnauthorized      = 4100
	CodeUnrecognizedChain = 4902
	CodeInvalidParams     = -32602
)

// ProviderError is an error reported by a wallet provider.
// It satisfies rpc.Error so codes survive the same way node errors do.
type ProviderError struct {
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s (code %d)", e.Message, e.Code)
}

// ErrorCode returns the EIP-1193 code
func (e *ProviderError) ErrorCode() int { return e.Code }

var _ rpc.Error = (*ProviderError)(nil)

// ErrorCodeOf returns the provider error code carried by err, or 0
func ErrorCodeOf(err error) int {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return rpcErr.ErrorCode()
	}
	return 0
}

// NativeCurrency describes a chain's native coin
type NativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// ChainParams are the parameters of a wallet_addEthereumChain request
type ChainParams struct {
	ChainID           *big.Int
	ChainName         string
	RPCURLs           []string
	NativeCurrency    NativeCurrency
	BlockExplorerURLs []string
}

// ChainClient is the node connection a provider reads through.
// *ethclient.Client satisfies it.
type ChainClient interface {
	bind.ContractBackend
	ChainID(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	Close()
}

// Provider is a wallet provider: it authorizes accounts, selects the chain,
// signs transactions and notifies about account and chain changes.
type Provider interface {
	// RequestAccounts asks the user to authorize access and returns the authorized accounts
	RequestAccounts(ctx context.Context) ([]common.Address, error)
	// Accounts returns the already authorized accounts without prompting
	Accounts(ctx context.Context) ([]common.Address, error)
	ChainID(ctx context.Context) (*big.Int, error)
	SwitchChain(ctx context.Context, chainID *big.Int) error
	AddChain(ctx context.Context, params ChainParams) error
	BalanceAt(ctx context.Context, account common.Address) (*big.Int, error)
	// Backend returns the read handle for the current chain
	Backend() ChainClient
	// Transactor returns a signer for account on the current chain
	Transactor(ctx context.Context, account common.Address) (*bind.TransactOpts, error)
	SubscribeAccountsChanged(ch chan<- []common.Address) event.Subscription
	SubscribeChainChanged(ch chan<- *big.Int) event.Subscription
}
