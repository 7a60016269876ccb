package contracts

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

var (
	abiMu     sync.Mutex
	abiParsed = map[string]*abi.ABI{}
)

// parsedABI parses abiJSON on first use and returns the cached result afterwards.
func parsedABI(abiJSON string) (*abi.ABI, error) {
	abiMu.Lock()
	defer abiMu.Unlock()
	if parsed, ok := abiParsed[abiJSON]; ok {
		return parsed, nil
	}
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse abi: %w", err)
	}
	abiParsed[abiJSON] = &parsed
	return &parsed, nil
}

func bindContract(address common.Address, abiJSON string, backend bind.ContractBackend) (abi.ABI, *bind.BoundContract, error) {
	parsed, err := parsedABI(abiJSON)
	if err != nil {
		return abi.ABI{}, nil, err
	}
	return *parsed, bind.NewBoundContract(address, *parsed, backend, backend, backend), nil
}

// call invokes a constant method with a single return value and converts it to T.
func call[T any](c *bind.BoundContract, opts *bind.CallOpts, method string, args ...interface{}) (T, error) {
	var (
		out  []interface{}
		zero T
	)
	if err := c.Call(opts, &out, method, args...); err != nil {
		return zero, err
	}
	if len(out) == 0 {
		return zero, fmt.Errorf("%s: empty result", method)
	}
	return *abi.ConvertType(out[0], new(T)).(*T), nil
}
