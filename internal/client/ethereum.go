package client

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
)

const dialTimeout = 15 * time.Second

// DialEthereum connects to an Ethereum JSON-RPC endpoint and reads its chain id.
func DialEthereum(ctx context.Context, rpcURL string) (*ethclient.Client, *big.Int, error) {
	if rpcURL == "" {
		return nil, nil, fmt.Errorf("empty rpc url")
	}

	ctx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	c, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to dial %s: %w", rpcURL, err)
	}

	chainID, err := c.ChainID(ctx)
	if err != nil {
		c.Close()
		return nil, nil, fmt.Errorf("failed to get chain id from %s: %w", rpcURL, err)
	}

	return c, chainID, nil
}

// HexChainID formats a chain id the way wallet providers expect it (0x-prefixed hex)
func HexChainID(chainID *big.Int) string {
	return "0x" + chainID.Text(16)
}
