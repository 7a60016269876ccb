package market

import (
	"math/big"

	"github.com/AlexZinkM/creatorweb3/internal/common"
)

// TotalCost returns the wei to attach when buying amount base units at
// pricePerToken wei per whole token: amount * price / 10^18, rounded down.
func TotalCost(amount, pricePerToken *big.Int) *big.Int {
	cost := new(big.Int).Mul(amount, pricePerToken)
	return cost.Quo(cost, common.OneUnit(common.TokenDecimals))
}
