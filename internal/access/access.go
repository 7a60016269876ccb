// Package access decides whether a token holding unlocks gated content.
package access

import (
	"fmt"
	"math/big"

	"github.com/AlexZinkM/creatorweb3/internal/common"
)

// Evaluate reports whether balance meets the minimum holding.
// Both values are base units; a nil value counts as zero.
func Evaluate(minimum, balance *big.Int) bool {
	if minimum == nil {
		minimum = new(big.Int)
	}
	if balance == nil {
		balance = new(big.Int)
	}
	return balance.Cmp(minimum) >= 0
}

// EvaluateDecimal is Evaluate for decimal display strings with the given decimals.
func EvaluateDecimal(minimum, balance string, decimals int) (bool, error) {
	min, err := common.ParseUnits(minimum, decimals)
	if err != nil {
		return false, fmt.Errorf("invalid minimum %q: %w", minimum, err)
	}
	bal, err := common.ParseUnits(balance, decimals)
	if err != nil {
		return false, fmt.Errorf("invalid balance %q: %w", balance, err)
	}
	return Evaluate(min, bal), nil
}
