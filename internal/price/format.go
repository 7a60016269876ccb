package price

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Direction of a 24h change
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// FormatPrice renders a USD price with precision scaled to its magnitude:
// 2 places from 1 upwards, 4 places from 0.01, 6 places below.
func FormatPrice(usd float64) string {
	d := decimal.NewFromFloat(usd)
	switch {
	case usd >= 1:
		return "$" + d.StringFixed(2)
	case usd >= 0.01:
		return "$" + d.StringFixed(4)
	default:
		return "$" + d.StringFixed(6)
	}
}

// FormatPriceChange renders a percentage change with an explicit sign, e.g. "+5.25%"
func FormatPriceChange(change float64) string {
	sign := ""
	if change >= 0 {
		sign = "+"
	}
	return sign + decimal.NewFromFloat(change).StringFixed(2) + "%"
}

// ChangeDirection returns DirectionUp for non-negative changes and DirectionDown otherwise
func ChangeDirection(change float64) string {
	if change >= 0 {
		return DirectionUp
	}
	return DirectionDown
}

// ValueInUSD multiplies a decimal token amount by a unit price
func ValueInUSD(amount string, usd float64) (decimal.Decimal, error) {
	a, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	return a.Mul(decimal.NewFromFloat(usd)), nil
}
