package common

import (
	"fmt"
	"math/big"
	"strings"
)

const (
	EtherDecimals = 18 // native currency (wei)
	TokenDecimals = 18 // creator tokens are minted with 18 decimals
)

// WeiToEther converts wei to an ether string without float precision loss
func WeiToEther(wei *big.Int) string {
	return FormatUnits(wei, EtherDecimals)
}

// EtherToWei converts an ether string to wei without float precision loss
func EtherToWei(ether string) (*big.Int, error) {
	return ParseUnits(ether, EtherDecimals)
}

// OneUnit returns 10^decimals
func OneUnit(decimals int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
}

// FormatUnits converts base units to a decimal string by inserting the decimal point.
// Trailing zeros are trimmed but one fractional digit is always kept.
// Example: FormatUnits(1500000000000000000, 18) = "1.5", FormatUnits(10^18, 18) = "1.0"
func FormatUnits(value *big.Int, decimals int) string {
	if value == nil {
		return "0.0"
	}

	neg := value.Sign() < 0
	s := new(big.Int).Abs(value).String()

	// Pad with leading zeros if needed
	if len(s) <= decimals {
		s = strings.Repeat("0", decimals-len(s)+1) + s
	}

	// Insert decimal point
	pos := len(s) - decimals
	whole, frac := s[:pos], strings.TrimRight(s[pos:], "0")
	if frac == "" {
		frac = "0"
	}

	if neg {
		whole = "-" + whole
	}
	return whole + "." + frac
}

// ParseUnits converts a decimal string to base units by removing the decimal point.
// Fractional digits beyond decimals are rejected rather than silently truncated.
// Example: ParseUnits("0.5", 18) = 500000000000000000
func ParseUnits(s string, decimals int) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty amount")
	}
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return nil, fmt.Errorf("invalid amount %q: sign not allowed", s)
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return nil, fmt.Errorf("invalid decimal format %q", s)
	}

	whole := parts[0]
	frac := ""
	if len(parts) == 2 {
		frac = parts[1]
	}
	if whole == "" && frac == "" {
		return nil, fmt.Errorf("invalid decimal format %q", s)
	}
	if len(frac) > decimals {
		return nil, fmt.Errorf("invalid amount %q: more than %d decimal places", s, decimals)
	}

	// Pad fractional part to exact decimals
	frac += strings.Repeat("0", decimals-len(frac))

	// Combine and parse
	combined := whole + frac
	for _, r := range combined {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("invalid amount %q", s)
		}
	}
	n, ok := new(big.Int).SetString(combined, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	return n, nil
}

// CompareAmounts compares two decimal string amounts without float precision loss.
// Returns: -1 if a < b, 0 if a == b, 1 if a > b, and error if parsing fails
func CompareAmounts(a, b string, decimals int) (int, error) {
	aVal, err := ParseUnits(a, decimals)
	if err != nil {
		return 0, fmt.Errorf("failed to parse amount '%s': %w", a, err)
	}

	bVal, err := ParseUnits(b, decimals)
	if err != nil {
		return 0, fmt.Errorf("failed to parse amount '%s': %w", b, err)
	}

	return aVal.Cmp(bVal), nil
}

// ShortAddress renders 0x1234...abcd
func ShortAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}
