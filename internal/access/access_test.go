package access

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		minimum  *big.Int
		balance  *big.Int
		expected bool
	}{
		{"below", big.NewInt(10), big.NewInt(9), false},
		{"equal", big.NewInt(10), big.NewInt(10), true},
		{"above", big.NewInt(10), big.NewInt(11), true},
		{"zero minimum", big.NewInt(0), big.NewInt(0), true},
		{"nil balance", big.NewInt(1), nil, false},
		{"nil minimum", nil, big.NewInt(0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Evaluate(tt.minimum, tt.balance))
		})
	}
}

func TestEvaluateDecimal(t *testing.T) {
	tests := []struct {
		name     string
		minimum  string
		balance  string
		expected bool
	}{
		{"fractional below", "10.0", "9.999999999999999999", false},
		{"equal different formatting", "10", "10.000", true},
		{"one base unit above", "0.000000000000000001", "0.000000000000000002", true},
		{"large values", "1000000000000", "999999999999.999999999999999999", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := EvaluateDecimal(tt.minimum, tt.balance, 18)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
		})
	}
}

func TestEvaluateDecimalInvalid(t *testing.T) {
	_, err := EvaluateDecimal("abc", "1", 18)
	assert.Error(t, err)

	_, err = EvaluateDecimal("1", "-1", 18)
	assert.Error(t, err)
}
