package common

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatUnits(t *testing.T) {
	tests := []struct {
		name  string
		value *big.Int
		want  string
	}{
		{"zero", big.NewInt(0), "0.0"},
		{"one ether", OneUnit(18), "1.0"},
		{"one and a half", big.NewInt(1_500_000_000_000_000_000), "1.5"},
		{"one wei", big.NewInt(1), "0.000000000000000001"},
		{"negative", big.NewInt(-250_000_000_000_000_000), "-0.25"},
		{"nil", nil, "0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUnits(tt.value, 18))
		})
	}
}

func TestParseUnits(t *testing.T) {
	v, err := ParseUnits("0.5", 18)
	require.NoError(t, err)
	assert.Equal(t, "500000000000000000", v.String())

	v, err = ParseUnits("12", 6)
	require.NoError(t, err)
	assert.Equal(t, "12000000", v.String())

	v, err = ParseUnits(".25", 2)
	require.NoError(t, err)
	assert.Equal(t, "25", v.String())

	for _, bad := range []string{"", "abc", "1.2.3", "-1", "1e18", ".", "0.0000001"} {
		_, err := ParseUnits(bad, 6)
		assert.Error(t, err, bad)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, s := range []string{"1.0", "0.000000000000000001", "123456789.123456789"} {
		v, err := EtherToWei(s)
		require.NoError(t, err)
		assert.Equal(t, s, WeiToEther(v))
	}
}

func TestCompareAmounts(t *testing.T) {
	cmp, err := CompareAmounts("10.000000000000000001", "10", 18)
	require.NoError(t, err)
	assert.Equal(t, 1, cmp)

	cmp, err = CompareAmounts("0.1", "0.10", 18)
	require.NoError(t, err)
	assert.Equal(t, 0, cmp)

	_, err = CompareAmounts("x", "1", 18)
	assert.Error(t, err)
}

func TestShortAddress(t *testing.T) {
	assert.Equal(t, "0x1234...abcd", ShortAddress("0x12345678901234567890123456789012345abcd"))
	assert.Equal(t, "0x12", ShortAddress("0x12"))
}
