package balance

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		amount   string
		decimals uint
		want     string
	}{
		{"0", 10, "0"},
		{"0", 0, "0"},
		{"12345", 3, "12.345"},
		{"12000", 3, "12"},
		{"12300", 3, "12.3"},
		{"5", 3, "0.005"},
		{"10000000000", 10, "1"},
		{"15000000000", 10, "1.5"},
		{"123", 0, "123"},
		{"340282366920938463463374607431768211455", 10, "34028236692093846346337460743.1768211455"},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			a, ok := new(big.Int).SetString(tt.amount, 10)
			require.True(t, ok)
			assert.Equal(t, tt.want, Format(a, tt.decimals))
		})
	}
}

func TestFormat_Nil(t *testing.T) {
	assert.Equal(t, "0", Format(nil, 10))
}

func TestFormat_ZeroForAnyDecimals(t *testing.T) {
	for d := uint(0); d <= 30; d++ {
		assert.Equal(t, "0", Format(big.NewInt(0), d))
	}
}

// parse reverses Format: whole*10^d + fraction right-padded to d digits.
func parse(t *testing.T, s string, d uint) *big.Int {
	t.Helper()
	whole, frac, _ := strings.Cut(s, ".")
	require.LessOrEqual(t, len(frac), int(d))
	digits := whole + frac + strings.Repeat("0", int(d)-len(frac))
	v, ok := new(big.Int).SetString(digits, 10)
	require.True(t, ok, digits)
	return v
}

func TestFormat_RoundTrip(t *testing.T) {
	amounts := []int64{0, 1, 9, 10, 99, 100, 101, 1234567890, 10000000000, 10000000001, 987654321012345}
	for _, a := range amounts {
		for d := uint(0); d <= 12; d++ {
			got := parse(t, Format(big.NewInt(a), d), d)
			assert.Equal(t, 0, got.Cmp(big.NewInt(a)), "amount=%d decimals=%d", a, d)
		}
	}
}

func TestBalance_TotalAndDisplay(t *testing.T) {
	b := Balance{
		Free:     big.NewInt(15_000_000_000),
		Reserved: big.NewInt(5_000_000_000),
		Frozen:   big.NewInt(1),
		Symbol:   "PAS",
		Decimals: 10,
	}
	assert.Equal(t, "2 PAS", b.Display(b.Total()))
	assert.Equal(t, "0.0000000001 PAS", b.Display(b.Frozen))
}

func TestEmpty(t *testing.T) {
	b := Empty("Paseo Asset Hub", "PAS", 10)
	assert.Equal(t, "0 PAS", b.Display(b.Total()))
	assert.Equal(t, "Paseo Asset Hub", b.ChainName)
}
