package balance

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Format renders an amount of smallest units with the given number of decimal places.
// The fraction keeps every significant digit and drops trailing zeros; nothing is rounded.
func Format(amount *big.Int, decimals uint) string {
	if amount == nil {
		return "0"
	}
	return decimal.NewFromBigInt(amount, -int32(decimals)).String()
}

// Balance is a snapshot of an account's funds on one chain.
type Balance struct {
	Free      *big.Int
	Reserved  *big.Int
	Frozen    *big.Int
	ChainName string
	Symbol    string
	Decimals  uint
}

// Empty is the snapshot shown for an account the chain does not know yet.
func Empty(chainName, symbol string, decimals uint) Balance {
	return Balance{
		Free:      new(big.Int),
		Reserved:  new(big.Int),
		Frozen:    new(big.Int),
		ChainName: chainName,
		Symbol:    symbol,
		Decimals:  decimals,
	}
}

func (b Balance) Total() *big.Int {
	total := new(big.Int)
	if b.Free != nil {
		total.Add(total, b.Free)
	}
	if b.Reserved != nil {
		total.Add(total, b.Reserved)
	}
	return total
}

// Display formats amount and appends the token symbol.
func (b Balance) Display(amount *big.Int) string {
	s := Format(amount, b.Decimals)
	if b.Symbol == "" {
		return s
	}
	return s + " " + b.Symbol
}
