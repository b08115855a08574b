package utils

import (
	"math/big"
	"strings"
)

// GMTokenDecimals is the decimal precision of every GM token
const GMTokenDecimals = 9

// USDCDecimals is the decimal precision of USDC
const USDCDecimals = 6

// FormatTokenAmount renders base units as a decimal string without
// floating point rounding, e.g. 1500000000 with 9 decimals -> "1.5".
func FormatTokenAmount(amount uint64, decimals int) string {
	if decimals <= 0 {
		return new(big.Int).SetUint64(amount).String()
	}

	s := new(big.Int).SetUint64(amount).String()
	if len(s) <= decimals {
		s = strings.Repeat("0", decimals-len(s)+1) + s
	}

	whole, frac := s[:len(s)-decimals], strings.TrimRight(s[len(s)-decimals:], "0")
	if frac == "" {
		return whole
	}
	return whole + "." + frac
}

// ConvertBaseUnitsToUI converts base units to a float for display only
func ConvertBaseUnitsToUI(amount uint64, decimals int) float64 {
	f, _ := new(big.Float).Quo(
		new(big.Float).SetUint64(amount),
		new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)),
	).Float64()
	return f
}
