package valuation

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// ShareDecimals is the precision of every pool share token.
const ShareDecimals uint8 = 18

// ScaleAmount divides a base-unit amount by 10^decimals without rounding.
func ScaleAmount(raw *big.Int, decimals uint8) decimal.Decimal {
	if raw == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(raw, -int32(decimals))
}

// ToFloat returns the float64 nearest to d.
func ToFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
