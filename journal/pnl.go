package journal

import (
	"math"

	"github.com/rustyeddy/tradejournal/market"
	"github.com/shopspring/decimal"
)

var decLotSize = decimal.NewFromFloat(market.LotSize)

func decFromFloat(val float64) decimal.Decimal {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(val)
}

func decToFloat(val decimal.Decimal) float64 {
	f, _ := val.Float64()
	return f
}

// ComputePnL returns the cash result of a trade rounded to cents:
//
//	(exit - entry) * size * LotSize * PipFactor(symbol)
//
// Rounding is half away from zero. The arithmetic runs in decimal so
// quoted prices such as 1.0889 - 1.0845 do not pick up binary noise.
func ComputePnL(symbol string, entry, exit, size float64) float64 {
	raw := decFromFloat(exit).Sub(decFromFloat(entry)).
		Mul(decFromFloat(size)).
		Mul(decLotSize).
		Mul(decFromFloat(market.PipFactor(symbol)))
	return decToFloat(raw.Round(2))
}
