// market/instruments.go
package market

import (
	"fmt"
	"strings"
)

// LotSize is the notional of one standard lot.
const LotSize float64 = 100_000

// JPYPipFactor scales price differences of yen-quoted pairs.
const JPYPipFactor float64 = 0.01

type InstrumentMeta struct {
	Name          string
	BaseCurrency  string
	QuoteCurrency string
	PipLocation   int
}

// Instruments lists the pairs offered in the journal's symbol picker.
// Symbols entered by hand do not have to appear here.
var Instruments = map[string]InstrumentMeta{
	"EUR/USD": {Name: "EUR/USD", BaseCurrency: "EUR", QuoteCurrency: "USD", PipLocation: -4},
	"GBP/USD": {Name: "GBP/USD", BaseCurrency: "GBP", QuoteCurrency: "USD", PipLocation: -4},
	"AUD/USD": {Name: "AUD/USD", BaseCurrency: "AUD", QuoteCurrency: "USD", PipLocation: -4},
	"USD/CAD": {Name: "USD/CAD", BaseCurrency: "USD", QuoteCurrency: "CAD", PipLocation: -4},
	"USD/JPY": {Name: "USD/JPY", BaseCurrency: "USD", QuoteCurrency: "JPY", PipLocation: -2},
	"GBP/JPY": {Name: "GBP/JPY", BaseCurrency: "GBP", QuoteCurrency: "JPY", PipLocation: -2},
}

// IsJPY reports whether the symbol names a yen pair. The match is a
// case-sensitive substring test on the symbol as entered.
func IsJPY(symbol string) bool {
	return strings.Contains(symbol, "JPY")
}

// PipFactor returns the multiplier applied to a raw price difference
// before it is turned into a cash amount.
func PipFactor(symbol string) float64 {
	if IsJPY(symbol) {
		return JPYPipFactor
	}
	return 1
}

// FormatPrice prints a price with the precision of the instrument's
// pipette (one digit past the pip). Unknown symbols fall back to the
// yen rule: 3 decimals for JPY pairs, 5 otherwise.
func FormatPrice(symbol string, price float64) string {
	loc := -4
	if meta, ok := Instruments[symbol]; ok {
		loc = meta.PipLocation
	} else if IsJPY(symbol) {
		loc = -2
	}
	return fmt.Sprintf("%.*f", -loc+1, price)
}
