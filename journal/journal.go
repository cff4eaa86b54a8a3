// journal/journal.go
package journal

import (
	"github.com/rustyeddy/tradejournal/market"
)

// Result is the derived outcome of a trade.
type Result string

const (
	Win  Result = "Win"
	Loss Result = "Loss"
)

// ResultFor classifies a rounded P&L. Zero is a loss.
func ResultFor(pnl float64) Result {
	if pnl > 0 {
		return Win
	}
	return Loss
}

// TradeRecord is one logged trade. Result and PnL are derived by
// Engine.AddTrade and never set by callers.
type TradeRecord struct {
	ID           int             `json:"id"`
	Symbol       string          `json:"symbol"`
	Session      market.Session  `json:"session"`
	EntryPrice   float64         `json:"entryPrice"`
	ExitPrice    float64         `json:"exitPrice"`
	RiskPercent  float64         `json:"riskPercent"`
	PositionSize float64         `json:"positionSize"`
	Result       Result          `json:"result"`
	PnL          float64         `json:"pnl"`
	Date         string          `json:"date"`
	Time         string          `json:"time"`
	Strategy     market.Strategy `json:"strategy"`
	Notes        string          `json:"notes"`
	Image        string          `json:"image,omitempty"`
}

// TradeInput is a candidate trade as collected from a form or file.
// A zero EntryPrice or ExitPrice counts as missing.
type TradeInput struct {
	Symbol       string          `json:"symbol" validate:"required"`
	Session      market.Session  `json:"session"`
	EntryPrice   float64         `json:"entryPrice" validate:"required"`
	ExitPrice    float64         `json:"exitPrice" validate:"required"`
	RiskPercent  float64         `json:"riskPercent"`
	PositionSize float64         `json:"positionSize"`
	Date         string          `json:"date"`
	Time         string          `json:"time"`
	Strategy     market.Strategy `json:"strategy"`
	Notes        string          `json:"notes"`
	Image        string          `json:"image,omitempty"`
}

// Sink receives exported trades. Implementations write a snapshot; they
// are never read back into an engine.
type Sink interface {
	RecordTrade(TradeRecord) error
	Close() error
}

// Export writes every trade to the sink and closes it. The sink is
// closed even when a write fails.
func Export(s Sink, trades []TradeRecord) error {
	for _, t := range trades {
		if err := s.RecordTrade(t); err != nil {
			_ = s.Close()
			return err
		}
	}
	return s.Close()
}
