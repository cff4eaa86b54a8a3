package journal

import "github.com/rustyeddy/tradejournal/market"

// SeedTrades returns the two example trades every demo session starts
// with: a EUR/USD breakout win (+220.00) and a GBP/JPY reversal loss
// (-135.00).
func SeedTrades() []TradeInput {
	return []TradeInput{
		{
			Symbol:       "EUR/USD",
			Session:      market.SessionLondon,
			EntryPrice:   1.0845,
			ExitPrice:    1.0889,
			RiskPercent:  2.5,
			PositionSize: 0.5,
			Date:         "2025-01-14",
			Time:         "08:30",
			Strategy:     market.StrategyBreakout,
			Notes:        "Perfect breakout setup with strong volume confirmation",
			Image:        "https://placehold.co/400x200/1a1a1a/8b5cf6?text=Chart+Analysis",
		},
		{
			Symbol:       "GBP/JPY",
			Session:      market.SessionLondon,
			EntryPrice:   194.25,
			ExitPrice:    193.80,
			RiskPercent:  1.8,
			PositionSize: 0.3,
			Date:         "2025-01-14",
			Time:         "10:15",
			Strategy:     market.StrategyReversal,
			Notes:        "Failed reversal - market continued trending down",
			Image:        "https://placehold.co/400x200/1a1a1a/ef4444?text=Failed+Setup",
		},
	}
}

// NewTradeInput returns an input pre-filled with the entry form
// defaults. Date and time are left empty so the engine stamps them.
func NewTradeInput() TradeInput {
	return TradeInput{
		Session:      market.SessionLondon,
		RiskPercent:  1,
		PositionSize: 0.1,
		Strategy:     market.StrategyBreakout,
	}
}
