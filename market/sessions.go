package market

// Session is the market-hours label attached to a trade. It is
// informational only.
type Session string

const (
	SessionLondon  Session = "London"
	SessionNewYork Session = "New York"
	SessionTokyo   Session = "Tokyo"
	SessionSydney  Session = "Sydney"
)

// Sessions in the order the entry form lists them.
var Sessions = []Session{SessionLondon, SessionNewYork, SessionTokyo, SessionSydney}

func (s Session) Valid() bool {
	for _, v := range Sessions {
		if v == s {
			return true
		}
	}
	return false
}

// Strategy tags a trade for the strategy performance chart.
type Strategy string

const (
	StrategyBreakout          Strategy = "Breakout"
	StrategyReversal          Strategy = "Reversal"
	StrategyTrendFollowing    Strategy = "Trend Following"
	StrategySupportResistance Strategy = "Support/Resistance"
	StrategyNewsTrading       Strategy = "News Trading"
	StrategyScalping          Strategy = "Scalping"
)

var Strategies = []Strategy{
	StrategyBreakout,
	StrategyReversal,
	StrategyTrendFollowing,
	StrategySupportResistance,
	StrategyNewsTrading,
	StrategyScalping,
}

func (s Strategy) Valid() bool {
	for _, v := range Strategies {
		if v == s {
			return true
		}
	}
	return false
}
