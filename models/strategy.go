package models

// Strategy identifies which screening strategy a signal or backtest belongs to
type Strategy string

const (
	StrategyMomentum  Strategy = "momentum"
	StrategyReversion Strategy = "reversion"
)

func (s Strategy) String() string {
	return string(s)
}

// Valid returns true if the strategy is one the backend understands
func (s Strategy) Valid() bool {
	return s == StrategyMomentum || s == StrategyReversion
}
