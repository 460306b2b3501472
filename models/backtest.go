package models

// EquityPoint is one sample of the cumulative backtest portfolio value
type EquityPoint struct {
	Time  string  `json:"time"`
	Value float64 `json:"value"`
}

// BacktestResult is the body of GET /api/backtest/{ticker}
type BacktestResult struct {
	Ticker         string        `json:"ticker"`
	WinRate        float64       `json:"win_rate"`
	ProfitFactor   float64       `json:"profit_factor"`
	TotalReturnPct float64       `json:"total_return_pct"`
	MaxDrawdownPct float64       `json:"max_drawdown_pct"`
	TotalTrades    int           `json:"total_trades"`
	EquityCurve    []EquityPoint `json:"equity_curve"`
}
