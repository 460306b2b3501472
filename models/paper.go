package models

// Paper trade lifecycle states as the tracker reports them
const (
	TradeStatusPending = "pending"
	TradeStatusOpen    = "open"
	TradeStatusClosed  = "closed"
)

// StrategyBreakdown aggregates paper results for a single strategy
type StrategyBreakdown struct {
	TotalTrades  int     `json:"total_trades"`
	WinRate      float64 `json:"win_rate"`
	AvgReturnPct float64 `json:"avg_return_pct"`
	TotalPnL     float64 `json:"total_pnl"`
}

// PaperMetrics is the body of GET /api/paper/metrics
type PaperMetrics struct {
	TotalTrades   int               `json:"total_trades"`
	OpenTrades    int               `json:"open_trades"`
	ClosedTrades  int               `json:"closed_trades"`
	WinRate       float64           `json:"win_rate"`
	ProfitFactor  float64           `json:"profit_factor"`
	AvgReturnPct  float64           `json:"avg_return_pct"`
	TotalPnL      float64           `json:"total_pnl"`
	AvgHoldDays   float64           `json:"avg_hold_days"`
	BestTradePct  float64           `json:"best_trade_pct"`
	WorstTradePct float64           `json:"worst_trade_pct"`
	Momentum      StrategyBreakdown `json:"momentum"`
	Reversion     StrategyBreakdown `json:"reversion"`
}

// PaperTrade is one row of the paper-trading trade log. Fields that are
// unset until the trade fills or closes come back as null.
type PaperTrade struct {
	ID              int64    `json:"id"`
	Ticker          string   `json:"ticker"`
	Strategy        string   `json:"strategy"`
	SignalDate      string   `json:"signal_date"`
	EntryDate       *string  `json:"entry_date"`
	EntryPrice      *float64 `json:"entry_price"`
	Shares          *float64 `json:"shares"`
	PositionSize    *float64 `json:"position_size"`
	QualityScore    *float64 `json:"quality_score"`
	StopLevel       *float64 `json:"stop_level"`
	ExitPrice       *float64 `json:"exit_price"`
	ExitReason      *string  `json:"exit_reason"`
	PnLDollars      *float64 `json:"pnl_dollars"`
	PnLPct          *float64 `json:"pnl_pct"`
	PlannedExitDate *string  `json:"planned_exit_date"`
	ActualExitDate  *string  `json:"actual_exit_date"`
	Status          string   `json:"status"`
	HoldDays        *int     `json:"hold_days"`
}

// TradesResponse is the body of GET /api/paper/trades
type TradesResponse struct {
	Trades []PaperTrade `json:"trades"`
}
