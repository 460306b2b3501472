package ui

import (
	"github.com/raysyhuang/gemini-STST/models"
)

// View identifies which dashboard panel is on screen
type View int

const (
	ViewMomentum View = iota
	ViewReversion
	ViewPerformance
)

func (v View) Valid() bool {
	return v >= ViewMomentum && v <= ViewPerformance
}

// Strategy maps a signal view to the strategy its backtests run with
func (v View) Strategy() models.Strategy {
	if v == ViewReversion {
		return models.StrategyReversion
	}
	return models.StrategyMomentum
}

// BacktestPanel is the state of the backtest pane: at most one of
// Loading, Detail and Result is meaningful at a time.
type BacktestPanel struct {
	Ticker  string
	Loading bool
	Detail  string
	Result  *models.BacktestResult
}

// AppState owns every piece of display state for the session. All
// mutation happens on the event-loop goroutine; fetches deliver their
// payloads as messages instead of touching the state directly.
type AppState struct {
	ActiveView View
	Screener   *models.ScreenerResponse
	Reversion  *models.ReversionResponse
	Metrics    *models.PaperMetrics
	Trades     []models.PaperTrade
	Cursor     [3]int
	ShowNews   bool
	Backtest   BacktestPanel
}

func NewAppState() *AppState {
	return &AppState{
		ActiveView: ViewMomentum,
		Cursor:     [3]int{-1, -1, -1},
	}
}

// Messages delivered by fetch goroutines to the event loop

type screenerMsg struct {
	screener *models.ScreenerResponse
	err      error
}

type reversionMsg struct {
	reversion *models.ReversionResponse
	err       error
}

type metricsMsg struct {
	metrics *models.PaperMetrics
	err     error
}

type tradesMsg struct {
	trades []models.PaperTrade
	err    error
}

type backtestMsg struct {
	ticker string
	result *models.BacktestResult
	err    error
}
