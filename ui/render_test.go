package ui

import (
	"github.com/gizak/termui/v3"
	"github.com/raysyhuang/gemini-STST/models"
	"github.com/stretchr/testify/assert"
	"testing"
)

func bullishRegime() models.MarketRegime {
	return models.MarketRegime{Regime: "Bullish"}
}

func floatPtr(value float64) *float64 {
	return &value
}

func TestRenderMomentumEmptySignalsShowsEmptyState(t *testing.T) {
	state := NewAppState()
	state.Screener = &models.ScreenerResponse{Date: "2024-03-08", Regime: bullishRegime()}

	vm := RenderMomentum(state)

	assert.Empty(t, vm.Rows)
	assert.Equal(t, "No momentum signals today.", vm.EmptyText)
}

func TestRenderReversionEmptySignalsShowsEmptyState(t *testing.T) {
	state := NewAppState()
	state.Reversion = &models.ReversionResponse{Date: "2024-03-08", Regime: bullishRegime()}

	vm := RenderReversion(state)

	assert.Empty(t, vm.Rows)
	assert.Equal(t, "No oversold reversals today.", vm.EmptyText)
}

func TestRenderMomentumRows(t *testing.T) {
	state := NewAppState()
	state.Cursor[ViewMomentum] = 1
	state.Screener = &models.ScreenerResponse{
		Date:   "2024-03-08",
		Regime: models.MarketRegime{Regime: "Bearish"},
		Signals: []models.MomentumSignal{
			{Ticker: "NVDA", CompanyName: "NVIDIA Corp", TriggerPrice: 875.28, RVOLAtTrigger: 3.2,
				ATRPctAtTrigger: 4.1, OptionsSentiment: "bullish", PutCallRatio: floatPtr(0.45)},
			{Ticker: "AMD", CompanyName: "Advanced Micro Devices", TriggerPrice: 205.1, RVOLAtTrigger: 2.1,
				ATRPctAtTrigger: 3.3, OptionsSentiment: "bearish"},
		},
	}

	vm := RenderMomentum(state)

	assert.Len(t, vm.Rows, 2)
	assert.Empty(t, vm.EmptyText)
	assert.Equal(t, 1, vm.SelectedRow)
	assert.Contains(t, vm.Header, "[Bearish](fg:red)")
	assert.Contains(t, vm.Rows[0], "NVDA")
	assert.Contains(t, vm.Rows[0], "RVOL  3.2x")
	assert.Contains(t, vm.Rows[0], "[bullish](fg:green) P/C 0.45")
	assert.Contains(t, vm.Rows[1], "[bearish](fg:red) P/C -")
}

func TestRenderBacktestNegativeReturnIsRed(t *testing.T) {
	state := NewAppState()
	state.Backtest = BacktestPanel{
		Ticker: "AAPL",
		Result: &models.BacktestResult{
			Ticker: "AAPL", WinRate: 48.0, ProfitFactor: 0.9, TotalReturnPct: -5.2,
			MaxDrawdownPct: -12.7, TotalTrades: 21,
			EquityCurve: []models.EquityPoint{{Time: "2024-01-02", Value: 10000}, {Time: "2024-01-03", Value: 9480}},
		},
	}

	vm := RenderBacktest(state)

	assert.Equal(t, termui.ColorRed, vm.LineColor)
	assert.Contains(t, vm.Text, "[Total Return:  -5.20%](fg:red)")
	assert.Equal(t, []float64{10000, 9480}, vm.Series)
}

func TestRenderBacktestPositiveReturnIsGreen(t *testing.T) {
	state := NewAppState()
	state.Backtest = BacktestPanel{
		Ticker: "NVDA",
		Result: &models.BacktestResult{Ticker: "NVDA", TotalReturnPct: 12.4},
	}

	vm := RenderBacktest(state)

	assert.Equal(t, termui.ColorGreen, vm.LineColor)
	assert.Contains(t, vm.Text, "(fg:green)")
}

func TestRenderBacktestDetailReplacesTickerLabel(t *testing.T) {
	state := NewAppState()
	state.Backtest = BacktestPanel{Ticker: "ZZZZ", Detail: "Ticker 'ZZZZ' not found"}

	vm := RenderBacktest(state)

	assert.Equal(t, "Ticker 'ZZZZ' not found", vm.Title)
	assert.True(t, vm.Failed)
}

func TestRenderBacktestLoading(t *testing.T) {
	state := NewAppState()
	state.Backtest = BacktestPanel{Ticker: "NVDA", Loading: true}

	vm := RenderBacktest(state)

	assert.Equal(t, "Loading backtest for NVDA...", vm.Text)
}

func TestRenderPerformanceHasSixCards(t *testing.T) {
	state := NewAppState()
	state.Metrics = &models.PaperMetrics{
		TotalTrades: 20, ClosedTrades: 14, WinRate: 57.1, ProfitFactor: 1.62,
		AvgReturnPct: 1.2, TotalPnL: 842.5, AvgHoldDays: 4.3,
		Momentum:  models.StrategyBreakdown{TotalTrades: 12, WinRate: 58.3, TotalPnL: 610.0},
		Reversion: models.StrategyBreakdown{TotalTrades: 8, WinRate: 55.0, TotalPnL: 232.5},
	}

	vm := RenderPerformance(state)

	assert.Len(t, vm.Cards, 6)
	assert.Equal(t, "Total P&L", vm.Cards[0].Title)
	assert.Contains(t, vm.Cards[0].Text, "$842.50")
	assert.Equal(t, "14 of 20", vm.Cards[3].Text)
	assert.Contains(t, vm.Breakdown, "Momentum: 12 trades")
}

func TestTradeRowClosedPositive(t *testing.T) {
	state := NewAppState()
	state.Metrics = &models.PaperMetrics{}
	state.Trades = []models.PaperTrade{{
		Ticker: "TSLA", Strategy: "momentum", Status: models.TradeStatusClosed,
		EntryPrice: floatPtr(180.50), ExitPrice: floatPtr(186.10), PnLPct: floatPtr(3.1),
	}}

	vm := RenderPerformance(state)

	assert.Len(t, vm.TradeRows, 1)
	assert.Contains(t, vm.TradeRows[0], "[+3.10%](fg:green)")
	assert.Contains(t, vm.TradeRows[0], "[closed](fg:white)")
}

func TestTradeRowPendingHasNoPrices(t *testing.T) {
	state := NewAppState()
	state.Metrics = &models.PaperMetrics{}
	state.Trades = []models.PaperTrade{{Ticker: "AMD", Strategy: "reversion", Status: models.TradeStatusPending}}

	vm := RenderPerformance(state)

	assert.Contains(t, vm.TradeRows[0], "[pending](fg:yellow)")
	assert.NotContains(t, vm.TradeRows[0], "$")
}

func TestRenderNewsForSelectedMomentumSignal(t *testing.T) {
	state := NewAppState()
	state.ShowNews = true
	state.Cursor[ViewMomentum] = 0
	state.Screener = &models.ScreenerResponse{
		Signals: []models.MomentumSignal{{
			Ticker: "NVDA",
			News: []models.NewsArticle{{
				Headline: "Chips [rally](fg:red) continues", Source: "Reuters", Published: "2024-03-08",
			}},
		}},
	}

	vm := RenderNews(state)

	assert.True(t, vm.Visible)
	assert.Equal(t, "News NVDA", vm.Title)
	assert.Contains(t, vm.Rows[0], "Chips [rally] (fg:red) continues")
	assert.Contains(t, vm.Rows[1], "Reuters")
}

func TestRenderNewsHiddenOnReversionView(t *testing.T) {
	state := NewAppState()
	state.ShowNews = true
	state.Cursor[ViewMomentum] = 0
	state.ActiveView = ViewReversion
	state.Screener = &models.ScreenerResponse{
		Signals: []models.MomentumSignal{{
			Ticker: "NVDA",
			News:   []models.NewsArticle{{Headline: "Chips rally continues"}},
		}},
	}

	vm := RenderNews(state)

	assert.False(t, vm.Visible)
	assert.Empty(t, vm.Rows)
}

func TestRenderNewsHiddenWhenNewsFlagOff(t *testing.T) {
	state := NewAppState()
	state.ShowNews = false
	state.Cursor[ViewMomentum] = 0
	state.Screener = &models.ScreenerResponse{Signals: []models.MomentumSignal{{Ticker: "NVDA"}}}

	vm := RenderNews(state)

	assert.False(t, vm.Visible)
	assert.Empty(t, vm.Rows)
}
