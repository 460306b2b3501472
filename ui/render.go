package ui

import (
	"fmt"
	"github.com/gizak/termui/v3"
	"github.com/raysyhuang/gemini-STST/helpers"
	"github.com/raysyhuang/gemini-STST/models"
)

// View-models are plain strings and colors so every panel can be checked
// without a terminal. The widgets in interface.go only copy them over.

type SignalTableVM struct {
	Title       string
	Header      string
	Rows        []string
	EmptyText   string
	SelectedRow int
}

type NewsVM struct {
	Visible bool
	Title   string
	Rows    []string
}

type MetricCard struct {
	Title string
	Text  string
}

type PerformanceVM struct {
	Cards     []MetricCard
	Breakdown string
	TradeRows []string
	EmptyText string
}

type BacktestVM struct {
	Title     string
	Text      string
	Series    []float64
	LineColor termui.Color
	Failed    bool
}

// RenderMomentum builds the momentum table from the cached screener response
func RenderMomentum(state *AppState) SignalTableVM {
	vm := SignalTableVM{Title: "Momentum Breakouts [1]", SelectedRow: state.Cursor[ViewMomentum]}
	if state.Screener == nil {
		vm.EmptyText = "Waiting for screener data..."
		return vm
	}

	vm.Header = regimeHeader(state.Screener.Date, state.Screener.Regime)
	if len(state.Screener.Signals) == 0 {
		vm.EmptyText = "No momentum signals today."
		return vm
	}

	for _, signal := range state.Screener.Signals {
		vm.Rows = append(vm.Rows, fmt.Sprintf("%-6s %-22s $%8.2f  RVOL %4.1fx  ATR %4.1f%%  %s",
			signal.Ticker, truncate(helpers.SanitizeText(signal.CompanyName), 22), signal.TriggerPrice,
			signal.RVOLAtTrigger, signal.ATRPctAtTrigger,
			sentimentCell(signal.OptionsSentiment, signal.PutCallRatio)))
	}
	return vm
}

// RenderReversion builds the reversion table from the cached reversion response
func RenderReversion(state *AppState) SignalTableVM {
	vm := SignalTableVM{Title: "Oversold Reversions [2]", SelectedRow: state.Cursor[ViewReversion]}
	if state.Reversion == nil {
		vm.EmptyText = "Waiting for screener data..."
		return vm
	}

	vm.Header = regimeHeader(state.Reversion.Date, state.Reversion.Regime)
	if len(state.Reversion.Signals) == 0 {
		vm.EmptyText = "No oversold reversals today."
		return vm
	}

	for _, signal := range state.Reversion.Signals {
		vm.Rows = append(vm.Rows, fmt.Sprintf("%-6s %-22s $%8.2f  RSI(2) %4.1f  3d Drop %5.1f%%  SMA Dist %5.1f%%  %s",
			signal.Ticker, truncate(helpers.SanitizeText(signal.CompanyName), 22), signal.TriggerPrice,
			signal.RSI2, signal.Drawdown3DPct, signal.SMADistancePct,
			sentimentCell(signal.OptionsSentiment, signal.PutCallRatio)))
	}
	return vm
}

// RenderNews builds the headline pane for the selected momentum signal.
// Only the momentum view carries a news pane.
func RenderNews(state *AppState) NewsVM {
	vm := NewsVM{Title: "News"}
	if state.ActiveView != ViewMomentum || !state.ShowNews || state.Screener == nil {
		return vm
	}
	selected := state.Cursor[ViewMomentum]
	if selected < 0 || selected >= len(state.Screener.Signals) {
		return vm
	}

	signal := state.Screener.Signals[selected]
	vm.Visible = true
	vm.Title = "News " + signal.Ticker
	if len(signal.News) == 0 {
		vm.Rows = []string{"No recent headlines."}
		return vm
	}
	for _, article := range signal.News {
		vm.Rows = append(vm.Rows, "• "+helpers.SanitizeText(article.Headline))
		vm.Rows = append(vm.Rows, fmt.Sprintf("  [%s | %s](fg:cyan)",
			helpers.SanitizeText(article.Source), helpers.SanitizeText(article.Published)))
	}
	return vm
}

// RenderPerformance builds the six metric cards and the trade log
func RenderPerformance(state *AppState) PerformanceVM {
	vm := PerformanceVM{}
	if state.Metrics == nil {
		vm.EmptyText = "Waiting for paper-trading metrics..."
		return vm
	}

	metrics := state.Metrics
	vm.Cards = []MetricCard{
		{Title: "Total P&L", Text: fmt.Sprintf("[%s](fg:%s)", dollars(metrics.TotalPnL), signColor(metrics.TotalPnL))},
		{Title: "Win Rate", Text: fmt.Sprintf("%.1f%%", metrics.WinRate)},
		{Title: "Profit Factor", Text: fmt.Sprintf("%.2f", metrics.ProfitFactor)},
		{Title: "Closed Trades", Text: fmt.Sprintf("%d of %d", metrics.ClosedTrades, metrics.TotalTrades)},
		{Title: "Avg Return", Text: fmt.Sprintf("[%+.2f%%](fg:%s)", metrics.AvgReturnPct, signColor(metrics.AvgReturnPct))},
		{Title: "Avg Hold", Text: fmt.Sprintf("%.1fd", metrics.AvgHoldDays)},
	}
	vm.Breakdown = fmt.Sprintf("Momentum: %d trades, %.1f%% win, %s   Reversion: %d trades, %.1f%% win, %s",
		metrics.Momentum.TotalTrades, metrics.Momentum.WinRate, dollars(metrics.Momentum.TotalPnL),
		metrics.Reversion.TotalTrades, metrics.Reversion.WinRate, dollars(metrics.Reversion.TotalPnL))

	for _, trade := range state.Trades {
		vm.TradeRows = append(vm.TradeRows, tradeRow(trade))
	}
	return vm
}

// RenderBacktest builds the backtest pane. On a backend error the detail
// message takes the place of the ticker label.
func RenderBacktest(state *AppState) BacktestVM {
	panel := state.Backtest
	if panel.Ticker == "" {
		return BacktestVM{Title: "Backtest", Text: "Select a signal to load its backtest."}
	}
	if panel.Loading {
		return BacktestVM{Title: "Backtest", Text: fmt.Sprintf("Loading backtest for %s...", panel.Ticker)}
	}
	if panel.Detail != "" {
		return BacktestVM{Title: panel.Detail, Failed: true}
	}
	if panel.Result == nil {
		return BacktestVM{Title: "Backtest", Text: "Select a signal to load its backtest."}
	}

	result := panel.Result
	color := termui.ColorGreen
	colorName := "green"
	if result.TotalReturnPct < 0 {
		color = termui.ColorRed
		colorName = "red"
	}

	vm := BacktestVM{Title: "Backtest " + result.Ticker, LineColor: color}
	vm.Text = fmt.Sprintf("Win Rate:      %.1f%%\n", result.WinRate)
	vm.Text += fmt.Sprintf("Profit Factor: %.2f\n", result.ProfitFactor)
	vm.Text += fmt.Sprintf("[Total Return:  %+.2f%%](fg:%s)\n", result.TotalReturnPct, colorName)
	vm.Text += fmt.Sprintf("Max Drawdown:  %.2f%%\n", result.MaxDrawdownPct)
	vm.Text += fmt.Sprintf("Trades:        %d\n", result.TotalTrades)

	for _, point := range result.EquityCurve {
		vm.Series = append(vm.Series, point.Value)
	}
	return vm
}

func tradeRow(trade models.PaperTrade) string {
	entry := "      -"
	if trade.EntryPrice != nil {
		entry = fmt.Sprintf("$%6.2f", *trade.EntryPrice)
	}
	exit := "      -"
	if trade.ExitPrice != nil {
		exit = fmt.Sprintf("$%6.2f", *trade.ExitPrice)
	}
	pnl := "      -"
	if trade.PnLPct != nil {
		pnl = fmt.Sprintf("[%+.2f%%](fg:%s)", *trade.PnLPct, signColor(*trade.PnLPct))
	}
	return fmt.Sprintf("%-6s %-9s %s -> %s  %s  [%s](fg:%s)",
		trade.Ticker, trade.Strategy, entry, exit, pnl, trade.Status, statusColor(trade.Status))
}

func regimeHeader(date string, regime models.MarketRegime) string {
	return fmt.Sprintf("%s  |  Market Regime: [%s](fg:%s)", date, regime.Regime, regimeColor(regime.Regime))
}

func regimeColor(regime string) string {
	switch regime {
	case "Bullish":
		return "green"
	case "Bearish":
		return "red"
	case "Mixed":
		return "yellow"
	}
	return "white"
}

func sentimentCell(sentiment string, putCallRatio *float64) string {
	if sentiment == "" {
		sentiment = "n/a"
	}
	ratio := "P/C -"
	if putCallRatio != nil {
		ratio = fmt.Sprintf("P/C %.2f", *putCallRatio)
	}
	color := "yellow"
	switch sentiment {
	case "bullish":
		color = "green"
	case "bearish":
		color = "red"
	}
	return fmt.Sprintf("[%-7s](fg:%s) %s", sentiment, color, ratio)
}

func statusColor(status string) string {
	switch status {
	case models.TradeStatusPending:
		return "yellow"
	case models.TradeStatusOpen:
		return "cyan"
	case models.TradeStatusClosed:
		return "white"
	}
	return "white"
}

func signColor(value float64) string {
	if value < 0 {
		return "red"
	}
	return "green"
}

func dollars(value float64) string {
	if value < 0 {
		return fmt.Sprintf("-$%.2f", -value)
	}
	return fmt.Sprintf("$%.2f", value)
}

func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-1]) + "…"
}
