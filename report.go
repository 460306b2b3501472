package main

import (
	"fmt"
	"github.com/raysyhuang/gemini-STST/models"
)

// Stdout rendering for the headless commands.

func printBacktest(backtest *models.BacktestResult, strategy models.Strategy) {
	fmt.Printf("Backtest %s (%s)\n", backtest.Ticker, strategy)
	fmt.Printf("  Win Rate:      %.1f%%\n", backtest.WinRate)
	fmt.Printf("  Profit Factor: %.2f\n", backtest.ProfitFactor)
	fmt.Printf("  Total Return:  %+.2f%%\n", backtest.TotalReturnPct)
	fmt.Printf("  Max Drawdown:  %.2f%%\n", backtest.MaxDrawdownPct)
	fmt.Printf("  Trades:        %d\n", backtest.TotalTrades)
	if len(backtest.EquityCurve) > 0 {
		first := backtest.EquityCurve[0]
		last := backtest.EquityCurve[len(backtest.EquityCurve)-1]
		fmt.Printf("  Equity:        %.2f (%s) -> %.2f (%s)\n", first.Value, first.Time, last.Value, last.Time)
	}
}

func printEngineResults(results *models.EngineResultPayload) {
	regime := "unknown"
	if results.Regime != nil {
		regime = *results.Regime
	}
	fmt.Printf("%s v%s — %s (regime: %s, screened %d)\n",
		results.EngineName, results.EngineVersion, results.RunDate, regime, results.CandidatesScreened)

	if len(results.Picks) == 0 {
		fmt.Println("No picks today.")
		return
	}
	for _, pick := range results.Picks {
		fmt.Printf("  %-6s %-14s entry $%.2f", pick.Ticker, pick.Strategy, pick.EntryPrice)
		if pick.StopLoss != nil {
			fmt.Printf("  stop $%.2f", *pick.StopLoss)
		}
		if pick.TargetPrice != nil {
			fmt.Printf("  target $%.2f", *pick.TargetPrice)
		}
		fmt.Printf("  conf %.0f  hold %dd\n", pick.Confidence, pick.HoldingPeriodDays)
		if pick.Thesis != nil {
			fmt.Printf("         %s\n", *pick.Thesis)
		}
	}
}

func printPipelineState(state *models.PipelineState) {
	fmt.Printf("Pipeline: %s\n", state.Status)
	if state.RunID != nil {
		fmt.Printf("  Run:      %s\n", *state.RunID)
	}
	if state.StartedAt != nil {
		fmt.Printf("  Started:  %s\n", *state.StartedAt)
	}
	if state.FinishedAt != nil {
		fmt.Printf("  Finished: %s\n", *state.FinishedAt)
	}
	if state.Error != nil {
		fmt.Printf("  Error:    %s\n", *state.Error)
	}
}
