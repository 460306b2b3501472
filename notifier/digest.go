package notifier

import (
	"fmt"
	"github.com/raysyhuang/gemini-STST/helpers"
	"github.com/raysyhuang/gemini-STST/models"
	"strings"
)

// BuildDigest renders the daily MarkdownV2 report covering both the
// momentum and reversion screeners. Either response may be nil when its
// fetch failed; the section then reads as empty.
func BuildDigest(screener *models.ScreenerResponse, reversion *models.ReversionResponse) string {
	var lines []string

	date := ""
	regime := "Unknown"
	if screener != nil {
		date = screener.Date
		if screener.Regime.Regime != "" {
			regime = screener.Regime.Regime
		}
	}

	lines = append(lines,
		"*QuantScreener Daily Report*",
		"Date: "+helpers.EscapeMarkdownV2(date),
		"Market Regime: *"+helpers.EscapeMarkdownV2(regime)+"*",
		"")

	if regime == "Bearish" {
		lines = append(lines, helpers.EscapeMarkdownV2("⚠️ Bearish Regime — exercise caution"), "")
	}

	var momentumSignals []models.MomentumSignal
	if screener != nil {
		momentumSignals = screener.Signals
	}
	lines = append(lines, fmt.Sprintf("*— MOMENTUM BREAKOUTS \\(%d\\) —*", len(momentumSignals)), "")

	if len(momentumSignals) == 0 {
		lines = append(lines, helpers.EscapeMarkdownV2("No momentum signals today."), "")
	}
	for _, signal := range momentumSignals {
		lines = append(lines, fmt.Sprintf("*%s* — $%s",
			helpers.EscapeMarkdownV2(signal.Ticker),
			helpers.EscapeMarkdownV2(fmt.Sprintf("%.2f", signal.TriggerPrice))))
		lines = append(lines, fmt.Sprintf("  RVOL: %s \\| ATR: %s%%",
			helpers.EscapeMarkdownV2(fmt.Sprintf("%.1f", signal.RVOLAtTrigger)),
			helpers.EscapeMarkdownV2(fmt.Sprintf("%.1f", signal.ATRPctAtTrigger))))
		for i, article := range signal.News {
			if i == 2 {
				break
			}
			lines = append(lines, "  • "+helpers.EscapeMarkdownV2(article.Headline))
		}
		lines = append(lines, "")
	}

	var reversionSignals []models.ReversionSignal
	if reversion != nil {
		reversionSignals = reversion.Signals
	}
	lines = append(lines, fmt.Sprintf("*— OVERSOLD REVERSIONS \\(%d\\) —*", len(reversionSignals)), "")

	if len(reversionSignals) == 0 {
		lines = append(lines, helpers.EscapeMarkdownV2("No oversold reversals today."))
	}
	for _, signal := range reversionSignals {
		lines = append(lines, fmt.Sprintf("*%s* — $%s",
			helpers.EscapeMarkdownV2(signal.Ticker),
			helpers.EscapeMarkdownV2(fmt.Sprintf("%.2f", signal.TriggerPrice))))
		lines = append(lines, fmt.Sprintf("  RSI\\(2\\): %s \\| 3d Drop: %s%%",
			helpers.EscapeMarkdownV2(fmt.Sprintf("%.1f", signal.RSI2)),
			helpers.EscapeMarkdownV2(fmt.Sprintf("%.1f", signal.Drawdown3DPct))))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
