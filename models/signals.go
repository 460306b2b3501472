package models

// NewsArticle is a headline attached to a momentum signal by the backend
type NewsArticle struct {
	Headline  string `json:"headline"`
	Source    string `json:"source"`
	URL       string `json:"url"`
	Published string `json:"published"`
}

// MarketRegime classifies the broad market as Bullish, Bearish, Mixed or Unknown
type MarketRegime struct {
	SpyAboveSMA20 *bool  `json:"spy_above_sma20"`
	QqqAboveSMA20 *bool  `json:"qqq_above_sma20"`
	Regime        string `json:"regime"`
}

// MomentumSignal is one momentum breakout from the daily screener
type MomentumSignal struct {
	Ticker           string        `json:"ticker"`
	CompanyName      string        `json:"company_name"`
	Date             string        `json:"date"`
	TriggerPrice     float64       `json:"trigger_price"`
	RVOLAtTrigger    float64       `json:"rvol_at_trigger"`
	ATRPctAtTrigger  float64       `json:"atr_pct_at_trigger"`
	OptionsSentiment string        `json:"options_sentiment"`
	PutCallRatio     *float64      `json:"put_call_ratio"`
	News             []NewsArticle `json:"news"`
}

// ReversionSignal is one oversold reversal from the daily screener
type ReversionSignal struct {
	Ticker           string   `json:"ticker"`
	CompanyName      string   `json:"company_name"`
	Date             string   `json:"date"`
	TriggerPrice     float64  `json:"trigger_price"`
	RSI2             float64  `json:"rsi2"`
	Drawdown3DPct    float64  `json:"drawdown_3d_pct"`
	SMADistancePct   float64  `json:"sma_distance_pct"`
	OptionsSentiment string   `json:"options_sentiment"`
	PutCallRatio     *float64 `json:"put_call_ratio"`
}

// ScreenerResponse is the body of GET /api/screener/today
type ScreenerResponse struct {
	Date    string           `json:"date"`
	Regime  MarketRegime     `json:"regime"`
	Signals []MomentumSignal `json:"signals"`
}

// ReversionResponse is the body of GET /api/reversion/today
type ReversionResponse struct {
	Date    string            `json:"date"`
	Regime  MarketRegime      `json:"regime"`
	Signals []ReversionSignal `json:"signals"`
}
