package models

// EnginePick is one standardized pick from the cross-engine results payload
type EnginePick struct {
	Ticker            string                 `json:"ticker"`
	Strategy          string                 `json:"strategy"`
	EntryPrice        float64                `json:"entry_price"`
	StopLoss          *float64               `json:"stop_loss"`
	TargetPrice       *float64               `json:"target_price"`
	Confidence        float64                `json:"confidence"`
	HoldingPeriodDays int                    `json:"holding_period_days"`
	Thesis            *string                `json:"thesis"`
	RiskFactors       []string               `json:"risk_factors"`
	RawScore          *float64               `json:"raw_score"`
	Metadata          map[string]interface{} `json:"metadata"`
}

// EngineResultPayload is the body of GET /api/engine/results
type EngineResultPayload struct {
	EngineName         string       `json:"engine_name"`
	EngineVersion      string       `json:"engine_version"`
	RunDate            string       `json:"run_date"`
	RunTimestamp       string       `json:"run_timestamp"`
	Regime             *string      `json:"regime"`
	Picks              []EnginePick `json:"picks"`
	CandidatesScreened int          `json:"candidates_screened"`
	PipelineDurationS  *float64     `json:"pipeline_duration_s"`
	Status             string       `json:"status"`
}

// PipelineRun is the acknowledgement of POST /api/pipeline/run
type PipelineRun struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	RunID   string `json:"run_id"`
	Date    string `json:"date"`
}

// PipelineState is the body of GET /api/pipeline/status.
// Status is one of idle, running, succeeded, failed.
type PipelineState struct {
	Status     string  `json:"status"`
	RunID      *string `json:"run_id"`
	StartedAt  *string `json:"started_at"`
	FinishedAt *string `json:"finished_at"`
	Error      *string `json:"error"`
}
