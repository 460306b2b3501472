package client

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/raysyhuang/gemini-STST/models"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the Gemini STST dashboard API. It never logs and never
// retries; callers decide what a failed request means for the screen.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for the API at baseURL. Every request carries the
// given timeout so a hung backend cannot pin a loading state forever.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// APIError is a non-2xx response, carrying the backend's detail message
// when the body had one.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// ScreenerToday fetches the current session's momentum signals
func (c *Client) ScreenerToday(ctx context.Context) (*models.ScreenerResponse, error) {
	var screenerResponse models.ScreenerResponse
	err := c.getJSON(ctx, "/api/screener/today", &screenerResponse)
	if err != nil {
		return nil, err
	}
	return &screenerResponse, nil
}

// ReversionToday fetches the current session's oversold reversals
func (c *Client) ReversionToday(ctx context.Context) (*models.ReversionResponse, error) {
	var reversionResponse models.ReversionResponse
	err := c.getJSON(ctx, "/api/reversion/today", &reversionResponse)
	if err != nil {
		return nil, err
	}
	return &reversionResponse, nil
}

// Backtest fetches the pre-computed backtest for one ticker and strategy
func (c *Client) Backtest(ctx context.Context, ticker string, strategy models.Strategy) (*models.BacktestResult, error) {
	if !strategy.Valid() {
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}

	var backtestResult models.BacktestResult
	path := fmt.Sprintf("/api/backtest/%s?strategy=%s", url.PathEscape(ticker), strategy)
	err := c.getJSON(ctx, path, &backtestResult)
	if err != nil {
		return nil, err
	}
	return &backtestResult, nil
}

// PaperMetrics fetches the aggregate paper-trading metrics
func (c *Client) PaperMetrics(ctx context.Context) (*models.PaperMetrics, error) {
	var paperMetrics models.PaperMetrics
	err := c.getJSON(ctx, "/api/paper/metrics", &paperMetrics)
	if err != nil {
		return nil, err
	}
	return &paperMetrics, nil
}

// PaperTrades fetches the paper trade log filtered by status ("all" for
// the full log)
func (c *Client) PaperTrades(ctx context.Context, status string) ([]models.PaperTrade, error) {
	var tradesResponse models.TradesResponse
	err := c.getJSON(ctx, "/api/paper/trades?status="+url.QueryEscape(status), &tradesResponse)
	if err != nil {
		return nil, err
	}
	return tradesResponse.Trades, nil
}

// EngineResults fetches the standardized cross-engine results payload
func (c *Client) EngineResults(ctx context.Context) (*models.EngineResultPayload, error) {
	var payload models.EngineResultPayload
	err := c.getJSON(ctx, "/api/engine/results", &payload)
	if err != nil {
		return nil, err
	}
	return &payload, nil
}

// TriggerPipeline asks the backend to run the daily screening pipeline.
// The key travels in the X-Engine-Key header.
func (c *Client) TriggerPipeline(ctx context.Context, key string) (*models.PipelineRun, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/pipeline/run", nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("X-Engine-Key", key)

	var pipelineRun models.PipelineRun
	err = c.do(req, &pipelineRun)
	if err != nil {
		return nil, err
	}
	return &pipelineRun, nil
}

// PipelineStatus fetches the last known pipeline execution state
func (c *Client) PipelineStatus(ctx context.Context) (*models.PipelineState, error) {
	var pipelineState models.PipelineState
	err := c.getJSON(ctx, "/api/pipeline/status", &pipelineState)
	if err != nil {
		return nil, err
	}
	return &pipelineState, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error requesting %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiError := &APIError{StatusCode: resp.StatusCode}
		var body struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
			apiError.Detail = body.Detail
		}
		return apiError
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding %s response: %w", req.URL.Path, err)
	}
	return nil
}
