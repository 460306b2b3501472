package ui

import (
	"context"
	"errors"
	"fmt"
	"github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"github.com/raysyhuang/gemini-STST/client"
	"github.com/raysyhuang/gemini-STST/helpers"
	"github.com/raysyhuang/gemini-STST/models"
	"time"
)

// Panel layout. The signal tables start one row below their border.
const (
	headerHeight = 3
	tableTop     = headerHeight
	tableBottom  = 20
	panelRight   = 110
	tableRight   = 68
)

type UserInterface struct {
	client          *client.Client
	state           *AppState
	refreshInterval time.Duration
	msgs            chan interface{}
	cancelBacktest  context.CancelFunc
}

func NewUserInterface(cl *client.Client, refreshInterval time.Duration) *UserInterface {
	return &UserInterface{
		client:          cl,
		state:           NewAppState(),
		refreshInterval: refreshInterval,
		msgs:            make(chan interface{}, 16),
	}
}

// SwitchView makes the given panel active. Entering the performance view
// triggers one metrics fetch and one trades fetch.
func (ui *UserInterface) SwitchView(view View) {
	if !view.Valid() {
		return
	}
	ui.state.ActiveView = view
	if view == ViewPerformance {
		ui.fetchPerformance()
	}
}

// SelectSignal highlights the given row and loads its backtest. Selecting
// a reversion signal hides the news pane; momentum signals show it.
func (ui *UserInterface) SelectSignal(view View, index int) {
	ticker := ui.signalTicker(view, index)
	if ticker == "" {
		return
	}
	ui.state.Cursor[view] = index
	ui.state.ShowNews = view == ViewMomentum
	ui.LoadBacktest(ticker, view.Strategy())
}

// LoadBacktest marks the backtest pane loading and fetches the result,
// cancelling whatever request was still in flight for the previous pick.
func (ui *UserInterface) LoadBacktest(ticker string, strategy models.Strategy) {
	if ui.cancelBacktest != nil {
		ui.cancelBacktest()
	}
	ctx, cancel := context.WithCancel(context.Background())
	ui.cancelBacktest = cancel

	ui.state.Backtest = BacktestPanel{Ticker: ticker, Loading: true}
	go func() {
		result, err := ui.client.Backtest(ctx, ticker, strategy)
		ui.msgs <- backtestMsg{ticker: ticker, result: result, err: err}
	}()
}

func (ui *UserInterface) fetchScreener() {
	go func() {
		screener, err := ui.client.ScreenerToday(context.Background())
		ui.msgs <- screenerMsg{screener: screener, err: err}
	}()
}

func (ui *UserInterface) fetchReversion() {
	go func() {
		reversion, err := ui.client.ReversionToday(context.Background())
		ui.msgs <- reversionMsg{reversion: reversion, err: err}
	}()
}

func (ui *UserInterface) fetchPerformance() {
	go func() {
		metrics, err := ui.client.PaperMetrics(context.Background())
		ui.msgs <- metricsMsg{metrics: metrics, err: err}
	}()
	go func() {
		trades, err := ui.client.PaperTrades(context.Background(), "all")
		ui.msgs <- tradesMsg{trades: trades, err: err}
	}()
}

func (ui *UserInterface) refreshActive() {
	switch ui.state.ActiveView {
	case ViewMomentum:
		ui.fetchScreener()
	case ViewReversion:
		ui.fetchReversion()
	case ViewPerformance:
		ui.fetchPerformance()
	}
}

// handleMsg folds a fetch result into the state. Failures keep whatever
// was on screen and only hit the log.
func (ui *UserInterface) handleMsg(msg interface{}) {
	switch m := msg.(type) {
	case screenerMsg:
		if m.err != nil {
			helpers.Logger.Errorln("ui: screener fetch failed: " + m.err.Error())
			return
		}
		ui.state.Screener = m.screener
	case reversionMsg:
		if m.err != nil {
			helpers.Logger.Errorln("ui: reversion fetch failed: " + m.err.Error())
			return
		}
		ui.state.Reversion = m.reversion
	case metricsMsg:
		if m.err != nil {
			helpers.Logger.Errorln("ui: metrics fetch failed: " + m.err.Error())
			return
		}
		ui.state.Metrics = m.metrics
	case tradesMsg:
		if m.err != nil {
			helpers.Logger.Errorln("ui: trades fetch failed: " + m.err.Error())
			return
		}
		ui.state.Trades = m.trades
	case backtestMsg:
		ui.handleBacktestMsg(m)
	}
}

func (ui *UserInterface) handleBacktestMsg(m backtestMsg) {
	// the user moved on to another ticker; this response is stale
	if m.ticker != ui.state.Backtest.Ticker {
		return
	}
	if errors.Is(m.err, context.Canceled) {
		return
	}

	panel := BacktestPanel{Ticker: m.ticker}
	if m.err != nil {
		var apiError *client.APIError
		if errors.As(m.err, &apiError) {
			panel.Detail = apiError.Error()
		} else {
			panel.Detail = "Backtest unavailable"
			helpers.Logger.Errorln("ui: backtest fetch failed: " + m.err.Error())
		}
	} else {
		panel.Result = m.result
	}
	ui.state.Backtest = panel
}

func (ui *UserInterface) moveCursor(delta int) {
	view := ui.state.ActiveView
	count := ui.signalCount(view)
	if count == 0 {
		return
	}
	cursor := ui.state.Cursor[view] + delta
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= count {
		cursor = count - 1
	}
	ui.state.Cursor[view] = cursor
}

func (ui *UserInterface) signalCount(view View) int {
	switch view {
	case ViewMomentum:
		if ui.state.Screener != nil {
			return len(ui.state.Screener.Signals)
		}
	case ViewReversion:
		if ui.state.Reversion != nil {
			return len(ui.state.Reversion.Signals)
		}
	}
	return 0
}

func (ui *UserInterface) signalTicker(view View, index int) string {
	if index < 0 || index >= ui.signalCount(view) {
		return ""
	}
	if view == ViewReversion {
		return ui.state.Reversion.Signals[index].Ticker
	}
	return ui.state.Screener.Signals[index].Ticker
}

// Run drives the dashboard until the user quits. Fetch goroutines and key
// events funnel into one select loop, so the state is only ever touched
// from here.
func (ui *UserInterface) Run() error {
	if err := termui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	defer termui.Close()

	ui.fetchScreener()
	ui.fetchReversion()
	ui.repaint()

	uiEvents := termui.PollEvents()
	refresh := make(<-chan time.Time)
	if ui.refreshInterval > 0 {
		refreshTicker := time.NewTicker(ui.refreshInterval)
		defer refreshTicker.Stop()
		refresh = refreshTicker.C
	}

	for {
		select {
		case e := <-uiEvents:
			switch e.ID {
			case "q", "<C-c>":
				helpers.Logger.Infoln("Exited by keyboard interrupt")
				return nil
			case "1":
				ui.SwitchView(ViewMomentum)
			case "2":
				ui.SwitchView(ViewReversion)
			case "3":
				ui.SwitchView(ViewPerformance)
			case "j", "<Down>":
				ui.moveCursor(1)
			case "k", "<Up>":
				ui.moveCursor(-1)
			case "<Enter>":
				ui.SelectSignal(ui.state.ActiveView, ui.state.Cursor[ui.state.ActiveView])
			case "<MouseLeft>":
				if mouse, ok := e.Payload.(termui.Mouse); ok {
					ui.SelectSignal(ui.state.ActiveView, mouse.Y-tableTop-1)
				}
			case "g":
				ui.refreshActive()
			}
			ui.repaint()
		case msg := <-ui.msgs:
			ui.handleMsg(msg)
			ui.repaint()
		case <-refresh:
			ui.refreshActive()
		}
	}
}

func (ui *UserInterface) repaint() {
	termui.Clear()
	switch ui.state.ActiveView {
	case ViewMomentum:
		ui.paintSignals(RenderMomentum(ui.state), RenderNews(ui.state), RenderBacktest(ui.state))
	case ViewReversion:
		ui.paintSignals(RenderReversion(ui.state), RenderNews(ui.state), RenderBacktest(ui.state))
	case ViewPerformance:
		ui.paintPerformance(RenderPerformance(ui.state))
	}
}

func (ui *UserInterface) paintSignals(table SignalTableVM, news NewsVM, backtest BacktestVM) {
	headerParagraph := widgets.NewParagraph()
	headerParagraph.Block.Title = "Gemini STST"
	headerParagraph.TitleStyle.Fg = termui.ColorYellow
	headerParagraph.Text = table.Header
	headerParagraph.SetRect(0, 0, panelRight, headerHeight)

	signalsList := widgets.NewList()
	signalsList.Block.Title = table.Title
	signalsList.BorderStyle.Fg = termui.ColorYellow
	configureSignalList(signalsList, table)
	signalsList.SetRect(0, tableTop, tableRight, tableBottom)

	drawables := []termui.Drawable{headerParagraph, signalsList}

	if news.Visible {
		newsList := widgets.NewList()
		newsList.Block.Title = news.Title
		newsList.Rows = news.Rows
		newsList.SetRect(0, tableBottom, tableRight, 28)
		drawables = append(drawables, newsList)
	}

	backtestParagraph := widgets.NewParagraph()
	backtestParagraph.Block.Title = backtest.Title
	if backtest.Failed {
		backtestParagraph.TitleStyle.Fg = termui.ColorRed
	}
	backtestParagraph.Text = backtest.Text
	backtestParagraph.SetRect(tableRight, tableTop, panelRight, 12)
	drawables = append(drawables, backtestParagraph)

	// the Plot widget cannot draw fewer than two points
	if len(backtest.Series) >= 2 {
		equityPlot := widgets.NewPlot()
		equityPlot.Block.Title = "Equity Curve"
		equityPlot.Data = [][]float64{backtest.Series}
		equityPlot.LineColors = []termui.Color{backtest.LineColor}
		equityPlot.AxesColor = termui.ColorWhite
		equityPlot.SetRect(tableRight, 12, panelRight, 28)
		drawables = append(drawables, equityPlot)
	}

	termui.Render(drawables...)
}

// configureSignalList fills a list from the table view-model. The highlight
// style is only applied once a row has actually been selected, so nothing
// paints highlighted before the first selection.
func configureSignalList(list *widgets.List, table SignalTableVM) {
	if len(table.Rows) == 0 {
		list.Rows = []string{table.EmptyText}
		return
	}
	list.Rows = table.Rows
	if table.SelectedRow >= 0 && table.SelectedRow < len(table.Rows) {
		list.SelectedRow = table.SelectedRow
		list.SelectedRowStyle = termui.NewStyle(termui.ColorBlack, termui.ColorYellow)
	}
}

func (ui *UserInterface) paintPerformance(performance PerformanceVM) {
	headerParagraph := widgets.NewParagraph()
	headerParagraph.Block.Title = "Gemini STST"
	headerParagraph.TitleStyle.Fg = termui.ColorYellow
	headerParagraph.Text = "Paper Trading Performance [3]"
	headerParagraph.SetRect(0, 0, panelRight, headerHeight)

	drawables := []termui.Drawable{headerParagraph}

	if performance.EmptyText != "" {
		emptyParagraph := widgets.NewParagraph()
		emptyParagraph.Text = performance.EmptyText
		emptyParagraph.SetRect(0, headerHeight, panelRight, headerHeight+3)
		termui.Render(append(drawables, emptyParagraph)...)
		return
	}

	cardWidth := panelRight / len(performance.Cards)
	for i, card := range performance.Cards {
		cardParagraph := widgets.NewParagraph()
		cardParagraph.Block.Title = card.Title
		cardParagraph.Text = card.Text
		cardParagraph.SetRect(i*cardWidth, headerHeight, (i+1)*cardWidth, headerHeight+3)
		drawables = append(drawables, cardParagraph)
	}

	breakdownParagraph := widgets.NewParagraph()
	breakdownParagraph.Block.Title = "By Strategy"
	breakdownParagraph.Text = performance.Breakdown
	breakdownParagraph.SetRect(0, headerHeight+3, panelRight, headerHeight+6)
	drawables = append(drawables, breakdownParagraph)

	tradesList := widgets.NewList()
	tradesList.Block.Title = "Trade Log"
	tradesList.Rows = performance.TradeRows
	if len(tradesList.Rows) == 0 {
		tradesList.Rows = []string{"No paper trades yet."}
	}
	tradesList.SetRect(0, headerHeight+6, panelRight, 28)
	drawables = append(drawables, tradesList)

	termui.Render(drawables...)
}
