package main

import (
	"context"
	"fmt"
	"github.com/raysyhuang/gemini-STST/client"
	"github.com/raysyhuang/gemini-STST/config"
	"github.com/raysyhuang/gemini-STST/helpers"
	"github.com/raysyhuang/gemini-STST/models"
	"github.com/raysyhuang/gemini-STST/notifier"
	"github.com/raysyhuang/gemini-STST/ui"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"os"
)

func main() {
	app := &cli.App{
		Name:  "stst",
		Usage: "terminal dashboard for the Gemini STST trading-signal screener",
		Commands: []*cli.Command{
			{
				Name:   "dashboard",
				Usage:  "run the interactive terminal dashboard",
				Action: runDashboard,
			},
			{
				Name:   "notify",
				Usage:  "send the Telegram daily digest",
				Action: runNotify,
			},
			{
				Name:      "backtest",
				Usage:     "print the backtest for one ticker",
				ArgsUsage: "TICKER",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "strategy", Value: "momentum", Usage: "momentum or reversion"},
				},
				Action: runBacktest,
			},
			{
				Name:   "picks",
				Usage:  "print today's standardized engine picks",
				Action: runPicks,
			},
			{
				Name:  "pipeline",
				Usage: "operate the daily screening pipeline",
				Subcommands: []*cli.Command{
					{
						Name:   "run",
						Usage:  "trigger a pipeline run",
						Action: runPipelineTrigger,
					},
					{
						Name:   "status",
						Usage:  "print the last known pipeline state",
						Action: runPipelineStatus,
					},
				},
			},
		},
		Action: runDashboard,
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatalln(err)
	}
}

func runDashboard(c *cli.Context) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}
	if err := helpers.Setup(settings.LogFile, settings.LogLevel); err != nil {
		return err
	}
	helpers.Logger.Infoln("🖖🏻 Gemini STST dashboard started")

	cl := client.New(settings.APIBaseURL, settings.RequestTimeout)
	dashboard := ui.NewUserInterface(cl, settings.RefreshInterval)
	return dashboard.Run()
}

func runNotify(c *cli.Context) error {
	settings, cl, err := setup()
	if err != nil {
		return err
	}

	n, err := notifier.NewNotifier(settings.TelegramToken, settings.TelegramChatID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), settings.RequestTimeout)
	defer cancel()

	screener, err := cl.ScreenerToday(ctx)
	if err != nil {
		helpers.Logger.Errorln("notify: screener fetch failed: " + err.Error())
		return err
	}
	reversion, err := cl.ReversionToday(ctx)
	if err != nil {
		helpers.Logger.Warnln("notify: reversion fetch failed: " + err.Error())
		reversion = nil
	}

	if err := n.Send(notifier.BuildDigest(screener, reversion)); err != nil {
		return err
	}
	helpers.Logger.Infoln("Telegram digest sent")
	fmt.Println("Digest sent.")
	return nil
}

func runBacktest(c *cli.Context) error {
	settings, cl, err := setup()
	if err != nil {
		return err
	}

	ticker := c.Args().First()
	if ticker == "" {
		return fmt.Errorf("usage: stst backtest TICKER [--strategy momentum|reversion]")
	}
	strategy := models.Strategy(c.String("strategy"))
	if !strategy.Valid() {
		return fmt.Errorf("unknown strategy %q", strategy)
	}

	ctx, cancel := context.WithTimeout(context.Background(), settings.RequestTimeout)
	defer cancel()

	backtest, err := cl.Backtest(ctx, ticker, strategy)
	if err != nil {
		return err
	}
	printBacktest(backtest, strategy)
	return nil
}

func runPicks(c *cli.Context) error {
	settings, cl, err := setup()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), settings.RequestTimeout)
	defer cancel()

	results, err := cl.EngineResults(ctx)
	if err != nil {
		return err
	}
	printEngineResults(results)
	return nil
}

func runPipelineTrigger(c *cli.Context) error {
	settings, cl, err := setup()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), settings.RequestTimeout)
	defer cancel()

	run, err := cl.TriggerPipeline(ctx, settings.EngineAPIKey)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s (run %s, %s)\n", run.Status, run.Message, run.RunID, run.Date)
	return nil
}

func runPipelineStatus(c *cli.Context) error {
	settings, cl, err := setup()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), settings.RequestTimeout)
	defer cancel()

	state, err := cl.PipelineStatus(ctx)
	if err != nil {
		return err
	}
	printPipelineState(state)
	return nil
}

func setup() (*config.Settings, *client.Client, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := helpers.Setup(settings.LogFile, settings.LogLevel); err != nil {
		return nil, nil, err
	}
	return settings, client.New(settings.APIBaseURL, settings.RequestTimeout), nil
}
