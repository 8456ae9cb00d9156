package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"TickerGauge/internal/collector"
	"TickerGauge/internal/config"
	"TickerGauge/internal/logger"
	"TickerGauge/internal/notifier"
	"TickerGauge/internal/runner"
)

func newFetcher(cfg *config.Config) collector.Fetcher {
	switch cfg.DataSource.Provider {
	case config.ProviderAlpaca:
		return collector.NewAlpacaFetcher(cfg.Alpaca.APIKey, cfg.Alpaca.APISecret, cfg.Alpaca.Feed)
	case config.ProviderPolygon:
		return collector.NewPolygonFetcher(cfg.Polygon.APIKey)
	default:
		return collector.NewYahooFetcher(cfg.DataSource.BaseURL, cfg.DataSource.UserAgent, cfg.Proxy)
	}
}

// reportAction loads configuration, wires the collector and prints the report.
func reportAction(ctx context.Context, cmd *cli.Command) error {
	symbol := cmd.Args().First()
	if symbol == "" {
		symbol = runner.DefaultSymbol
	}

	cfg, err := config.Load(config.Path())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	fetcher := newFetcher(cfg)
	log.Debug("data source selected", zap.String("source", fetcher.Name()))

	r := runner.NewRunner(
		collector.NewCollector(fetcher, log),
		notifier.NewConsoleNotifier(os.Stdout),
		log,
	)
	if err := r.Run(ctx, symbol); err != nil {
		log.Error("report failed", zap.String("symbol", symbol), zap.Error(err))
		return err
	}
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:      "gauge",
		Usage:     "Print close, SMA20 and RSI14 for the last five trading days",
		ArgsUsage: "[ticker]",
		Action:    reportAction,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
