package runner

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"TickerGauge/internal/collector"
	"TickerGauge/internal/notifier"
)

// DefaultSymbol is reported when no ticker is given.
const DefaultSymbol = "AAPL"

// Sender delivers a formatted report.
type Sender interface {
	Send(text string) error
}

// Runner executes the one-shot indicator report.
type Runner struct {
	Collector *collector.Collector
	Notifier  Sender
	Logger    *zap.Logger
}

// NewRunner creates a new Runner.
func NewRunner(col *collector.Collector, n Sender, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{Collector: col, Notifier: n, Logger: logger}
}

// Run fetches bars for symbol and sends either the indicator tail or a no-data notice.
// Only data source and output failures are returned as errors.
func (r *Runner) Run(ctx context.Context, symbol string) error {
	if symbol == "" {
		symbol = DefaultSymbol
	}
	r.Logger.Info("running indicator report", zap.String("symbol", symbol))

	tbl, err := r.Collector.Collect(ctx, symbol)
	if err != nil {
		return fmt.Errorf("collect %s: %w", symbol, err)
	}

	if tbl.Empty() {
		return r.Notifier.Send(notifier.FormatNoData(symbol))
	}

	r.Logger.Info("indicators computed", zap.String("symbol", symbol), zap.Int("rows", tbl.Len()))
	return r.Notifier.Send(notifier.FormatIndicatorTable(tbl, notifier.TailRows))
}
