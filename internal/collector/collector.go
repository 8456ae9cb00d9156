package collector

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"TickerGauge/internal/calculator"
	"TickerGauge/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price     float64
	Count     int
	DailyData []model.OHLCV
	Err       error

	// LastQuery records the most recent query.
	LastQuery BarQuery
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBars(_ context.Context, q BarQuery) ([]model.OHLCV, error) {
	m.LastQuery = q
	if m.Err != nil {
		return nil, m.Err
	}
	if m.DailyData != nil {
		return m.DailyData, nil
	}
	return generateMockBars(m.Price, m.Count), nil
}

func generateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   start.AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector orchestrates data fetching and indicator computation.
type Collector struct {
	Fetcher Fetcher
	Logger  *zap.Logger
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{Fetcher: fetcher, Logger: logger}
}

// FetchSeries downloads six months of unadjusted daily bars for symbol.
func (c *Collector) FetchSeries(ctx context.Context, symbol string) (*model.PriceSeries, error) {
	q := DailyQuery(symbol)
	c.Logger.Debug("fetching bars",
		zap.String("source", c.Fetcher.Name()),
		zap.String("symbol", q.Symbol),
		zap.String("range", q.Range),
		zap.String("interval", q.Interval),
	)
	bars, err := c.Fetcher.FetchBars(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars: %w", err)
	}
	c.Logger.Debug("fetched bars", zap.String("symbol", symbol), zap.Int("bars", len(bars)))
	return &model.PriceSeries{Symbol: symbol, DailyBars: bars, FetchedAt: time.Now()}, nil
}

// Collect fetches market data and computes the indicator table.
// A symbol with no bars yields an empty table and a nil error.
func (c *Collector) Collect(ctx context.Context, symbol string) (*model.IndicatorTable, error) {
	series, err := c.FetchSeries(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if len(series.DailyBars) == 0 {
		c.Logger.Info("no bars returned", zap.String("symbol", symbol), zap.String("source", c.Fetcher.Name()))
		return &model.IndicatorTable{Symbol: symbol}, nil
	}
	return calculator.ComputeIndicators(symbol, series.DailyBars), nil
}
