package collector

import (
	"context"

	"TickerGauge/internal/model"
)

// Lookback and bar size of the daily query.
const (
	RangeSixMonths = "6mo"
	IntervalDaily  = "1d"
)

// BarQuery describes a historical bar request.
type BarQuery struct {
	Symbol   string
	Range    string // e.g. "6mo"
	Interval string // e.g. "1d"
	Adjusted bool   // false requests raw closes
}

// DailyQuery returns the six-month unadjusted daily query for symbol.
func DailyQuery(symbol string) BarQuery {
	return BarQuery{
		Symbol:   symbol,
		Range:    RangeSixMonths,
		Interval: IntervalDaily,
		Adjusted: false,
	}
}

// Fetcher defines the interface for fetching market data.
// An unknown symbol yields an empty slice, not an error.
type Fetcher interface {
	FetchBars(ctx context.Context, q BarQuery) ([]model.OHLCV, error)
	Name() string
}
