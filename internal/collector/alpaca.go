package collector

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"

	"TickerGauge/internal/model"
)

// alpacaBarsClient is the slice of the Alpaca market data client the fetcher needs.
type alpacaBarsClient interface {
	GetBars(symbol string, req marketdata.GetBarsRequest) ([]marketdata.Bar, error)
}

// AlpacaFetcher implements Fetcher using the Alpaca market data API.
type AlpacaFetcher struct {
	Client alpacaBarsClient
	Feed   marketdata.Feed
	now    func() time.Time
}

// NewAlpacaFetcher creates a fetcher authenticated with the given key pair.
func NewAlpacaFetcher(apiKey, apiSecret, feed string) *AlpacaFetcher {
	if feed == "" {
		feed = marketdata.IEX
	}
	return &AlpacaFetcher{
		Client: marketdata.NewClient(marketdata.ClientOpts{
			APIKey:    apiKey,
			APISecret: apiSecret,
			Feed:      feed,
		}),
		Feed: feed,
		now:  time.Now,
	}
}

func (f *AlpacaFetcher) Name() string { return "alpaca" }

func alpacaTimeFrame(interval string) (marketdata.TimeFrame, error) {
	switch interval {
	case IntervalDaily:
		return marketdata.OneDay, nil
	case "1h":
		return marketdata.OneHour, nil
	case "1m":
		return marketdata.OneMin, nil
	default:
		return marketdata.TimeFrame{}, fmt.Errorf("alpaca: unsupported interval %q", interval)
	}
}

func (f *AlpacaFetcher) FetchBars(_ context.Context, q BarQuery) ([]model.OHLCV, error) {
	tf, err := alpacaTimeFrame(q.Interval)
	if err != nil {
		return nil, err
	}
	end := f.now().UTC()
	start, err := lookbackStart(end, q.Range)
	if err != nil {
		return nil, fmt.Errorf("alpaca: %w", err)
	}

	adjustment := marketdata.Raw
	if q.Adjusted {
		adjustment = marketdata.All
	}

	raw, err := f.Client.GetBars(q.Symbol, marketdata.GetBarsRequest{
		TimeFrame:  tf,
		Adjustment: adjustment,
		Start:      start,
		End:        end,
		Feed:       f.Feed,
	})
	if err != nil {
		return nil, fmt.Errorf("alpaca fetch bars: %w", err)
	}

	loc := exchangeLocation("America/New_York")
	bars := make([]model.OHLCV, len(raw))
	for i, b := range raw {
		bars[i] = model.OHLCV{
			Time:   tradingDate(b.Timestamp, loc),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: float64(b.Volume),
		}
	}
	// Ensure chronological order
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}
