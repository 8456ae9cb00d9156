package collector

import (
	"context"
	"fmt"
	"sort"
	"time"

	polygon "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"

	"TickerGauge/internal/model"
)

// aggIterator matches the paging iterator returned by the Polygon REST client.
type aggIterator interface {
	Next() bool
	Item() models.Agg
	Err() error
}

// PolygonFetcher implements Fetcher using Polygon aggregate bars.
type PolygonFetcher struct {
	listAggs func(ctx context.Context, params *models.ListAggsParams) aggIterator
	now      func() time.Time
}

// NewPolygonFetcher creates a fetcher for the given API key.
func NewPolygonFetcher(apiKey string) *PolygonFetcher {
	client := polygon.New(apiKey)
	return &PolygonFetcher{
		listAggs: func(ctx context.Context, params *models.ListAggsParams) aggIterator {
			return client.ListAggs(ctx, params)
		},
		now: time.Now,
	}
}

func (f *PolygonFetcher) Name() string { return "polygon" }

func polygonTimespan(interval string) (models.Timespan, error) {
	switch interval {
	case IntervalDaily:
		return models.Day, nil
	case "1h":
		return models.Hour, nil
	case "1m":
		return models.Minute, nil
	default:
		return "", fmt.Errorf("polygon: unsupported interval %q", interval)
	}
}

func (f *PolygonFetcher) FetchBars(ctx context.Context, q BarQuery) ([]model.OHLCV, error) {
	timespan, err := polygonTimespan(q.Interval)
	if err != nil {
		return nil, err
	}
	end := f.now()
	start, err := lookbackStart(end, q.Range)
	if err != nil {
		return nil, fmt.Errorf("polygon: %w", err)
	}

	params := models.ListAggsParams{
		Ticker:     q.Symbol,
		Multiplier: 1,
		Timespan:   timespan,
		From:       models.Millis(start),
		To:         models.Millis(end),
	}.WithAdjusted(q.Adjusted).WithOrder(models.Asc)

	iter := f.listAggs(ctx, params)
	loc := exchangeLocation("America/New_York")
	var bars []model.OHLCV
	for iter.Next() {
		agg := iter.Item()
		bars = append(bars, model.OHLCV{
			Time:   tradingDate(time.Time(agg.Timestamp), loc),
			Open:   agg.Open,
			High:   agg.High,
			Low:    agg.Low,
			Close:  agg.Close,
			Volume: agg.Volume,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("polygon list aggs: %w", err)
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}
