package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/polygon-io/client-go/rest/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAggIter struct {
	aggs []models.Agg
	pos  int
	err  error
}

func (it *fakeAggIter) Next() bool {
	if it.pos >= len(it.aggs) {
		return false
	}
	it.pos++
	return true
}

func (it *fakeAggIter) Item() models.Agg { return it.aggs[it.pos-1] }

func (it *fakeAggIter) Err() error { return it.err }

func TestPolygonFetcher_FetchBars(t *testing.T) {
	now := time.Date(2024, 7, 1, 21, 0, 0, 0, time.UTC)
	var got *models.ListAggsParams
	f := &PolygonFetcher{
		listAggs: func(_ context.Context, params *models.ListAggsParams) aggIterator {
			got = params
			return &fakeAggIter{aggs: []models.Agg{
				{Timestamp: models.Millis(time.Date(2024, 6, 27, 4, 0, 0, 0, time.UTC)), Close: 214.10, Volume: 49772707},
				{Timestamp: models.Millis(time.Date(2024, 6, 28, 4, 0, 0, 0, time.UTC)), Close: 210.62, Volume: 82542718},
			}}
		},
		now: func() time.Time { return now },
	}

	bars, err := f.FetchBars(context.Background(), DailyQuery("AAPL"))
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, "AAPL", got.Ticker)
	assert.Equal(t, models.Day, got.Timespan)
	assert.Equal(t, 1, got.Multiplier)
	require.NotNil(t, got.Adjusted)
	assert.False(t, *got.Adjusted)
	assert.True(t, time.Time(got.From).Equal(now.AddDate(0, -6, 0)))

	require.Len(t, bars, 2)
	assert.Equal(t, 214.10, bars[0].Close)
	assert.Equal(t, "2024-06-28", bars[1].Time.Format("2006-01-02"))
}

func TestPolygonFetcher_IteratorError(t *testing.T) {
	f := &PolygonFetcher{
		listAggs: func(context.Context, *models.ListAggsParams) aggIterator {
			return &fakeAggIter{err: errors.New("unauthorized")}
		},
		now: time.Now,
	}

	_, err := f.FetchBars(context.Background(), DailyQuery("AAPL"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
}

func TestPolygonFetcher_NoAggs(t *testing.T) {
	f := &PolygonFetcher{
		listAggs: func(context.Context, *models.ListAggsParams) aggIterator { return &fakeAggIter{} },
		now:      time.Now,
	}

	bars, err := f.FetchBars(context.Background(), DailyQuery("ZZZZ"))
	require.NoError(t, err)
	assert.Empty(t, bars)
}
