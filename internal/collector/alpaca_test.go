package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAlpacaClient struct {
	bars   []marketdata.Bar
	err    error
	symbol string
	req    marketdata.GetBarsRequest
}

func (f *fakeAlpacaClient) GetBars(symbol string, req marketdata.GetBarsRequest) ([]marketdata.Bar, error) {
	f.symbol = symbol
	f.req = req
	return f.bars, f.err
}

func TestAlpacaFetcher_FetchBars(t *testing.T) {
	now := time.Date(2024, 7, 1, 21, 0, 0, 0, time.UTC)
	client := &fakeAlpacaClient{bars: []marketdata.Bar{
		{Timestamp: time.Date(2024, 6, 28, 4, 0, 0, 0, time.UTC), Open: 215, High: 216, Low: 210, Close: 210.62, Volume: 82542718},
		{Timestamp: time.Date(2024, 6, 27, 4, 0, 0, 0, time.UTC), Open: 214, High: 215, Low: 212, Close: 214.10, Volume: 49772707},
	}}
	f := &AlpacaFetcher{Client: client, Feed: marketdata.IEX, now: func() time.Time { return now }}

	bars, err := f.FetchBars(context.Background(), DailyQuery("AAPL"))
	require.NoError(t, err)

	assert.Equal(t, "AAPL", client.symbol)
	assert.Equal(t, marketdata.Raw, client.req.Adjustment)
	assert.Equal(t, marketdata.OneDay, client.req.TimeFrame)
	assert.True(t, now.AddDate(0, -6, 0).Equal(client.req.Start))
	assert.True(t, now.Equal(client.req.End))

	require.Len(t, bars, 2)
	assert.Equal(t, "2024-06-27", bars[0].Time.Format("2006-01-02"))
	assert.Equal(t, 214.10, bars[0].Close)
	assert.Equal(t, 210.62, bars[1].Close)
}

func TestAlpacaFetcher_Error(t *testing.T) {
	client := &fakeAlpacaClient{err: errors.New("forbidden")}
	f := &AlpacaFetcher{Client: client, now: time.Now}

	_, err := f.FetchBars(context.Background(), DailyQuery("AAPL"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")
}

func TestAlpacaFetcher_UnsupportedInterval(t *testing.T) {
	f := &AlpacaFetcher{Client: &fakeAlpacaClient{}, now: time.Now}
	q := DailyQuery("AAPL")
	q.Interval = "3wk"

	_, err := f.FetchBars(context.Background(), q)
	assert.Error(t, err)
}
