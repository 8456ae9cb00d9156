package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"
	_ "time/tzdata"

	"TickerGauge/internal/model"
)

// DefaultYahooBaseURL is the public Yahoo Finance query host.
const DefaultYahooBaseURL = "https://query1.finance.yahoo.com"

// YahooFetcher implements Fetcher using Yahoo Finance public API.
type YahooFetcher struct {
	BaseURL   string
	UserAgent string
	Client    *http.Client
}

// NewYahooFetcher creates a new Yahoo Finance fetcher with optional proxy support.
func NewYahooFetcher(baseURL, userAgent, proxyURL string) *YahooFetcher {
	if baseURL == "" {
		baseURL = DefaultYahooBaseURL
	}
	if userAgent == "" {
		userAgent = "Mozilla/5.0"
	}
	return &YahooFetcher{
		BaseURL:   baseURL,
		UserAgent: userAgent,
		Client:    newHTTPClient(proxyURL),
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// newHTTPClient builds a client with the shared timeout and an optional proxy.
func newHTTPClient(proxyURL string) *http.Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &http.Client{
		Timeout:   30 * time.Second,
		Transport: transport,
	}
}

// yahooChart is the response structure from Yahoo Finance chart API.
// Quote values are pointers because Yahoo sends null for missing sessions.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol               string `json:"symbol"`
				ExchangeTimezoneName string `json:"exchangeTimezoneName"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// yahooNotFound is the chart error code Yahoo returns for unknown or delisted symbols.
const yahooNotFound = "Not Found"

func valueAt(vals []*float64, i int) (float64, bool) {
	if i >= len(vals) || vals[i] == nil {
		return 0, false
	}
	return *vals[i], true
}

// FetchBars downloads daily bars from the chart endpoint. The quote close is
// split-adjusted only, which is what an unadjusted query asks for.
func (f *YahooFetcher) FetchBars(ctx context.Context, q BarQuery) ([]model.OHLCV, error) {
	params := url.Values{}
	params.Set("range", q.Range)
	params.Set("interval", q.Interval)
	params.Set("includePrePost", "false")
	params.Set("events", "div,splits")
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", f.BaseURL, url.PathEscape(q.Symbol), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.UserAgent)

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}

	var chart yahooChart
	decodeErr := json.Unmarshal(body, &chart)
	if decodeErr == nil && chart.Chart.Error != nil && chart.Chart.Error.Code == yahooNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("yahoo decode: %w", decodeErr)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, nil
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	loc := exchangeLocation(result.Meta.ExchangeTimezoneName)
	bars := make([]model.OHLCV, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		c, ok := valueAt(quote.Close, i)
		if !ok {
			continue // null session (holiday, halted day)
		}
		o, _ := valueAt(quote.Open, i)
		h, _ := valueAt(quote.High, i)
		l, _ := valueAt(quote.Low, i)
		v, _ := valueAt(quote.Volume, i)
		bars = append(bars, model.OHLCV{
			Time:   tradingDate(time.Unix(ts, 0), loc),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: v,
		})
	}

	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return dedupeByDate(bars), nil
}

func exchangeLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// tradingDate truncates t to midnight of its calendar day in loc.
func tradingDate(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// dedupeByDate keeps the last bar of each trading date. Yahoo appends a live
// bar for the current session that can share a date with the last daily bar.
func dedupeByDate(bars []model.OHLCV) []model.OHLCV {
	if len(bars) < 2 {
		return bars
	}
	out := bars[:1]
	for _, b := range bars[1:] {
		if b.Time.Equal(out[len(out)-1].Time) {
			out[len(out)-1] = b
			continue
		}
		out = append(out, b)
	}
	return out
}
