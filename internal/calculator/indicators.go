package calculator

import "TickerGauge/internal/model"

// ComputeIndicators derives the close, SMA20 and RSI14 columns for every bar.
// The returned table has exactly one row per bar, in bar order.
func ComputeIndicators(symbol string, dailyBars []model.OHLCV) *model.IndicatorTable {
	sma := CalculateMA20(dailyBars)
	rsi := CalculateRSI14(dailyBars)

	rows := make([]model.IndicatorRow, len(dailyBars))
	for i, b := range dailyBars {
		rows[i] = model.IndicatorRow{
			Time:  b.Time,
			Close: b.Close,
			SMA20: sma[i],
			RSI14: rsi[i],
		}
	}
	return &model.IndicatorTable{Symbol: symbol, Rows: rows}
}
