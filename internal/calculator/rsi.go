package calculator

import (
	"github.com/moznion/go-optional"

	"TickerGauge/internal/model"
)

// RSIPeriod is the window of the RSI14 column.
const RSIPeriod = 14

// Deltas returns the day-over-day change of prices. The first position has no prior day.
func Deltas(prices []float64) []optional.Option[float64] {
	out := make([]optional.Option[float64], len(prices))
	for i := range prices {
		if i == 0 {
			out[i] = optional.None[float64]()
			continue
		}
		out[i] = optional.Some(prices[i] - prices[i-1])
	}
	return out
}

// RollingRSI computes the RSI at every position of prices.
//
// Average gain and loss are plain means over the trailing period changes, not
// Wilder-smoothed. A position is None until period changes exist, and also when
// both averages are zero. A zero average loss with a positive average gain is 100.
func RollingRSI(prices []float64, period int) []optional.Option[float64] {
	out := make([]optional.Option[float64], len(prices))
	deltas := Deltas(prices)
	for i := range prices {
		out[i] = optional.None[float64]()
		if period <= 0 || i < period {
			continue
		}

		var avgGain, avgLoss float64
		for _, d := range deltas[i-period+1 : i+1] {
			change := d.TakeOr(0)
			if change > 0 {
				avgGain += change
			} else {
				avgLoss -= change
			}
		}
		avgGain /= float64(period)
		avgLoss /= float64(period)

		if rsi, ok := rsiFromAverages(avgGain, avgLoss); ok {
			out[i] = optional.Some(rsi)
		}
	}
	return out
}

func rsiFromAverages(avgGain, avgLoss float64) (float64, bool) {
	switch {
	case avgLoss == 0 && avgGain == 0:
		return 0, false
	case avgLoss == 0:
		return 100.0, true
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs), true
}

// CalculateRSI14 returns the RSI14 series for daily bars.
func CalculateRSI14(dailyBars []model.OHLCV) []optional.Option[float64] {
	return RollingRSI(extractCloses(dailyBars), RSIPeriod)
}
