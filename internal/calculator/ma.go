package calculator

import (
	"errors"

	"github.com/moznion/go-optional"

	"TickerGauge/internal/model"
)

// SMAPeriod is the window of the SMA20 column.
const SMAPeriod = 20

// CalculateSMA computes the simple moving average of the given prices over the specified period.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// RollingSMA returns the simple moving average ending at every position of prices.
// Positions with fewer than period values behind them are None.
func RollingSMA(prices []float64, period int) []optional.Option[float64] {
	out := make([]optional.Option[float64], len(prices))
	for i := range prices {
		ma, err := CalculateSMA(prices[:i+1], period)
		if err != nil {
			out[i] = optional.None[float64]()
			continue
		}
		out[i] = optional.Some(ma)
	}
	return out
}

// CalculateMA20 returns the SMA20 series for daily bars.
func CalculateMA20(dailyBars []model.OHLCV) []optional.Option[float64] {
	return RollingSMA(extractCloses(dailyBars), SMAPeriod)
}

func extractCloses(bars []model.OHLCV) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}
