package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func tableOf(n int) *IndicatorTable {
	t := &IndicatorTable{Symbol: "AAPL"}
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		t.Rows = append(t.Rows, IndicatorRow{Time: start.AddDate(0, 0, i), Close: float64(i)})
	}
	return t
}

func TestIndicatorTable_Tail(t *testing.T) {
	tests := []struct {
		rows, n, want int
	}{
		{0, 5, 0},
		{3, 5, 3},
		{5, 5, 5},
		{120, 5, 5},
		{10, 0, 0},
	}
	for _, tt := range tests {
		got := tableOf(tt.rows).Tail(tt.n)
		assert.Lenf(t, got, tt.want, "rows=%d n=%d", tt.rows, tt.n)
	}
}

func TestIndicatorTable_TailIsChronological(t *testing.T) {
	tail := tableOf(8).Tail(5)
	for i, r := range tail {
		assert.Equal(t, float64(3+i), r.Close)
	}
}

