package model

import (
	"time"

	"github.com/moznion/go-optional"
)

// Column names of an indicator table, in display order.
const (
	ColumnClose = "Close"
	ColumnSMA20 = "SMA20"
	ColumnRSI14 = "RSI14"
)

// IndicatorRow is the derived view of one trading day.
// SMA20 and RSI14 are None until enough history exists.
type IndicatorRow struct {
	Time  time.Time
	Close float64
	SMA20 optional.Option[float64]
	RSI14 optional.Option[float64]
}

// IndicatorTable holds one row per input bar, in the same order.
type IndicatorTable struct {
	Symbol string
	Rows   []IndicatorRow
}

func (t *IndicatorTable) Len() int { return len(t.Rows) }

func (t *IndicatorTable) Empty() bool { return len(t.Rows) == 0 }

// Columns returns the value columns of the table.
func (t *IndicatorTable) Columns() []string {
	return []string{ColumnClose, ColumnSMA20, ColumnRSI14}
}

// Tail returns the last n rows in chronological order.
func (t *IndicatorTable) Tail(n int) []IndicatorRow {
	if n <= 0 {
		return nil
	}
	start := len(t.Rows) - n
	if start < 0 {
		start = 0
	}
	return t.Rows[start:]
}
