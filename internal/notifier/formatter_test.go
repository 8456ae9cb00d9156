package notifier

import (
	"strings"
	"testing"
	"time"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TickerGauge/internal/model"
)

func sampleTable(n int) *model.IndicatorTable {
	tbl := &model.IndicatorTable{Symbol: "AAPL"}
	start := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		row := model.IndicatorRow{
			Time:  start.AddDate(0, 0, i),
			Close: 190 + float64(i),
			SMA20: optional.None[float64](),
			RSI14: optional.None[float64](),
		}
		if i >= 2 {
			row.SMA20 = optional.Some(185.25)
			row.RSI14 = optional.Some(61.5)
		}
		tbl.Rows = append(tbl.Rows, row)
	}
	return tbl
}

func dataLines(out string) []string {
	var lines []string
	for _, l := range strings.Split(out, "\n") {
		if strings.Contains(l, "2024-") {
			lines = append(lines, l)
		}
	}
	return lines
}

func TestFormatNoData(t *testing.T) {
	assert.Equal(t, "No data downloaded for ZZZZ.", FormatNoData("ZZZZ"))
}

func TestFormatIndicatorTable_LastFiveRows(t *testing.T) {
	out := FormatIndicatorTable(sampleTable(8), TailRows)

	lines := dataLines(out)
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "2024-06-06")
	assert.Contains(t, lines[4], "2024-06-10")
	assert.NotContains(t, out, "2024-06-05")

	assert.Contains(t, lines[4], "197.000000")
	assert.Contains(t, lines[4], "185.250000")
	assert.Contains(t, lines[4], "61.500000")
}

func TestFormatIndicatorTable_ColumnOrder(t *testing.T) {
	out := FormatIndicatorTable(sampleTable(1), TailRows)
	header := strings.Split(out, "\n")
	var headerLine string
	for _, l := range header {
		if strings.Contains(l, "Close") {
			headerLine = l
			break
		}
	}
	require.NotEmpty(t, headerLine)

	d := strings.Index(headerLine, "Date")
	c := strings.Index(headerLine, "Close")
	s := strings.Index(headerLine, "SMA20")
	r := strings.Index(headerLine, "RSI14")
	assert.True(t, d < c && c < s && s < r, headerLine)
}

func TestFormatIndicatorTable_FewRowsAndNoValue(t *testing.T) {
	out := FormatIndicatorTable(sampleTable(2), TailRows)
	lines := dataLines(out)
	require.Len(t, lines, 2)
	assert.Equal(t, 2, strings.Count(lines[0], NoValue))
	assert.Contains(t, lines[1], "191.000000")
}
