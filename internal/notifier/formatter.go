package notifier

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"

	"TickerGauge/internal/model"
)

// TailRows is the number of most recent rows in a report.
const TailRows = 5

// NoValue is rendered for indicator cells that are not yet computable.
const NoValue = "NaN"

const dateLayout = "2006-01-02"

// FormatNoData formats the message for a symbol without any bars.
func FormatNoData(symbol string) string {
	return fmt.Sprintf("No data downloaded for %s.", symbol)
}

// FormatIndicatorTable renders the last rows of the table as plain text:
// a Date column followed by the table's value columns.
func FormatIndicatorTable(t *model.IndicatorTable, rows int) string {
	headers := append([]string{"Date"}, t.Columns()...)

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(false).
		BorderColumn(true).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if col > 0 {
				s = s.Align(lipgloss.Right)
			}
			return s
		})

	for _, r := range t.Tail(rows) {
		tbl.Row(
			r.Time.Format(dateLayout),
			formatFloat(r.Close),
			formatOption(r.SMA20),
			formatOption(r.RSI14),
		)
	}
	return tbl.String()
}

func formatFloat(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(6)
}

func formatOption(v optional.Option[float64]) string {
	if v.IsNone() {
		return NoValue
	}
	return formatFloat(v.Unwrap())
}
