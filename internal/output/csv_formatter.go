package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/spendmax/enjoyment-calculator/internal/domain"
)

// CSVFormatter implements the delimited sweep export (one row per age),
// matching the console table column for column.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.SweepReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"retire_age", "best_monthly_spending", "total_enjoyment", "final_wealth"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range report.Results {
		record := []string{
			strconv.FormatFloat(row.RetirementAge, 'f', -1, 64),
			FormatFixed(row.BestMonthlySpending),
			FormatFixed(row.TotalEnjoyment),
			FormatFixed(row.FinalWealth),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
