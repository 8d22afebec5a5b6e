package output

import (
	"bytes"
	"fmt"

	"github.com/spendmax/enjoyment-calculator/internal/domain"
)

// ConsoleFormatter renders the sweep as a human-readable table, one row per
// retirement age.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.SweepReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "MAX FEASIBLE MONTHLY SPENDING BY RETIREMENT AGE")
	fmt.Fprintln(&buf, "===============================================")
	fmt.Fprintf(&buf, "Spending grid: %s to %s, step %s\n",
		FormatAmount(report.Grid.Min),
		FormatAmount(report.Grid.Max),
		FormatAmount(report.Grid.Step),
	)
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%10s  %22s  %18s  %16s\n",
		"Retire Age", "Best Monthly Spending", "Total Enjoyment", "Final Wealth")
	for _, row := range report.Results {
		fmt.Fprintf(&buf, "%10.0f  %22s  %18s  %16s\n",
			row.RetirementAge,
			FormatOptionalAmount(row.BestMonthlySpending),
			FormatOptionalAmount(row.TotalEnjoyment),
			FormatOptionalAmount(row.FinalWealth),
		)
	}

	return buf.Bytes(), nil
}
