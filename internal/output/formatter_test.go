package output

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendmax/enjoyment-calculator/internal/domain"
)

func sampleReport() *domain.SweepReport {
	spending := decimal.NewFromInt(12300)
	enjoyment := decimal.NewFromFloat(1234.5678)
	wealth := decimal.NewFromFloat(45678.9)
	return &domain.SweepReport{
		GeneratedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Grid: domain.SpendingGrid{
			Min:  decimal.Zero,
			Max:  decimal.NewFromInt(30000),
			Step: decimal.NewFromInt(100),
		},
		Results: []domain.AgeResult{
			{RetirementAge: 34, BestMonthlySpending: &spending, TotalEnjoyment: &enjoyment, FinalWealth: &wealth},
			{RetirementAge: 35}, // infeasible
		},
	}
}

func TestGetFormatterByName(t *testing.T) {
	assert.Equal(t, "console", GetFormatterByName("console").Name())
	assert.Equal(t, "console", GetFormatterByName("table").Name(), "alias resolves")
	assert.Equal(t, "csv", GetFormatterByName("CSV").Name(), "lookup is case-insensitive")
	assert.Equal(t, "json", GetFormatterByName("json-pretty").Name())
	assert.Nil(t, GetFormatterByName("xml"))
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"console", "csv", "json"}, AvailableFormatterNames())
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleReport())
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "MAX FEASIBLE MONTHLY SPENDING BY RETIREMENT AGE")
	assert.Contains(t, text, "12,300.00", "money cells carry thousands separators")
	assert.Contains(t, text, "None", "infeasible cells render an explicit marker")

	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, "None") {
			assert.NotContains(t, line, "0.00", "infeasible row must not print zeros")
		}
	}
}

func TestCSVFormatter(t *testing.T) {
	data, err := CSVFormatter{}.Format(sampleReport())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"retire_age", "best_monthly_spending", "total_enjoyment", "final_wealth"}, records[0])
	assert.Equal(t, []string{"34", "12300.00", "1234.57", "45678.90"}, records[1])
	assert.Equal(t, []string{"35", "None", "None", "None"}, records[2])
}

func TestJSONFormatter(t *testing.T) {
	data, err := JSONFormatter{}.Format(sampleReport())
	require.NoError(t, err)

	var decoded domain.SweepReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Results, 2)
	assert.Nil(t, decoded.Results[1].BestMonthlySpending)
}

func TestWriteFormatted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteFormatted(CSVFormatter{}, sampleReport(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "retire_age,"))
}
