package calculation

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendmax/enjoyment-calculator/internal/domain"
)

// SweepRetirementAges runs the feasibility search once per candidate
// retirement age and assembles the result table, sorted ascending by age
// regardless of input order. Each age's search is fully independent: there is
// no shared state across iterations, so the loop could be fanned out across
// workers without changing results.
//
// An age at which no grid point is feasible contributes a null row; it never
// aborts the sweep.
func (ce *CalculationEngine) SweepRetirementAges(params domain.SimulationParameters, grid domain.SpendingGrid, ages []float64) (*domain.SweepReport, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	sorted := append([]float64(nil), ages...)
	sort.Float64s(sorted)

	results := make([]domain.AgeResult, 0, len(sorted))
	for _, age := range sorted {
		found, err := ce.FindMaxFeasibleSpending(params.WithRetirementAge(age), grid)
		if err != nil {
			return nil, fmt.Errorf("feasibility search failed at retirement age %.2f: %w", age, err)
		}

		row := domain.AgeResult{RetirementAge: age}
		if found != nil {
			spending := found.MonthlySpending
			enjoyment := decimal.NewFromFloat(found.TotalEnjoyment)
			wealth := decimal.NewFromFloat(found.FinalWealth)
			row.BestMonthlySpending = &spending
			row.TotalEnjoyment = &enjoyment
			row.FinalWealth = &wealth
		} else {
			ce.Logger.Infof("no feasible spending on the grid at retirement age %.2f", age)
		}
		results = append(results, row)
	}

	return &domain.SweepReport{
		GeneratedAt: time.Now().UTC(),
		Grid:        grid,
		Results:     results,
	}, nil
}
