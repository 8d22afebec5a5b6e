package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SpendingGrid describes the discretized set of candidate monthly spending
// levels searched for feasibility: Min, Min+Step, ... up to and including the
// largest value not exceeding Max. Decimal arithmetic keeps the grid points
// exact regardless of step size.
type SpendingGrid struct {
	Min  decimal.Decimal `json:"min" yaml:"spend_min"`
	Max  decimal.Decimal `json:"max" yaml:"spend_max"`
	Step decimal.Decimal `json:"step" yaml:"spend_step"`
}

// Size returns the number of grid points. Callers must Validate first; an
// invalid grid reports zero points.
func (g SpendingGrid) Size() int {
	if g.Step.LessThanOrEqual(decimal.Zero) || g.Max.LessThan(g.Min) {
		return 0
	}
	span := g.Max.Sub(g.Min).Div(g.Step).IntPart()
	return int(span) + 1
}

// Point returns the i-th grid point (0-based).
func (g SpendingGrid) Point(i int) decimal.Decimal {
	return g.Min.Add(g.Step.Mul(decimal.NewFromInt(int64(i))))
}

// AgeResult is one row of the sweep output. The three value cells are nil
// when no grid point is feasible at that retirement age; nil is rendered as
// an explicit "None", never as zero.
type AgeResult struct {
	RetirementAge       float64          `json:"retire_age"`
	BestMonthlySpending *decimal.Decimal `json:"best_monthly_spending"`
	TotalEnjoyment      *decimal.Decimal `json:"total_enjoyment"`
	FinalWealth         *decimal.Decimal `json:"final_wealth"`
}

// Feasible reports whether any spending level on the grid survived at this
// retirement age.
func (r AgeResult) Feasible() bool { return r.BestMonthlySpending != nil }

// SweepReport is the full result of an age sweep, ordered ascending by
// retirement age. It is the unit consumed by the output formatters.
type SweepReport struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Grid        SpendingGrid `json:"grid"`
	Results     []AgeResult  `json:"results"`
}
