package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/spendmax/enjoyment-calculator/internal/domain"
)

// FeasibleSpending is the outcome of a feasibility search at one retirement
// age. The three values come from a single simulation re-run at the chosen
// grid point, so they are always mutually consistent.
type FeasibleSpending struct {
	MonthlySpending decimal.Decimal
	TotalEnjoyment  float64
	FinalWealth     float64
}

// FindMaxFeasibleSpending locates the largest spending level on the grid
// whose simulated final wealth stays non-negative, with the retirement age
// taken from params.
//
// Feasibility is monotonically non-increasing as spending rises (a higher
// constant drain can only lower final wealth), so the grid splits into a
// feasible prefix and an infeasible suffix and a binary search over the
// boundary needs O(log N) simulator calls. A nil result with a nil error
// means no grid point is feasible; that is a representable outcome, not a
// failure.
func (ce *CalculationEngine) FindMaxFeasibleSpending(params domain.SimulationParameters, grid domain.SpendingGrid) (*FeasibleSpending, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if err := params.ValidateHorizon(); err != nil {
		return nil, err
	}

	feasible := func(i int) bool {
		point := grid.Point(i)
		res := Simulate(params.WithMonthlySpending(point.InexactFloat64()))
		if ce.Debug {
			ce.Logger.Debugf("probe retire_age=%.2f spending=%s final_wealth=%.2f", params.RetirementAge, point, res.FinalWealth)
		}
		return res.FinalWealth >= 0
	}

	n := grid.Size()
	if !feasible(0) {
		// Even the smallest grid point bankrupts the plan.
		return nil, nil
	}

	best := 0
	if feasible(n - 1) {
		best = n - 1
	} else {
		// Invariant: lo feasible, hi infeasible.
		lo, hi := 0, n-1
		for hi-lo > 1 {
			mid := lo + (hi-lo)/2
			if feasible(mid) {
				lo = mid
			} else {
				hi = mid
			}
		}
		best = lo
	}

	point := grid.Point(best)
	res := Simulate(params.WithMonthlySpending(point.InexactFloat64()))
	return &FeasibleSpending{
		MonthlySpending: point,
		TotalEnjoyment:  res.TotalEnjoyment,
		FinalWealth:     res.FinalWealth,
	}, nil
}
