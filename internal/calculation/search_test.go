package calculation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/spendmax/enjoyment-calculator/internal/domain"
)

func grid(min, max, step int64) domain.SpendingGrid {
	return domain.SpendingGrid{
		Min:  decimal.NewFromInt(min),
		Max:  decimal.NewFromInt(max),
		Step: decimal.NewFromInt(step),
	}
}

func TestFindMaxFeasibleSpending_AllInfeasible(t *testing.T) {
	p := baseParams()
	p.InitialWealth = 0
	p.InitialMonthlyIncome = 0
	p.RetiredMonthlyIncome = 0

	found, err := NewCalculationEngine().FindMaxFeasibleSpending(p, grid(100, 1000, 100))
	if err != nil {
		t.Fatalf("all-infeasible grid is a valid result, got error: %v", err)
	}
	if found != nil {
		t.Fatalf("expected no feasible spending, got %+v", found)
	}
}

func TestFindMaxFeasibleSpending_AllFeasible(t *testing.T) {
	engine := NewCalculationEngine()
	found, err := engine.FindMaxFeasibleSpending(baseParams(), grid(0, 500, 100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found == nil {
		t.Fatalf("expected a feasible result")
	}
	if !found.MonthlySpending.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("every point feasible: expected the maximum grid point 500, got %s", found.MonthlySpending)
	}

	// The returned numbers must be the recomputed simulation at that point.
	check := Simulate(baseParams().WithMonthlySpending(500))
	if found.TotalEnjoyment != check.TotalEnjoyment || found.FinalWealth != check.FinalWealth {
		t.Fatalf("returned values are not self-consistent with a direct simulation")
	}
}

func TestFindMaxFeasibleSpending_TransitionPoint(t *testing.T) {
	engine := NewCalculationEngine()
	g := grid(0, 30000, 100)

	found, err := engine.FindMaxFeasibleSpending(baseParams(), g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found == nil {
		t.Fatalf("expected a feasible spending level on the default grid")
	}

	spend := found.MonthlySpending
	if spend.LessThan(g.Min) || spend.GreaterThan(g.Max) {
		t.Fatalf("result %s outside grid bounds", spend)
	}
	if !spend.Mod(g.Step).IsZero() {
		t.Fatalf("result %s is not a grid point", spend)
	}
	if found.FinalWealth < 0 {
		t.Fatalf("chosen spending must be feasible, final wealth %f", found.FinalWealth)
	}

	// The next grid point up must be infeasible, or the result is not maximal.
	next := spend.Add(g.Step)
	if next.LessThanOrEqual(g.Max) {
		above := Simulate(baseParams().WithMonthlySpending(next.InexactFloat64()))
		if above.FinalWealth >= 0 {
			t.Fatalf("grid point %s above the answer is still feasible", next)
		}
	}
}

// Running the reference scenario twice must reproduce the identical triple.
func TestFindMaxFeasibleSpending_Reproducible(t *testing.T) {
	engine := NewCalculationEngine()
	g := grid(0, 30000, 100)

	first, err := engine.FindMaxFeasibleSpending(baseParams(), g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := engine.FindMaxFeasibleSpending(baseParams(), g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == nil || second == nil {
		t.Fatalf("expected feasible results on both runs")
	}
	if !first.MonthlySpending.Equal(second.MonthlySpending) ||
		first.TotalEnjoyment != second.TotalEnjoyment ||
		first.FinalWealth != second.FinalWealth {
		t.Fatalf("reruns differ: %+v vs %+v", first, second)
	}
}

func TestFindMaxFeasibleSpending_SinglePointGrid(t *testing.T) {
	engine := NewCalculationEngine()
	found, err := engine.FindMaxFeasibleSpending(baseParams(), grid(1000, 1000, 100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found == nil || !found.MonthlySpending.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("single-point grid should return that point, got %+v", found)
	}
}

func TestFindMaxFeasibleSpending_InvalidGrid(t *testing.T) {
	engine := NewCalculationEngine()

	_, err := engine.FindMaxFeasibleSpending(baseParams(), grid(1000, 500, 100))
	if !errors.Is(err, domain.ErrInvalidGrid) {
		t.Fatalf("max < min must fail with ErrInvalidGrid, got %v", err)
	}

	_, err = engine.FindMaxFeasibleSpending(baseParams(), grid(0, 1000, 0))
	if !errors.Is(err, domain.ErrInvalidGrid) {
		t.Fatalf("non-positive step must fail with ErrInvalidGrid, got %v", err)
	}
}

func TestFindMaxFeasibleSpending_InvalidHorizon(t *testing.T) {
	p := baseParams()
	p.FinalAge = p.InitialAge

	_, err := NewCalculationEngine().FindMaxFeasibleSpending(p, grid(0, 1000, 100))
	if !errors.Is(err, domain.ErrInvalidHorizon) {
		t.Fatalf("degenerate horizon must fail with ErrInvalidHorizon, got %v", err)
	}
}
