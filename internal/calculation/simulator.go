package calculation

import (
	"math"

	"github.com/spendmax/enjoyment-calculator/internal/domain"
)

// monthlyRate converts an annual growth rate to the equivalent monthly
// compounding rate: (1+annual)^(1/12) - 1.
func monthlyRate(annual float64, stepsPerYear int) float64 {
	return math.Pow(1+annual, 1/float64(stepsPerYear)) - 1
}

// Simulate evolves wealth and accumulated enjoyment month by month over the
// configured horizon and reports the final wealth, total enjoyment, and
// bankruptcy flag. Pure function: no I/O, no shared state, and identical
// inputs produce bit-identical outputs.
//
// Each month the active regime is chosen by comparing the current age to the
// retirement age. Before retirement the income stream grows at the income
// rate and the pre-retirement utility shape applies; after retirement the
// fixed retired income and the post-retirement shape apply. Monthly utility
// is logarithmic when the active exponent is zero and power-law otherwise,
// scaled by the multiplier and by an age factor that decays linearly from 1
// at the start to 0 at the horizon.
func Simulate(p domain.SimulationParameters) domain.SimulationResult {
	months := p.Months()
	if months == 0 {
		// Degenerate horizon: nothing accrues and wealth is untouched.
		// Returning here also keeps the age factor free of a division by
		// zero when FinalAge == InitialAge.
		return domain.NewSimulationResult(0, p.InitialWealth)
	}

	steps := p.StepsPerYear()
	incomeRate := monthlyRate(p.IncomeAnnualGrowth, steps)
	investRate := monthlyRate(p.InvestmentAnnualGrowth, steps)
	horizon := p.FinalAge - p.InitialAge

	age := p.InitialAge
	wealth := p.InitialWealth
	income := p.InitialMonthlyIncome
	totalEnjoyment := 0.0

	for m := 0; m < months; m++ {
		var incomeNow, multiplier, exponent float64
		if age >= p.RetirementAge {
			incomeNow = p.RetiredMonthlyIncome
			multiplier = p.UtilityMultiplierPostRetire
			exponent = p.PostRetireExponent()
		} else {
			incomeNow = income
			multiplier = p.UtilityMultiplierPreRetire
			exponent = p.UtilityExponentPreRetire
		}

		ageFactor := math.Max(0, 1-(age-p.InitialAge)/horizon)

		// Exponent zero selects log utility; the floor keeps the log away
		// from non-positive spending.
		if exponent == 0 {
			totalEnjoyment += math.Log(math.Max(p.MonthlySpending, 1)) * ageFactor * multiplier
		} else {
			totalEnjoyment += math.Pow(p.MonthlySpending, exponent) * ageFactor * multiplier
		}

		wealth = wealth*(1+investRate) + (incomeNow - p.MonthlySpending)

		age += 1 / float64(steps)
		if age < p.RetirementAge {
			income *= 1 + incomeRate
		}
	}

	return domain.NewSimulationResult(totalEnjoyment, wealth)
}
