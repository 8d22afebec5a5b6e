package domain

// DefaultMonthsPerYear is the simulation step resolution used when a
// configuration does not override it.
const DefaultMonthsPerYear = 12

// SimulationParameters is the complete, immutable input to a single
// deterministic simulation run. Monetary amounts are monthly unless the field
// name says otherwise; rates are annual fractions (0.05 = 5%).
type SimulationParameters struct {
	InitialAge             float64
	FinalAge               float64
	InitialWealth          float64
	InitialMonthlyIncome   float64
	IncomeAnnualGrowth     float64
	RetirementAge          float64
	RetiredMonthlyIncome   float64
	InvestmentAnnualGrowth float64
	MonthlySpending        float64

	// A zero exponent selects logarithmic utility; any other value selects
	// power utility with that exponent.
	UtilityExponentPreRetire    float64
	UtilityExponentPostRetire   *float64
	UtilityMultiplierPreRetire  float64
	UtilityMultiplierPostRetire float64

	MonthsPerYear int
}

// StepsPerYear returns the monthly resolution, applying the default when the
// field was left zero.
func (p SimulationParameters) StepsPerYear() int {
	if p.MonthsPerYear <= 0 {
		return DefaultMonthsPerYear
	}
	return p.MonthsPerYear
}

// Months returns the number of whole months simulated over the horizon.
// A horizon at or before the initial age yields zero months.
func (p SimulationParameters) Months() int {
	months := int((p.FinalAge - p.InitialAge) * float64(p.StepsPerYear()))
	if months < 0 {
		return 0
	}
	return months
}

// PostRetireExponent returns the utility exponent active after retirement.
// When no post-retirement exponent is configured the pre-retirement exponent
// is the documented default; this method is the single place that fallback
// lives.
func (p SimulationParameters) PostRetireExponent() float64 {
	if p.UtilityExponentPostRetire == nil {
		return p.UtilityExponentPreRetire
	}
	return *p.UtilityExponentPostRetire
}

// WithRetirementAge returns a copy with the retirement age substituted,
// leaving the receiver untouched.
func (p SimulationParameters) WithRetirementAge(age float64) SimulationParameters {
	p.RetirementAge = age
	return p
}

// WithMonthlySpending returns a copy with the candidate spending substituted.
func (p SimulationParameters) WithMonthlySpending(spending float64) SimulationParameters {
	p.MonthlySpending = spending
	return p
}

// SimulationResult holds the outputs of one simulation run. It is created
// fresh per run and never mutated afterwards.
type SimulationResult struct {
	TotalEnjoyment float64 `json:"total_enjoyment"`
	FinalWealth    float64 `json:"final_wealth"`
	Bankrupt       bool    `json:"bankrupt"`
}

// NewSimulationResult derives the bankruptcy flag from the final wealth.
func NewSimulationResult(totalEnjoyment, finalWealth float64) SimulationResult {
	return SimulationResult{
		TotalEnjoyment: totalEnjoyment,
		FinalWealth:    finalWealth,
		Bankrupt:       finalWealth < 0,
	}
}
