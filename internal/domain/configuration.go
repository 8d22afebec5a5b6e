package domain

import "github.com/shopspring/decimal"

// Household holds the retiree's starting position and the assumptions that
// stay fixed across the sweep. Retirement age and monthly spending are not
// part of the configuration: the sweep substitutes the former and the
// feasibility search the latter.
type Household struct {
	InitialAge             float64          `yaml:"initial_age" json:"initial_age"`
	FinalAge               float64          `yaml:"final_age" json:"final_age"` // horizon end, fractional years allowed
	InitialWealth          decimal.Decimal  `yaml:"initial_wealth" json:"initial_wealth"`
	InitialMonthlyIncome   decimal.Decimal  `yaml:"initial_monthly_income" json:"initial_monthly_income"`
	IncomeAnnualGrowth     float64          `yaml:"income_annual_growth" json:"income_annual_growth"`
	RetiredMonthlyIncome   decimal.Decimal  `yaml:"retired_monthly_income" json:"retired_monthly_income"`
	InvestmentAnnualGrowth float64          `yaml:"investment_annual_growth" json:"investment_annual_growth"`

	UtilityExponentPreRetire    float64  `yaml:"utility_exponent_pre_retire" json:"utility_exponent_pre_retire"`
	UtilityExponentPostRetire   *float64 `yaml:"utility_exponent_post_retire,omitempty" json:"utility_exponent_post_retire,omitempty"`
	UtilityMultiplierPreRetire  float64  `yaml:"utility_multiplier_pre_retire" json:"utility_multiplier_pre_retire"`
	UtilityMultiplierPostRetire float64  `yaml:"utility_multiplier_post_retire" json:"utility_multiplier_post_retire"`

	MonthsPerYear int `yaml:"months_per_year,omitempty" json:"months_per_year,omitempty"`
}

// SweepSettings is the invocation surface of the sweep: which retirement
// ages to probe and the spending grid searched at each one.
type SweepSettings struct {
	RetirementAgeMin float64      `yaml:"retirement_age_min" json:"retirement_age_min"`
	RetirementAgeMax float64      `yaml:"retirement_age_max" json:"retirement_age_max"`
	Grid             SpendingGrid `yaml:",inline" json:"grid"`
}

// Ages expands the configured age range into the ordered list of retirement
// ages to sweep, one per whole year, both endpoints inclusive.
func (s SweepSettings) Ages() []float64 {
	if s.RetirementAgeMax < s.RetirementAgeMin {
		return nil
	}
	var ages []float64
	for a := s.RetirementAgeMin; a <= s.RetirementAgeMax; a++ {
		ages = append(ages, a)
	}
	return ages
}

// Configuration is the top-level record loaded from the settings file.
type Configuration struct {
	Household Household     `yaml:"household" json:"household"`
	Sweep     SweepSettings `yaml:"sweep" json:"sweep"`
}

// Parameters assembles the shared SimulationParameters for this
// configuration. Retirement age and monthly spending are left zero; the
// caller substitutes them per probe.
func (c *Configuration) Parameters() SimulationParameters {
	return SimulationParameters{
		InitialAge:                  c.Household.InitialAge,
		FinalAge:                    c.Household.FinalAge,
		InitialWealth:               c.Household.InitialWealth.InexactFloat64(),
		InitialMonthlyIncome:        c.Household.InitialMonthlyIncome.InexactFloat64(),
		IncomeAnnualGrowth:          c.Household.IncomeAnnualGrowth,
		RetiredMonthlyIncome:        c.Household.RetiredMonthlyIncome.InexactFloat64(),
		InvestmentAnnualGrowth:      c.Household.InvestmentAnnualGrowth,
		UtilityExponentPreRetire:    c.Household.UtilityExponentPreRetire,
		UtilityExponentPostRetire:   c.Household.UtilityExponentPostRetire,
		UtilityMultiplierPreRetire:  c.Household.UtilityMultiplierPreRetire,
		UtilityMultiplierPostRetire: c.Household.UtilityMultiplierPostRetire,
		MonthsPerYear:               c.Household.MonthsPerYear,
	}
}
