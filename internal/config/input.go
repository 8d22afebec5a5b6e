package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/spendmax/enjoyment-calculator/internal/domain"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration. All failures here
// are fatal at startup: the sweep never runs against a partial configuration.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateHousehold(&config.Household); err != nil {
		return fmt.Errorf("household validation failed: %w", err)
	}
	if err := ip.validateSweep(&config.Sweep); err != nil {
		return fmt.Errorf("sweep validation failed: %w", err)
	}
	return nil
}

// validateHousehold validates the shared simulation inputs
func (ip *InputParser) validateHousehold(h *domain.Household) error {
	if h.InitialAge <= 0 {
		return fmt.Errorf("initial_age must be positive")
	}
	if h.FinalAge <= h.InitialAge {
		return fmt.Errorf("%w: final_age (%.2f) must be greater than initial_age (%.2f)", domain.ErrInvalidHorizon, h.FinalAge, h.InitialAge)
	}
	if h.InitialWealth.LessThan(decimal.Zero) {
		return fmt.Errorf("initial_wealth cannot be negative")
	}
	if h.InitialMonthlyIncome.LessThan(decimal.Zero) {
		return fmt.Errorf("initial_monthly_income cannot be negative")
	}
	if h.RetiredMonthlyIncome.LessThan(decimal.Zero) {
		return fmt.Errorf("retired_monthly_income cannot be negative")
	}
	if h.IncomeAnnualGrowth < -1.0 {
		return fmt.Errorf("income_annual_growth cannot be less than -100%%")
	}
	if h.InvestmentAnnualGrowth < -1.0 {
		return fmt.Errorf("investment_annual_growth cannot be less than -100%%")
	}
	if h.UtilityMultiplierPreRetire < 0 {
		return fmt.Errorf("utility_multiplier_pre_retire cannot be negative")
	}
	if h.UtilityMultiplierPostRetire < 0 {
		return fmt.Errorf("utility_multiplier_post_retire cannot be negative")
	}
	if h.MonthsPerYear < 0 {
		return fmt.Errorf("months_per_year cannot be negative")
	}
	return nil
}

// validateSweep validates the sweep invocation surface
func (ip *InputParser) validateSweep(s *domain.SweepSettings) error {
	if s.RetirementAgeMin <= 0 {
		return fmt.Errorf("retirement_age_min must be positive")
	}
	if s.RetirementAgeMax < s.RetirementAgeMin {
		return fmt.Errorf("retirement_age_max (%.0f) cannot be less than retirement_age_min (%.0f)", s.RetirementAgeMax, s.RetirementAgeMin)
	}
	if err := s.Grid.Validate(); err != nil {
		return err
	}
	if s.Grid.Min.LessThan(decimal.Zero) {
		return fmt.Errorf("spend_min cannot be negative")
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration, written out by
// the `init` command as a starting point.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Household: domain.Household{
			InitialAge:                  30,
			FinalAge:                    90,
			InitialWealth:               decimal.NewFromInt(100000),
			InitialMonthlyIncome:        decimal.NewFromInt(5000),
			IncomeAnnualGrowth:          0.01,
			RetiredMonthlyIncome:        decimal.NewFromInt(1000),
			InvestmentAnnualGrowth:      0.05,
			UtilityExponentPreRetire:    0, // logarithmic utility
			UtilityMultiplierPreRetire:  1.0,
			UtilityMultiplierPostRetire: 1.7,
		},
		Sweep: domain.SweepSettings{
			RetirementAgeMin: 34,
			RetirementAgeMax: 45,
			Grid: domain.SpendingGrid{
				Min:  decimal.Zero,
				Max:  decimal.NewFromInt(30000),
				Step: decimal.NewFromInt(100),
			},
		},
	}
}
