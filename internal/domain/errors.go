package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Sentinel errors for the fatal configuration classes. Callers match with
// errors.Is; the wrapped message carries the offending values.
var (
	ErrInvalidGrid    = errors.New("invalid spending grid")
	ErrInvalidHorizon = errors.New("invalid simulation horizon")
)

// Validate rejects empty or degenerate grids. An all-infeasible grid is a
// valid result; a grid that cannot hold a single point is a configuration
// error.
func (g SpendingGrid) Validate() error {
	if g.Step.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: step %s must be positive", ErrInvalidGrid, g.Step)
	}
	if g.Max.LessThan(g.Min) {
		return fmt.Errorf("%w: max %s is below min %s", ErrInvalidGrid, g.Max, g.Min)
	}
	return nil
}

// ValidateHorizon rejects a horizon that ends at or before the initial age.
// The simulator itself tolerates a zero-month horizon; this guard is for the
// search and sweep entry points, where such a configuration is always a
// mistake.
func (p SimulationParameters) ValidateHorizon() error {
	if p.FinalAge <= p.InitialAge {
		return fmt.Errorf("%w: final age %.2f is not after initial age %.2f", ErrInvalidHorizon, p.FinalAge, p.InitialAge)
	}
	return nil
}
