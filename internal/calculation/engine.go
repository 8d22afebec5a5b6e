package calculation

// CalculationEngine orchestrates the feasibility searches and the retirement
// age sweep. It holds no mutable state between calls; every method is safe
// for concurrent use.
type CalculationEngine struct {
	Debug  bool // Enable debug output for per-probe simulation details
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine with a no-op logger.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}
