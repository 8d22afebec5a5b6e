package output

import (
	"encoding/json"

	"github.com/spendmax/enjoyment-calculator/internal/domain"
)

// JSONFormatter serializes the sweep report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.SweepReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
