package output

import (
	"encoding/json"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// JSONFormatter serializes the plan result as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.PlanResult) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
