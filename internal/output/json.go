package output

import (
	"encoding/json"

	"quartax/internal/domain"
)

// JSONFormatter emits the full report as indented JSON.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(report *domain.EstimateReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
