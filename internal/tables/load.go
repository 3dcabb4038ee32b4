package tables

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFromFile reads a tax year table from a YAML file, for years (or
// mid-year corrections) the built-ins do not cover. The loaded table is
// validated before being returned; a file that fails the partition
// invariants is rejected outright.
func LoadFromFile(path string) (*TaxYearTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table file %s: %w", path, err)
	}

	var t TaxYearTable
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse table file %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("table file %s: %w", path, err)
	}
	return &t, nil
}
