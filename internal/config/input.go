// Package config is the validated-inputs boundary: it loads calculation
// request files and rejects anything that violates the engine's
// preconditions before the pure math ever sees it.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"quartax/internal/domain"
)

// InputParser handles parsing of calculation request files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a calculation request from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.CalculationRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var req domain.CalculationRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateRequest(&req); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}

	return &req, nil
}

// ValidateRequest validates a calculation request. Requests that pass are
// safe to hand to the engine without revalidation.
func (ip *InputParser) ValidateRequest(req *domain.CalculationRequest) error {
	if req.TaxYear == 0 {
		return fmt.Errorf("tax_year is required")
	}
	return ip.ValidateInputs(&req.Inputs)
}

// ValidateInputs enforces the engine's input preconditions: enum
// membership, non-negative currency fields, non-negative integer dependent
// counts, and a prior-year tax figure when a prior-year safe harbor is
// selected.
func (ip *InputParser) ValidateInputs(in *domain.Inputs) error {
	if !in.FilingStatus.Valid() {
		return fmt.Errorf("filing status %q is not one of: single, married_joint, married_separate, head_of_household", in.FilingStatus)
	}
	if in.SafeHarborMode == "" {
		in.SafeHarborMode = domain.SafeHarborCurrentYear
	}
	if !in.SafeHarborMode.Valid() {
		return fmt.Errorf("safe harbor mode %q is not one of: current_year, prior_year_100, prior_year_110", in.SafeHarborMode)
	}
	if in.W2Wages.LessThan(decimal.Zero) {
		return fmt.Errorf("w2_wages cannot be negative")
	}
	if in.W2Withheld.LessThan(decimal.Zero) {
		return fmt.Errorf("w2_withheld cannot be negative")
	}
	if in.OtherIncome.LessThan(decimal.Zero) {
		return fmt.Errorf("other_income cannot be negative")
	}
	// net_business_income may be any sign: a business loss is a valid input.
	if in.DependentsUnder17 < 0 {
		return fmt.Errorf("dependents_under_17 cannot be negative")
	}
	if in.OtherDependents < 0 {
		return fmt.Errorf("other_dependents cannot be negative")
	}
	if in.PriorYearTotalTax.LessThan(decimal.Zero) {
		return fmt.Errorf("prior_year_total_tax cannot be negative")
	}
	if in.SafeHarborMode != domain.SafeHarborCurrentYear && in.PriorYearTotalTax.IsZero() {
		return fmt.Errorf("safe harbor mode %q requires a positive prior_year_total_tax", in.SafeHarborMode)
	}
	return nil
}

// LoadExpensesFromFile loads a business-expense file: the business type and
// its logged entries. Amounts must be non-negative; categorization fields
// are optional.
func (ip *InputParser) LoadExpensesFromFile(filename string) (domain.BusinessType, []domain.ExpenseEntry, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var file struct {
		Business domain.BusinessType   `yaml:"business"`
		Expenses []domain.ExpenseEntry `yaml:"expenses"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return "", nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if !file.Business.Valid() {
		return "", nil, fmt.Errorf("business type %q is not one of: ecommerce, rideshare, consultant", file.Business)
	}
	for i, entry := range file.Expenses {
		if entry.Amount.LessThan(decimal.Zero) {
			return "", nil, fmt.Errorf("expense %d (%s): amount cannot be negative", i, entry.Description)
		}
	}
	return file.Business, file.Expenses, nil
}
