package domain

import (
	"github.com/shopspring/decimal"
)

// Inputs is the caller-validated snapshot the engine consumes. It is
// constructed once per calculation request and never mutated; a new request
// is a new Inputs value. Field constraints (non-negative currency fields,
// integer dependents, enum membership) are enforced by the config layer
// before the engine is invoked; the engine performs no revalidation.
type Inputs struct {
	FilingStatus            FilingStatus    `yaml:"filing_status" json:"filing_status"`
	W2Wages                 decimal.Decimal `yaml:"w2_wages" json:"w2_wages"`
	W2Withheld              decimal.Decimal `yaml:"w2_withheld" json:"w2_withheld"`
	NetBusinessIncome       decimal.Decimal `yaml:"net_business_income" json:"net_business_income"`
	OtherIncome             decimal.Decimal `yaml:"other_income" json:"other_income"`
	DependentsUnder17       int             `yaml:"dependents_under_17" json:"dependents_under_17"`
	OtherDependents         int             `yaml:"other_dependents" json:"other_dependents"`
	PerChildCreditAlternate bool            `yaml:"per_child_credit_alternate" json:"per_child_credit_alternate"`
	SafeHarborMode          SafeHarborMode  `yaml:"safe_harbor_mode" json:"safe_harbor_mode"`
	PriorYearTotalTax       decimal.Decimal `yaml:"prior_year_total_tax" json:"prior_year_total_tax"`
}

// CalculationRequest is a complete request file: the tax year to use, the
// validated inputs, and allocation options for the installment schedule.
type CalculationRequest struct {
	TaxYear  int    `yaml:"tax_year" json:"tax_year"`
	Weighted bool   `yaml:"weighted" json:"weighted"`
	Inputs   Inputs `yaml:"inputs" json:"inputs"`
}
