package domain

import "fmt"

// FilingStatus selects which bracket table, standard deduction, and
// Additional-Medicare threshold apply to a filer.
type FilingStatus string

const (
	FilingSingle          FilingStatus = "single"
	FilingMarriedJoint    FilingStatus = "married_joint"
	FilingMarriedSeparate FilingStatus = "married_separate"
	FilingHeadOfHousehold FilingStatus = "head_of_household"
)

// FilingStatuses lists every supported filing status.
var FilingStatuses = []FilingStatus{
	FilingSingle,
	FilingMarriedJoint,
	FilingMarriedSeparate,
	FilingHeadOfHousehold,
}

// Valid reports whether s is one of the supported filing statuses.
func (s FilingStatus) Valid() bool {
	switch s {
	case FilingSingle, FilingMarriedJoint, FilingMarriedSeparate, FilingHeadOfHousehold:
		return true
	}
	return false
}

// SafeHarborMode selects the estimated-payment target policy.
type SafeHarborMode string

const (
	// SafeHarborCurrentYear targets the projected current-year liability.
	SafeHarborCurrentYear SafeHarborMode = "current_year"
	// SafeHarborPriorYear100 targets 100% of the prior year's total tax.
	SafeHarborPriorYear100 SafeHarborMode = "prior_year_100"
	// SafeHarborPriorYear110 targets 110% of the prior year's total tax
	// (higher-income filers).
	SafeHarborPriorYear110 SafeHarborMode = "prior_year_110"
)

// Valid reports whether m is a supported safe-harbor mode.
func (m SafeHarborMode) Valid() bool {
	switch m {
	case SafeHarborCurrentYear, SafeHarborPriorYear100, SafeHarborPriorYear110:
		return true
	}
	return false
}

// ParseFilingStatus converts a user-supplied string to a FilingStatus.
func ParseFilingStatus(s string) (FilingStatus, error) {
	fs := FilingStatus(s)
	if !fs.Valid() {
		return "", fmt.Errorf("unknown filing status %q (expected one of: single, married_joint, married_separate, head_of_household)", s)
	}
	return fs, nil
}
