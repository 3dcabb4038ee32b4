// Package tables holds the per-year constant tax data: standard deductions,
// marginal brackets, FICA/SE rates, child-credit amounts, and installment
// due dates. Tables are immutable configuration constructed once per tax
// year and passed explicitly into every calculator call; the engine never
// reaches for them through ambient lookup.
package tables

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"quartax/internal/domain"
)

// TaxBracket is one marginal bracket. Upper is the bracket's inclusive
// upper bound; the last bracket of a table is Unbounded and its Upper is
// ignored.
type TaxBracket struct {
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
	Upper     decimal.Decimal `yaml:"upper" json:"upper"`
	Unbounded bool            `yaml:"unbounded,omitempty" json:"unbounded,omitempty"`
}

// StatusTable is the per-filing-status slice of a tax year's data.
type StatusTable struct {
	StandardDeduction           decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction"`
	Brackets                    []TaxBracket    `yaml:"brackets" json:"brackets"`
	AdditionalMedicareThreshold decimal.Decimal `yaml:"additional_medicare_threshold" json:"additional_medicare_threshold"`
}

// SERates holds the self-employment tax parameters shared by all statuses.
type SERates struct {
	NetEarningsFactor      decimal.Decimal `yaml:"net_earnings_factor" json:"net_earnings_factor"`
	OASDIRate              decimal.Decimal `yaml:"oasdi_rate" json:"oasdi_rate"`
	MedicareRate           decimal.Decimal `yaml:"medicare_rate" json:"medicare_rate"`
	AdditionalMedicareRate decimal.Decimal `yaml:"additional_medicare_rate" json:"additional_medicare_rate"`
	WageBase               decimal.Decimal `yaml:"wage_base" json:"wage_base"`
}

// ChildCreditRates holds the child/dependent credit parameters.
type ChildCreditRates struct {
	PerChild              decimal.Decimal `yaml:"per_child" json:"per_child"`
	PerChildAlternate     decimal.Decimal `yaml:"per_child_alternate" json:"per_child_alternate"`
	RefundableCapPerChild decimal.Decimal `yaml:"refundable_cap_per_child" json:"refundable_cap_per_child"`
	PhaseInThreshold      decimal.Decimal `yaml:"phase_in_threshold" json:"phase_in_threshold"`
	PhaseInRate           decimal.Decimal `yaml:"phase_in_rate" json:"phase_in_rate"`
	PerOtherDependent     decimal.Decimal `yaml:"per_other_dependent" json:"per_other_dependent"`
}

// TaxYearTable is the complete constant record for one tax year.
type TaxYearTable struct {
	Year        int                                 `yaml:"year" json:"year"`
	Statuses    map[domain.FilingStatus]StatusTable `yaml:"statuses" json:"statuses"`
	SE          SERates                             `yaml:"se" json:"se"`
	ChildCredit ChildCreditRates                    `yaml:"child_credit" json:"child_credit"`
	DueDates    []time.Time                         `yaml:"due_dates" json:"due_dates"`
}

// ForStatus returns the per-status slice of the table. The status is
// assumed valid; callers validate at the boundary.
func (t *TaxYearTable) ForStatus(s domain.FilingStatus) StatusTable {
	return t.Statuses[s]
}

// Validate checks the static data-integrity invariants: every supported
// status is present, brackets are ascending and gap-free from 0, and the
// last bracket is unbounded. This runs at construction/test time, never
// during a calculation.
func (t *TaxYearTable) Validate() error {
	if t.Year == 0 {
		return fmt.Errorf("tax year is required")
	}
	for _, status := range domain.FilingStatuses {
		st, ok := t.Statuses[status]
		if !ok {
			return fmt.Errorf("year %d: missing table for filing status %q", t.Year, status)
		}
		if err := validateStatusTable(st); err != nil {
			return fmt.Errorf("year %d, status %q: %w", t.Year, status, err)
		}
	}
	if t.SE.WageBase.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("year %d: social security wage base must be positive", t.Year)
	}
	if len(t.DueDates) == 0 {
		return fmt.Errorf("year %d: at least one installment due date is required", t.Year)
	}
	for i := 1; i < len(t.DueDates); i++ {
		if !t.DueDates[i].After(t.DueDates[i-1]) {
			return fmt.Errorf("year %d: due dates must be strictly ascending", t.Year)
		}
	}
	return nil
}

func validateStatusTable(st StatusTable) error {
	if st.StandardDeduction.LessThan(decimal.Zero) {
		return fmt.Errorf("standard deduction cannot be negative")
	}
	if len(st.Brackets) == 0 {
		return fmt.Errorf("at least one bracket is required")
	}
	prev := decimal.Zero
	for i, b := range st.Brackets {
		if b.Rate.LessThan(decimal.Zero) || b.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("bracket %d: rate must be between 0 and 1", i)
		}
		last := i == len(st.Brackets)-1
		if last {
			if !b.Unbounded {
				return fmt.Errorf("last bracket must be unbounded")
			}
			continue
		}
		if b.Unbounded {
			return fmt.Errorf("bracket %d: only the last bracket may be unbounded", i)
		}
		if b.Upper.LessThanOrEqual(prev) {
			return fmt.Errorf("bracket %d: upper bound %s does not exceed previous bound %s", i, b.Upper, prev)
		}
		prev = b.Upper
	}
	if st.AdditionalMedicareThreshold.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("additional medicare threshold must be positive")
	}
	return nil
}

func bracket(rate float64, upper int64) TaxBracket {
	return TaxBracket{Rate: decimal.NewFromFloat(rate), Upper: decimal.NewFromInt(upper)}
}

func topBracket(rate float64) TaxBracket {
	return TaxBracket{Rate: decimal.NewFromFloat(rate), Unbounded: true}
}

// Year2025 returns the built-in table for tax year 2025.
func Year2025() *TaxYearTable {
	return &TaxYearTable{
		Year: 2025,
		Statuses: map[domain.FilingStatus]StatusTable{
			domain.FilingSingle: {
				StandardDeduction: decimal.NewFromInt(15000),
				Brackets: []TaxBracket{
					bracket(0.10, 11925),
					bracket(0.12, 48475),
					bracket(0.22, 103350),
					bracket(0.24, 197300),
					bracket(0.32, 250525),
					bracket(0.35, 626350),
					topBracket(0.37),
				},
				AdditionalMedicareThreshold: decimal.NewFromInt(200000),
			},
			domain.FilingMarriedJoint: {
				StandardDeduction: decimal.NewFromInt(30000),
				Brackets: []TaxBracket{
					bracket(0.10, 23850),
					bracket(0.12, 96950),
					bracket(0.22, 206700),
					bracket(0.24, 394600),
					bracket(0.32, 501050),
					bracket(0.35, 751600),
					topBracket(0.37),
				},
				AdditionalMedicareThreshold: decimal.NewFromInt(250000),
			},
			domain.FilingMarriedSeparate: {
				StandardDeduction: decimal.NewFromInt(15000),
				Brackets: []TaxBracket{
					bracket(0.10, 11925),
					bracket(0.12, 48475),
					bracket(0.22, 103350),
					bracket(0.24, 197300),
					bracket(0.32, 250525),
					bracket(0.35, 375800),
					topBracket(0.37),
				},
				AdditionalMedicareThreshold: decimal.NewFromInt(125000),
			},
			domain.FilingHeadOfHousehold: {
				StandardDeduction: decimal.NewFromInt(22500),
				Brackets: []TaxBracket{
					bracket(0.10, 17000),
					bracket(0.12, 64850),
					bracket(0.22, 103350),
					bracket(0.24, 197300),
					bracket(0.32, 250525),
					bracket(0.35, 626350),
					topBracket(0.37),
				},
				AdditionalMedicareThreshold: decimal.NewFromInt(200000),
			},
		},
		SE: SERates{
			NetEarningsFactor:      decimal.NewFromFloat(0.9235),
			OASDIRate:              decimal.NewFromFloat(0.124),
			MedicareRate:           decimal.NewFromFloat(0.029),
			AdditionalMedicareRate: decimal.NewFromFloat(0.009),
			WageBase:               decimal.NewFromInt(176100),
		},
		ChildCredit: ChildCreditRates{
			PerChild:              decimal.NewFromInt(2000),
			PerChildAlternate:     decimal.NewFromInt(2200),
			RefundableCapPerChild: decimal.NewFromInt(1700),
			PhaseInThreshold:      decimal.NewFromInt(2500),
			PhaseInRate:           decimal.NewFromFloat(0.15),
			PerOtherDependent:     decimal.NewFromInt(500),
		},
		DueDates: []time.Time{
			time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
	}
}

// ForYear returns the built-in table for the given tax year.
func ForYear(year int) (*TaxYearTable, error) {
	switch year {
	case 2025:
		return Year2025(), nil
	default:
		return nil, fmt.Errorf("no built-in tables for tax year %d", year)
	}
}
