package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SETaxResult is the self-employment tax breakdown for one filer-year.
// Total = OASDI + Medicare + AdditionalMedicare. HalfSEDeduction is
// 0.5 * (OASDI + Medicare); Additional Medicare is excluded from the
// deduction by law.
type SETaxResult struct {
	OASDI              decimal.Decimal `json:"oasdi"`
	Medicare           decimal.Decimal `json:"medicare"`
	AdditionalMedicare decimal.Decimal `json:"additional_medicare"`
	Total              decimal.Decimal `json:"total"`
	SETaxableBase      decimal.Decimal `json:"se_taxable_base"`
	HalfSEDeduction    decimal.Decimal `json:"half_se_deduction"`
}

// CreditsResult holds the intermediate child/dependent credit amounts. The
// liability aggregator derives the usable nonrefundable amount (capped by
// remaining tax) and the refundable ACTC (lesser of remaining child credit,
// income-based limit, and per-child refundable cap).
type CreditsResult struct {
	NonrefundableChildCredit decimal.Decimal `json:"nonrefundable_child_credit"`
	OtherDependentCredit     decimal.Decimal `json:"other_dependent_credit"`
	ACTCIncomeLimit          decimal.Decimal `json:"actc_income_limit"`
	ACTCCap                  decimal.Decimal `json:"actc_cap"`
}

// LiabilitySummary is the aggregator's output for one calculation request.
//
// TotalTaxLiability = IncomeTaxAfterCredits + SETax.Total - ACTC and is
// deliberately not floored at 0: a negative liability is an overpayment
// signal the caller may want to surface. AmountDueAfterWithholding is
// floored at 0.
type LiabilitySummary struct {
	TotalIncome               decimal.Decimal `json:"total_income"`
	EarnedIncome              decimal.Decimal `json:"earned_income"`
	TaxableIncome             decimal.Decimal `json:"taxable_income"`
	IncomeTax                 decimal.Decimal `json:"income_tax"`
	NonrefundableCreditUsed   decimal.Decimal `json:"nonrefundable_credit_used"`
	IncomeTaxAfterCredits     decimal.Decimal `json:"income_tax_after_credits"`
	SETax                     SETaxResult     `json:"se_tax"`
	ACTC                      decimal.Decimal `json:"actc"`
	TotalTaxLiability         decimal.Decimal `json:"total_tax_liability"`
	SafeHarborTarget          decimal.Decimal `json:"safe_harbor_target"`
	AmountDueAfterWithholding decimal.Decimal `json:"amount_due_after_withholding"`
}

// Installment is one scheduled estimated-tax payment.
type Installment struct {
	DueDate time.Time       `json:"due_date"`
	Amount  decimal.Decimal `json:"amount"`
}

// InstallmentSchedule is the ordered payment schedule, one entry per due
// date. The sum of all amounts, in integer cents, equals the integer-cent
// rounding of the amount distributed; no cent is lost or gained.
type InstallmentSchedule []Installment

// Total returns the sum of all installment amounts.
func (s InstallmentSchedule) Total() decimal.Decimal {
	total := decimal.Zero
	for _, inst := range s {
		total = total.Add(inst.Amount)
	}
	return total
}

// EstimateReport bundles everything the export layer renders: the request,
// the computed liability, and the payment schedule.
type EstimateReport struct {
	TaxYear     int                 `json:"tax_year"`
	Inputs      Inputs              `json:"inputs"`
	Summary     LiabilitySummary    `json:"summary"`
	Schedule    InstallmentSchedule `json:"schedule"`
	GeneratedAt time.Time           `json:"generated_at"`
}
