package calculation

import (
	"github.com/shopspring/decimal"

	"quartax/internal/domain"
)

// ComputeSETax computes the self-employment tax breakdown.
//
// The SE taxable base is max(0, netBusinessIncome) * the statutory 92.35%
// factor. A business loss contributes zero SE tax base (the loss still
// reduces total income in the aggregator; it is only the SE base that is
// floored here). W-2 wages consume the Social Security wage base first, so
// the OASDI portion is levied only on the remaining headroom. Medicare is
// uncapped. Additional Medicare applies to the amount of
// (w2Wages + seTaxableBase) above the filing-status threshold, capped at
// the SE base itself: the W-2 side's additional Medicare is handled by
// employer withholding, so only the self-employment-attributable share is
// computed here.
func (e *Engine) ComputeSETax(netBusinessIncome, w2Wages decimal.Decimal, status domain.FilingStatus) domain.SETaxResult {
	rates := e.Tables.SE
	threshold := e.Tables.ForStatus(status).AdditionalMedicareThreshold

	base := decimal.Max(netBusinessIncome, decimal.Zero).Mul(rates.NetEarningsFactor)

	headroom := decimal.Max(rates.WageBase.Sub(w2Wages), decimal.Zero)
	oasdi := decimal.Min(base, headroom).Mul(rates.OASDIRate)

	medicare := base.Mul(rates.MedicareRate)

	additional := decimal.Zero
	if excess := w2Wages.Add(base).Sub(threshold); excess.GreaterThan(decimal.Zero) {
		additional = decimal.Min(excess, base).Mul(rates.AdditionalMedicareRate)
	}

	// Additional Medicare is excluded from the half-SE deduction by law.
	half := oasdi.Add(medicare).Div(decimal.NewFromInt(2))

	return domain.SETaxResult{
		OASDI:              oasdi,
		Medicare:           medicare,
		AdditionalMedicare: additional,
		Total:              oasdi.Add(medicare).Add(additional),
		SETaxableBase:      base,
		HalfSEDeduction:    half,
	}
}
