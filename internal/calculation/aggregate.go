package calculation

import (
	"github.com/shopspring/decimal"

	"quartax/internal/domain"
)

// Aggregate nets income tax, SE tax, and credits into a single liability,
// selects the safe-harbor target, and subtracts withholding.
//
// TotalTaxLiability is not floored at 0: a large refundable credit can
// legitimately drive it negative, and that overpayment signal is surfaced
// rather than hidden. AmountDueAfterWithholding is floored at 0.
func (e *Engine) Aggregate(in domain.Inputs) domain.LiabilitySummary {
	st := e.Tables.ForStatus(in.FilingStatus)

	// A business loss reduces total income without limit; only taxable
	// income is floored.
	totalIncome := in.W2Wages.Add(in.NetBusinessIncome).Add(in.OtherIncome)

	// Only positive business income counts as earned for the ACTC phase-in.
	earnedIncome := in.W2Wages.Add(decimal.Max(in.NetBusinessIncome, decimal.Zero))

	seTax := e.ComputeSETax(in.NetBusinessIncome, in.W2Wages, in.FilingStatus)

	taxableIncome := decimal.Max(
		totalIncome.Sub(st.StandardDeduction).Sub(seTax.HalfSEDeduction),
		decimal.Zero,
	)
	incomeTax := e.ComputeIncomeTax(taxableIncome, in.FilingStatus)

	credits := e.ComputeChildCredits(earnedIncome, in.DependentsUnder17, in.OtherDependents, in.PerChildCreditAlternate)

	nonrefundableUsed := decimal.Min(incomeTax, credits.NonrefundableChildCredit.Add(credits.OtherDependentCredit))
	incomeTaxAfterCredits := decimal.Max(incomeTax.Sub(nonrefundableUsed), decimal.Zero)

	childCreditRemaining := decimal.Max(
		credits.NonrefundableChildCredit.Sub(decimal.Min(incomeTax, credits.NonrefundableChildCredit)),
		decimal.Zero,
	)
	actc := decimal.Min(decimal.Min(credits.ACTCIncomeLimit, credits.ACTCCap), childCreditRemaining)

	totalLiability := incomeTaxAfterCredits.Add(seTax.Total).Sub(actc)

	target := e.safeHarborTarget(in, totalLiability)
	amountDue := decimal.Max(target.Sub(in.W2Withheld), decimal.Zero)

	e.Logger.Debugf("aggregate: totalIncome=%s taxable=%s incomeTax=%s seTax=%s actc=%s liability=%s target=%s due=%s",
		totalIncome, taxableIncome, incomeTax, seTax.Total, actc, totalLiability, target, amountDue)

	return domain.LiabilitySummary{
		TotalIncome:               totalIncome,
		EarnedIncome:              earnedIncome,
		TaxableIncome:             taxableIncome,
		IncomeTax:                 incomeTax,
		NonrefundableCreditUsed:   nonrefundableUsed,
		IncomeTaxAfterCredits:     incomeTaxAfterCredits,
		SETax:                     seTax,
		ACTC:                      actc,
		TotalTaxLiability:         totalLiability,
		SafeHarborTarget:          target,
		AmountDueAfterWithholding: amountDue,
	}
}

func (e *Engine) safeHarborTarget(in domain.Inputs, currentLiability decimal.Decimal) decimal.Decimal {
	switch in.SafeHarborMode {
	case domain.SafeHarborPriorYear100:
		return in.PriorYearTotalTax
	case domain.SafeHarborPriorYear110:
		return in.PriorYearTotalTax.Mul(decimal.NewFromFloat(1.10)).Round(0)
	default:
		return currentLiability
	}
}
