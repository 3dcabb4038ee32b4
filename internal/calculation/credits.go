package calculation

import (
	"github.com/shopspring/decimal"

	"quartax/internal/domain"
)

// ComputeChildCredits computes the raw child and dependent credit amounts.
// The aggregator applies the nonrefundable-credit-vs-tax-owed cap and takes
// the minimum of (remaining child credit, income-based limit, per-child
// refundable cap) to get the refundable ACTC actually granted; this
// function only produces the inputs to those caps.
//
// Negative dependent counts are a caller precondition violation, rejected
// at the config boundary before this is reached.
func (e *Engine) ComputeChildCredits(earnedIncome decimal.Decimal, qualifyingChildren, otherDependents int, alternatePerChild bool) domain.CreditsResult {
	cc := e.Tables.ChildCredit

	perChild := cc.PerChild
	if alternatePerChild {
		perChild = cc.PerChildAlternate
	}

	children := decimal.NewFromInt(int64(qualifyingChildren))

	// Earned-income phase-in for refundability.
	phaseInBase := decimal.Max(earnedIncome.Sub(cc.PhaseInThreshold), decimal.Zero)

	return domain.CreditsResult{
		NonrefundableChildCredit: perChild.Mul(children),
		OtherDependentCredit:     cc.PerOtherDependent.Mul(decimal.NewFromInt(int64(otherDependents))),
		ACTCIncomeLimit:          phaseInBase.Mul(cc.PhaseInRate),
		ACTCCap:                  cc.RefundableCapPerChild.Mul(children),
	}
}
