package calculation

import (
	"github.com/shopspring/decimal"

	"quartax/internal/domain"
)

// annualizedWeights is the weighted ("annualized") allocation policy. It is
// specific to a 4-installment schedule and is never applied for other
// installment counts.
var annualizedWeights = []int64{30, 30, 20, 20}

// Allocate splits totalAmount into n installments using integer-cent
// arithmetic. The sum of the returned amounts always equals totalAmount
// rounded to the cent, exactly: after the floored base shares are assigned,
// the leftover cents are distributed one at a time starting from the last
// installment and moving backward (wrapping to the last index after index
// 0). The backward walk is a deterministic tie-break that callers rely on
// for reproducible schedules; it is not "any valid rounding".
func Allocate(totalAmount decimal.Decimal, n int, weighted bool) []decimal.Decimal {
	if n == 0 {
		return nil
	}

	totalCents := totalAmount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if totalCents < 0 {
		totalCents = 0
	}

	amounts := make([]decimal.Decimal, n)
	if totalCents == 0 {
		for i := range amounts {
			amounts[i] = decimal.Zero
		}
		return amounts
	}

	weights := make([]int64, n)
	var weightSum int64
	for i := range weights {
		weights[i] = 1
		if weighted && n == len(annualizedWeights) {
			weights[i] = annualizedWeights[i]
		}
		weightSum += weights[i]
	}

	shares := make([]int64, n)
	var assigned int64
	for i := range shares {
		shares[i] = totalCents * weights[i] / weightSum
		assigned += shares[i]
	}

	for remainder, i := totalCents-assigned, n-1; remainder > 0; remainder-- {
		shares[i]++
		i--
		if i < 0 {
			i = n - 1
		}
	}

	for i, cents := range shares {
		amounts[i] = decimal.New(cents, -2)
	}
	return amounts
}

// Schedule allocates the post-withholding amount across the tax year's due
// dates.
func (e *Engine) Schedule(summary domain.LiabilitySummary, weighted bool) domain.InstallmentSchedule {
	dueDates := e.Tables.DueDates
	amounts := Allocate(summary.AmountDueAfterWithholding, len(dueDates), weighted)

	schedule := make(domain.InstallmentSchedule, len(dueDates))
	for i, due := range dueDates {
		schedule[i] = domain.Installment{DueDate: due, Amount: amounts[i]}
	}
	return schedule
}
