package calculation

import (
	"github.com/shopspring/decimal"

	"quartax/internal/domain"
	"quartax/internal/tables"
)

// ComputeIncomeTax applies the progressive brackets for the given filing
// status to a taxable-income figure. The result is rounded half-up to the
// nearest whole dollar and floored at 0. Malformed bracket tables are a
// data-integrity defect caught by tables.Validate, not a runtime error path.
func (e *Engine) ComputeIncomeTax(taxableIncome decimal.Decimal, status domain.FilingStatus) decimal.Decimal {
	return IncomeTax(taxableIncome, e.Tables.ForStatus(status))
}

// IncomeTax walks the ordered bracket list, accumulating
// rate * min(remaining, bracket width) per bracket until the income is
// exhausted.
func IncomeTax(taxableIncome decimal.Decimal, st tables.StatusTable) decimal.Decimal {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	tax := decimal.Zero
	remaining := taxableIncome
	prevUpper := decimal.Zero
	for _, b := range st.Brackets {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		inBracket := remaining
		if !b.Unbounded {
			width := b.Upper.Sub(prevUpper)
			inBracket = decimal.Min(remaining, width)
			prevUpper = b.Upper
		}
		tax = tax.Add(inBracket.Mul(b.Rate))
		remaining = remaining.Sub(inBracket)
	}

	tax = tax.Round(0)
	if tax.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return tax
}
