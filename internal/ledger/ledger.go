// Package ledger is the business-expense subsystem: categorized expense
// logging per business type, with a deterministic keyword categorizer and
// an optional external inference hook. It sits entirely outside the tax
// engine; its only connection is that callers subtract a ledger's total
// from gross receipts before constructing the engine's net business income.
package ledger

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"quartax/internal/domain"
)

// Ledger holds the logged expenses for one business.
type Ledger struct {
	Business domain.BusinessType
	Entries  []domain.ExpenseEntry

	categorizer Categorizer
}

// NewLedger creates an empty ledger using the keyword categorizer for the
// business type.
func NewLedger(business domain.BusinessType) *Ledger {
	return &Ledger{
		Business:    business,
		categorizer: NewKeywordCategorizer(business),
	}
}

// NewLedgerWithCategorizer creates a ledger that consults an external
// categorizer first and falls back to keyword matching when it is
// unavailable.
func NewLedgerWithCategorizer(business domain.BusinessType, external Categorizer) *Ledger {
	return &Ledger{
		Business: business,
		categorizer: &FallbackCategorizer{
			Primary:  external,
			Fallback: NewKeywordCategorizer(business),
		},
	}
}

// Add logs an expense, assigning it an ID and a suggested category.
func (l *Ledger) Add(date time.Time, description string, amount decimal.Decimal) domain.ExpenseEntry {
	entry := domain.ExpenseEntry{
		ID:          uuid.New().String(),
		Date:        date,
		Description: description,
		Amount:      amount,
	}
	suggestion, _ := l.categorizer.Categorize(description, amount)
	entry.Category = suggestion.Category
	entry.Status = suggestion.Status
	entry.Confidence = suggestion.Confidence

	l.Entries = append(l.Entries, entry)
	return entry
}

// AddEntry logs a pre-built entry (e.g. loaded from a file), filling in a
// missing ID and categorizing only entries the user has not already
// assigned.
func (l *Ledger) AddEntry(entry domain.ExpenseEntry) domain.ExpenseEntry {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Category == "" {
		suggestion, _ := l.categorizer.Categorize(entry.Description, entry.Amount)
		entry.Category = suggestion.Category
		entry.Status = suggestion.Status
		entry.Confidence = suggestion.Confidence
	} else if entry.Status == "" {
		entry.Status = domain.StatusUserAssigned
	}
	l.Entries = append(l.Entries, entry)
	return entry
}

// Total returns the sum of all logged expense amounts.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.Entries {
		total = total.Add(e.Amount)
	}
	return total
}

// CategoryTotal is one category's aggregate for reporting.
type CategoryTotal struct {
	Category string
	Count    int
	Total    decimal.Decimal
}

// TotalsByCategory returns per-category aggregates, sorted by descending
// total (then by name for a stable order).
func (l *Ledger) TotalsByCategory() []CategoryTotal {
	byName := make(map[string]*CategoryTotal)
	for _, e := range l.Entries {
		ct, ok := byName[e.Category]
		if !ok {
			ct = &CategoryTotal{Category: e.Category, Total: decimal.Zero}
			byName[e.Category] = ct
		}
		ct.Count++
		ct.Total = ct.Total.Add(e.Amount)
	}

	out := make([]CategoryTotal, 0, len(byName))
	for _, ct := range byName {
		out = append(out, *ct)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// NetBusinessIncome subtracts the ledger total from gross receipts. This is
// the value callers place in Inputs.NetBusinessIncome; the engine never
// sees individual expenses.
func (l *Ledger) NetBusinessIncome(grossReceipts decimal.Decimal) decimal.Decimal {
	return grossReceipts.Sub(l.Total())
}
