package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BusinessType selects which expense-category taxonomy applies.
type BusinessType string

const (
	BusinessEcommerce  BusinessType = "ecommerce"
	BusinessRideshare  BusinessType = "rideshare"
	BusinessConsultant BusinessType = "consultant"
)

// Valid reports whether b is a supported business type.
func (b BusinessType) Valid() bool {
	switch b {
	case BusinessEcommerce, BusinessRideshare, BusinessConsultant:
		return true
	}
	return false
}

// CategorizationStatus indicates how an expense entry was categorized.
type CategorizationStatus string

const (
	StatusUncategorized        CategorizationStatus = "UNCATEGORIZED"
	StatusCategorizedByKeyword CategorizationStatus = "CATEGORIZED_BY_KEYWORD"
	StatusCategorizedByService CategorizationStatus = "CATEGORIZED_BY_SERVICE"
	StatusUserAssigned         CategorizationStatus = "USER_ASSIGNED"
)

// ExpenseEntry is one logged business expense. Category and Confidence are
// filled by the categorizer (or by the user); neither participates in the
// tax math; the engine only ever sees the ledger's net effect on
// Inputs.NetBusinessIncome.
type ExpenseEntry struct {
	ID          string               `yaml:"id" json:"id"`
	Date        time.Time            `yaml:"date" json:"date"`
	Description string               `yaml:"description" json:"description"`
	Amount      decimal.Decimal      `yaml:"amount" json:"amount"`
	Category    string               `yaml:"category,omitempty" json:"category,omitempty"`
	Status      CategorizationStatus `yaml:"status,omitempty" json:"status,omitempty"`
	Confidence  float64              `yaml:"confidence,omitempty" json:"confidence,omitempty"`
}

// CategorySuggestion is a categorizer's best guess for one expense.
type CategorySuggestion struct {
	Category   string
	Confidence float64
	Status     CategorizationStatus
}
