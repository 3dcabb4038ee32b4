// Package output renders estimate reports for the export layer: console,
// CSV, JSON, a printable HTML report, and an ICS calendar with one event
// per installment. Formatters consume the report read-only; every currency
// figure is rounded to the cent before presentation.
package output

import (
	"github.com/shopspring/decimal"

	"quartax/internal/domain"
)

// Formatter renders a complete estimate report in one output format.
type Formatter interface {
	Name() string
	Format(report *domain.EstimateReport) ([]byte, error)
}

var formatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
	ICSFormatter{},
	HTMLFormatter{},
}

// GetFormatterByName returns the formatter registered under name, or nil.
func GetFormatterByName(name string) Formatter {
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// FormatterNames lists the registered format names.
func FormatterNames() []string {
	names := make([]string, len(formatters))
	for i, f := range formatters {
		names[i] = f.Name()
	}
	return names
}

// FormatCurrency formats a decimal as currency, rounded to the cent.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatPercentage formats a decimal rate as a percentage.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
