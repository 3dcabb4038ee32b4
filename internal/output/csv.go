package output

import (
	"bytes"
	"encoding/csv"

	"quartax/internal/domain"
)

// CSVFormatter writes the liability summary followed by the payment
// schedule, one section per table.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(report *domain.EstimateReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	s := report.Summary
	summaryRows := [][]string{
		{"Field", "Amount"},
		{"TotalIncome", s.TotalIncome.StringFixed(2)},
		{"TaxableIncome", s.TaxableIncome.StringFixed(2)},
		{"IncomeTax", s.IncomeTax.StringFixed(2)},
		{"NonrefundableCreditUsed", s.NonrefundableCreditUsed.StringFixed(2)},
		{"IncomeTaxAfterCredits", s.IncomeTaxAfterCredits.StringFixed(2)},
		{"SETaxOASDI", s.SETax.OASDI.StringFixed(2)},
		{"SETaxMedicare", s.SETax.Medicare.StringFixed(2)},
		{"SETaxAdditionalMedicare", s.SETax.AdditionalMedicare.StringFixed(2)},
		{"SETaxTotal", s.SETax.Total.StringFixed(2)},
		{"HalfSEDeduction", s.SETax.HalfSEDeduction.StringFixed(2)},
		{"ACTC", s.ACTC.StringFixed(2)},
		{"TotalTaxLiability", s.TotalTaxLiability.StringFixed(2)},
		{"SafeHarborTarget", s.SafeHarborTarget.StringFixed(2)},
		{"AmountDueAfterWithholding", s.AmountDueAfterWithholding.StringFixed(2)},
	}
	for _, row := range summaryRows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	if err := w.Write([]string{}); err != nil {
		return nil, err
	}
	if err := w.Write([]string{"DueDate", "Amount"}); err != nil {
		return nil, err
	}
	for _, inst := range report.Schedule {
		if err := w.Write([]string{inst.DueDate.Format("2006-01-02"), inst.Amount.StringFixed(2)}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
