package output

import (
	"bytes"
	"fmt"
	"strings"

	"quartax/internal/domain"
)

// ConsoleFormatter produces the detailed plain-text breakdown report.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(report *domain.EstimateReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	s := report.Summary

	fmt.Fprintf(buf, "QUARTERLY ESTIMATED TAX %d\n", report.TaxYear)
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "INCOME")
	fmt.Fprintf(buf, "  W-2 Wages:              %s\n", FormatCurrency(report.Inputs.W2Wages))
	fmt.Fprintf(buf, "  Net Business Income:    %s\n", FormatCurrency(report.Inputs.NetBusinessIncome))
	fmt.Fprintf(buf, "  Other Income:           %s\n", FormatCurrency(report.Inputs.OtherIncome))
	fmt.Fprintf(buf, "  TOTAL INCOME:           %s\n", FormatCurrency(s.TotalIncome))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "SELF-EMPLOYMENT TAX")
	fmt.Fprintf(buf, "  SE Taxable Base:        %s\n", FormatCurrency(s.SETax.SETaxableBase))
	fmt.Fprintf(buf, "  Social Security:        %s\n", FormatCurrency(s.SETax.OASDI))
	fmt.Fprintf(buf, "  Medicare:               %s\n", FormatCurrency(s.SETax.Medicare))
	fmt.Fprintf(buf, "  Additional Medicare:    %s\n", FormatCurrency(s.SETax.AdditionalMedicare))
	fmt.Fprintf(buf, "  TOTAL SE TAX:           %s\n", FormatCurrency(s.SETax.Total))
	fmt.Fprintf(buf, "  Half-SE Deduction:      %s\n", FormatCurrency(s.SETax.HalfSEDeduction))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "INCOME TAX")
	fmt.Fprintf(buf, "  Taxable Income:         %s\n", FormatCurrency(s.TaxableIncome))
	fmt.Fprintf(buf, "  Income Tax:             %s\n", FormatCurrency(s.IncomeTax))
	fmt.Fprintf(buf, "  Nonrefundable Credits:  -%s\n", FormatCurrency(s.NonrefundableCreditUsed))
	fmt.Fprintf(buf, "  After Credits:          %s\n", FormatCurrency(s.IncomeTaxAfterCredits))
	if s.ACTC.IsPositive() {
		fmt.Fprintf(buf, "  Refundable ACTC:        -%s\n", FormatCurrency(s.ACTC))
	}
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "LIABILITY")
	fmt.Fprintf(buf, "  TOTAL TAX LIABILITY:    %s\n", FormatCurrency(s.TotalTaxLiability))
	if s.TotalTaxLiability.IsNegative() {
		fmt.Fprintln(buf, "  (negative liability: refundable credits exceed tax, refund expected)")
	}
	fmt.Fprintf(buf, "  Safe Harbor Target:     %s (%s)\n", FormatCurrency(s.SafeHarborTarget), report.Inputs.SafeHarborMode)
	fmt.Fprintf(buf, "  W-2 Withholding:        -%s\n", FormatCurrency(report.Inputs.W2Withheld))
	fmt.Fprintf(buf, "  AMOUNT DUE:             %s\n", FormatCurrency(s.AmountDueAfterWithholding))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "PAYMENT SCHEDULE")
	for i, inst := range report.Schedule {
		fmt.Fprintf(buf, "  Payment %d  %s  %s\n", i+1, inst.DueDate.Format("Jan 2, 2006"), FormatCurrency(inst.Amount))
	}
	fmt.Fprintf(buf, "  TOTAL:     %s\n", FormatCurrency(report.Schedule.Total()))

	return buf.Bytes(), nil
}
