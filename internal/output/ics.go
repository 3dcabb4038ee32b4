package output

import (
	"bytes"
	"fmt"

	"quartax/internal/domain"
)

// ICSFormatter emits an RFC 5545 calendar with one all-day event per
// installment, keyed by due date. Lines use CRLF endings per the RFC.
type ICSFormatter struct{}

func (ICSFormatter) Name() string { return "ics" }

func (ICSFormatter) Format(report *domain.EstimateReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	writeICSLine(buf, "BEGIN:VCALENDAR")
	writeICSLine(buf, "VERSION:2.0")
	writeICSLine(buf, "PRODID:-//quartax//estimated-tax//EN")
	writeICSLine(buf, "CALSCALE:GREGORIAN")

	stamp := report.GeneratedAt.UTC().Format("20060102T150405Z")
	for i, inst := range report.Schedule {
		date := inst.DueDate.Format("20060102")
		writeICSLine(buf, "BEGIN:VEVENT")
		writeICSLine(buf, fmt.Sprintf("UID:quartax-%d-q%d-%s", report.TaxYear, i+1, date))
		writeICSLine(buf, "DTSTAMP:"+stamp)
		writeICSLine(buf, "DTSTART;VALUE=DATE:"+date)
		writeICSLine(buf, fmt.Sprintf("SUMMARY:Estimated tax payment %d of %d: %s", i+1, len(report.Schedule), FormatCurrency(inst.Amount)))
		writeICSLine(buf, fmt.Sprintf("DESCRIPTION:Quarterly estimated tax installment for tax year %d. Amount due: %s.", report.TaxYear, FormatCurrency(inst.Amount)))
		writeICSLine(buf, "END:VEVENT")
	}

	writeICSLine(buf, "END:VCALENDAR")
	return buf.Bytes(), nil
}

func writeICSLine(buf *bytes.Buffer, line string) {
	buf.WriteString(line)
	buf.WriteString("\r\n")
}
