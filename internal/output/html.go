package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"quartax/internal/domain"
)

// HTMLFormatter produces the printable report (the print/PDF surface).
type HTMLFormatter struct{}

func (HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"date": func(r domain.Installment) string { return r.DueDate.Format("January 2, 2006") },
}).Parse(htmlTemplateSource))

func (HTMLFormatter) Format(report *domain.EstimateReport) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.EstimateReport
		ScheduleTotal string
	}{report, FormatCurrency(report.Schedule.Total())}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
