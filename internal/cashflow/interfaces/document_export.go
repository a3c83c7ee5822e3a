package interfaces

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	cashflow "cashflow-report/internal/cashflow/domain"
	"cashflow-report/internal/config"
)

// documentTemplate is the markup written beside the pdf for inspection.
const documentTemplate = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
@page { size: A4; margin: 16mm; }
body { font-family: Helvetica, Arial, sans-serif; font-size: 12px; color: #1f2430; margin: 24px; }
header { border-bottom: 2px solid #1f2430; padding-bottom: 8px; margin-bottom: 16px; }
h1 { margin: 0; font-size: 22px; }
p.subtitle { margin: 2px 0 10px; font-size: 14px; color: #5a6072; }
p.meta { margin: 2px 0; font-size: 11px; color: #5a6072; }
section.day { page-break-inside: avoid; margin-bottom: 14px; }
h2 { font-size: 14px; background: #e8edf5; padding: 4px 6px; margin: 0 0 4px; }
h2 span.weekday { font-weight: normal; color: #5a6072; }
h3 { font-size: 12px; margin: 6px 0 2px; }
table { width: 100%; border-collapse: collapse; margin-bottom: 4px; }
td { border: 1px solid #c9cfdb; padding: 3px 6px; }
td.value { text-align: right; white-space: nowrap; width: 130px; }
tr.total td { font-weight: bold; background: #f4f6fa; }
p.closing { text-align: right; font-weight: bold; margin: 2px 0 0; }
p.empty { font-style: italic; color: #5a6072; }
section.summary { margin-top: 20px; border-top: 2px solid #1f2430; padding-top: 8px; }
</style>
</head>
<body>
<header>
<h1>{{.Title}}</h1>
<p class="subtitle">{{.Subtitle}}</p>
<p class="meta">Gerado em: {{datetime .GeneratedAt}}</p>
<p class="meta">Período: {{date .PeriodStart}} a {{date .PeriodEnd}}</p>
<p class="meta">Saldo base: {{currency .BaseBalance}}</p>
</header>
{{if .Days}}{{range .Days}}<section class="day">
<h2>{{date .Date}} <span class="weekday">{{weekday .Date}}</span></h2>
{{if .Inflows}}<h3>Entradas</h3>
<table>
{{range .Inflows}}<tr><td>{{.Description}}</td><td class="value">{{currency .Amount}}</td></tr>
{{end}}<tr class="total"><td>Total Entradas</td><td class="value">{{currency .InflowsTotal}}</td></tr>
</table>
{{end}}{{if .Outflows}}<h3>Saídas</h3>
<table>
{{range .Outflows}}<tr><td>{{.Description}}</td><td class="value">{{currency .Amount}}</td></tr>
{{end}}<tr class="total"><td>Total Saídas</td><td class="value">{{currency .OutflowsTotal}}</td></tr>
</table>
{{end}}<p class="closing">Saldo do dia: {{currency .ClosingBalance}}</p>
</section>
{{end}}{{else}}<p class="empty">Sem movimentações no período.</p>
{{end}}<section class="summary">
<h2>Resumo do Período</h2>
<table>
<tr><td>Dias projetados</td><td class="value">{{.Summary.Days}}</td></tr>
<tr><td>Dias com movimentação</td><td class="value">{{.Summary.DaysWithMovement}}</td></tr>
<tr><td>Entradas ({{.Summary.InflowCount}})</td><td class="value">{{currency .Summary.InflowsTotal}}</td></tr>
<tr><td>Saídas ({{.Summary.OutflowCount}})</td><td class="value">{{currency .Summary.OutflowsTotal}}</td></tr>
<tr><td>Variação</td><td class="value">{{currency .Summary.Variation}}</td></tr>
<tr class="total"><td>Saldo final</td><td class="value">{{currency .Summary.FinalBalance}}</td></tr>
</table>
</section>
</body>
</html>
`

type documentLine struct {
	Description string
	Amount      decimal.Decimal
}

type documentDay struct {
	Date           time.Time
	Inflows        []documentLine
	Outflows       []documentLine
	InflowsTotal   decimal.Decimal
	OutflowsTotal  decimal.Decimal
	ClosingBalance decimal.Decimal
}

type documentData struct {
	Title       string
	Subtitle    string
	GeneratedAt time.Time
	PeriodStart time.Time
	PeriodEnd   time.Time
	BaseBalance decimal.Decimal
	Days        []documentDay
	Summary     cashflow.ProjectionSummary
}

// PaperRenderer renders the day-by-day paper report, as html markup and as
// a paginated pdf. Only days with movement appear in the body.
type PaperRenderer struct {
	report config.Report
	clock  cashflow.Clock
	tpl    *template.Template
}

// NewPaperRenderer builds a renderer with the given header texts.
func NewPaperRenderer(report config.Report, clock cashflow.Clock) (*PaperRenderer, error) {
	if clock == nil {
		return nil, errors.New("paper renderer: nil clock")
	}
	tpl, err := template.New("paper-report").Funcs(template.FuncMap{
		"currency": formatCurrency,
		"date":     formatDate,
		"datetime": formatDateTime,
		"weekday":  weekdayName,
	}).Parse(documentTemplate)
	if err != nil {
		return nil, err
	}
	return &PaperRenderer{report: report, clock: clock, tpl: tpl}, nil
}

// RenderDocument renders the report and returns the markup and the pdf.
func (r *PaperRenderer) RenderDocument(report cashflow.DailyReport, timeline []cashflow.TimelineEntry) ([]byte, []byte, error) {
	data := r.assemble(report, timeline)

	var markup bytes.Buffer
	if err := r.tpl.Execute(&markup, data); err != nil {
		return nil, nil, fmt.Errorf("render markup: %w", err)
	}
	document, err := renderPDF(data)
	if err != nil {
		return nil, nil, fmt.Errorf("render pdf: %w", err)
	}
	return markup.Bytes(), document, nil
}

func (r *PaperRenderer) assemble(report cashflow.DailyReport, timeline []cashflow.TimelineEntry) documentData {
	data := documentData{
		Title:       r.report.Title,
		Subtitle:    r.report.Subtitle,
		GeneratedAt: r.clock.Now(),
		BaseBalance: report.StartBalance,
		Summary:     cashflow.Summarize(report),
	}

	byDay := make(map[time.Time][]cashflow.TimelineEntry)
	for _, entry := range timeline {
		key := dayKey(entry.Date)
		byDay[key] = append(byDay[key], entry)
	}

	for _, row := range report.Rows {
		if !row.HasMovement() {
			continue
		}
		day := documentDay{
			Date:           row.Date,
			InflowsTotal:   row.InflowsTotal,
			OutflowsTotal:  row.OutflowsTotal,
			ClosingBalance: row.ClosingBalance,
		}
		for _, entry := range byDay[row.Date] {
			line := documentLine{Description: entryDescription(entry), Amount: entry.Amount}
			if entry.Direction == cashflow.DirectionInflow {
				day.Inflows = append(day.Inflows, line)
			} else {
				day.Outflows = append(day.Outflows, line)
			}
		}
		data.Days = append(data.Days, day)
	}

	if len(data.Days) > 0 {
		data.PeriodStart = data.Days[0].Date
		data.PeriodEnd = data.Days[len(data.Days)-1].Date
	} else {
		data.PeriodStart = report.StartDate
		data.PeriodEnd = report.EndDate()
	}
	return data
}

func renderPDF(data documentData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetCreationDate(data.GeneratedAt)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 9, tr(data.Title))
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 6, tr(data.Subtitle))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 5, tr("Gerado em: "+formatDateTime(data.GeneratedAt)))
	pdf.Ln(5)
	pdf.Cell(0, 5, tr("Período: "+formatDate(data.PeriodStart)+" a "+formatDate(data.PeriodEnd)))
	pdf.Ln(5)
	pdf.Cell(0, 5, tr("Saldo base: "+formatCurrency(data.BaseBalance)))
	pdf.Ln(9)

	if len(data.Days) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.Cell(0, 6, tr("Sem movimentações no período."))
		pdf.Ln(8)
	}
	for _, day := range data.Days {
		pdf.SetFont("Arial", "B", 11)
		pdf.SetFillColor(232, 237, 245)
		pdf.CellFormat(0, 7, tr(formatDate(day.Date)+"  "+weekdayName(day.Date)), "1", 0, "L", true, 0, "")
		pdf.Ln(-1)
		if len(day.Inflows) > 0 {
			writeDocumentLines(pdf, tr, "Entradas", day.Inflows, day.InflowsTotal)
		}
		if len(day.Outflows) > 0 {
			writeDocumentLines(pdf, tr, "Saídas", day.Outflows, day.OutflowsTotal)
		}
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(0, 6, tr("Saldo do dia: "+formatCurrency(day.ClosingBalance)), "", 0, "R", false, 0, "")
		pdf.Ln(9)
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 7, tr("Resumo do Período"))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	writeSummaryRow(pdf, tr, "Dias projetados", fmt.Sprintf("%d", data.Summary.Days))
	writeSummaryRow(pdf, tr, "Dias com movimentação", fmt.Sprintf("%d", data.Summary.DaysWithMovement))
	writeSummaryRow(pdf, tr, fmt.Sprintf("Entradas (%d)", data.Summary.InflowCount), formatCurrency(data.Summary.InflowsTotal))
	writeSummaryRow(pdf, tr, fmt.Sprintf("Saídas (%d)", data.Summary.OutflowCount), formatCurrency(data.Summary.OutflowsTotal))
	writeSummaryRow(pdf, tr, "Variação", formatCurrency(data.Summary.Variation))
	pdf.SetFont("Arial", "B", 10)
	writeSummaryRow(pdf, tr, "Saldo final", formatCurrency(data.Summary.FinalBalance))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeDocumentLines(pdf *gofpdf.Fpdf, tr func(string) string, label string, lines []documentLine, total decimal.Decimal) {
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(0, 6, tr(label), "1", 0, "L", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
	for _, line := range lines {
		pdf.CellFormat(140, 6, tr(line.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, tr(formatCurrency(line.Amount)), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(140, 6, tr("Total "+label), "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 6, tr(formatCurrency(total)), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)
}

func writeSummaryRow(pdf *gofpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.CellFormat(140, 6, tr(label), "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 6, tr(value), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)
}

func dayKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
