package interfaces

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	cashflow "cashflow-report/internal/cashflow/domain"
)

const (
	sheetDailyReport    = "Relatório Diário"
	sheetTimeline       = "Timeline Detalhada"
	sheetBalanceHistory = "Histórico Saldos"
)

// WorkbookExporter builds the three-sheet report workbook.
type WorkbookExporter struct{}

// NewWorkbookExporter returns a workbook exporter.
func NewWorkbookExporter() *WorkbookExporter {
	return &WorkbookExporter{}
}

// BuildWorkbook renders the daily report, the full timeline and the balance
// history into an xlsx workbook. The output embeds no generation timestamp.
func (*WorkbookExporter) BuildWorkbook(report cashflow.DailyReport, timeline []cashflow.TimelineEntry, balances []cashflow.BalanceRecord) ([]byte, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetDailyReport)
	f.NewSheet(sheetTimeline)
	f.NewSheet(sheetBalanceHistory)

	writeDailySheet(f, report)
	writeTimelineSheet(f, timeline)
	writeBalanceSheet(f, balances)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeDailySheet(f *excelize.File, report cashflow.DailyReport) {
	headers := []string{
		"Data", "Dia da Semana", "Saldo Bancário",
		"Qtd Entradas", "Total Entradas",
		"Qtd Saídas", "Total Saídas",
		"Movimentação Líquida", "Saldo Final",
	}
	for i, header := range headers {
		_ = f.SetCellValue(sheetDailyReport, cell(i, 1), header)
	}
	for i, row := range report.Rows {
		line := i + 2
		_ = f.SetCellValue(sheetDailyReport, cell(0, line), formatDate(row.Date))
		_ = f.SetCellValue(sheetDailyReport, cell(1, line), weekdayName(row.Date))
		_ = f.SetCellValue(sheetDailyReport, cell(2, line), amount(row.OpeningBalance))
		_ = f.SetCellValue(sheetDailyReport, cell(3, line), row.InflowCount)
		_ = f.SetCellValue(sheetDailyReport, cell(4, line), amount(row.InflowsTotal))
		_ = f.SetCellValue(sheetDailyReport, cell(5, line), row.OutflowCount)
		_ = f.SetCellValue(sheetDailyReport, cell(6, line), amount(row.OutflowsTotal))
		_ = f.SetCellValue(sheetDailyReport, cell(7, line), amount(row.NetMovement))
		_ = f.SetCellValue(sheetDailyReport, cell(8, line), amount(row.ClosingBalance))
	}
}

func writeTimelineSheet(f *excelize.File, timeline []cashflow.TimelineEntry) {
	headers := []string{"Data", "Pedido", "Descrição", "Categoria", "Tipo", "Valor"}
	for i, header := range headers {
		_ = f.SetCellValue(sheetTimeline, cell(i, 1), header)
	}
	for i, entry := range timeline {
		line := i + 2
		_ = f.SetCellValue(sheetTimeline, cell(0, line), formatDate(entry.Date))
		_ = f.SetCellValue(sheetTimeline, cell(1, line), entry.OrderID)
		_ = f.SetCellValue(sheetTimeline, cell(2, line), entry.Counterparty)
		_ = f.SetCellValue(sheetTimeline, cell(3, line), categoryLabel(entry.Category))
		_ = f.SetCellValue(sheetTimeline, cell(4, line), directionLabel(entry.Direction))
		_ = f.SetCellValue(sheetTimeline, cell(5, line), amount(entry.Amount))
	}
}

func writeBalanceSheet(f *excelize.File, balances []cashflow.BalanceRecord) {
	_ = f.SetCellValue(sheetBalanceHistory, "A1", "Data")
	_ = f.SetCellValue(sheetBalanceHistory, "B1", "Saldo Bancário")
	for i, record := range balances {
		line := i + 2
		_ = f.SetCellValue(sheetBalanceHistory, fmt.Sprintf("A%d", line), formatDate(record.Date))
		_ = f.SetCellValue(sheetBalanceHistory, fmt.Sprintf("B%d", line), amount(record.Balance))
	}
}

var columns = [...]string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}

func cell(col, row int) string {
	return fmt.Sprintf("%s%d", columns[col], row)
}
