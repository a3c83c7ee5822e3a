package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/xuri/excelize/v2"

	"cashflow-report/internal/config"
)

// Writes a synthetic statement workbook shaped like the production file:
// balance grid with a grand-total row, the three transaction regions with
// padding rows above the titles and a footer total, plus a few Brazilian
// formatted amounts.
func main() {
	output := flag.String("o", "", "output path, defaults to the configured input path")
	flag.Parse()

	if err := run(*output); err != nil {
		log.Fatalf("error: %v", err)
	}
}

func run(output string) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	if output == "" {
		output = cfg.InputPath
	}
	layout := cfg.Workbook

	f := excelize.NewFile()
	today := time.Now().UTC().Truncate(24 * time.Hour)
	day := func(offset int) string {
		return today.AddDate(0, 0, offset).Format("02/01/2006")
	}

	f.SetSheetName("Sheet1", layout.BalanceSheet)
	_ = f.SetCellValue(layout.BalanceSheet, "A1", "BANCO")
	_ = f.SetCellValue(layout.BalanceSheet, "C1", day(0))
	_ = f.SetCellValue(layout.BalanceSheet, "D1", day(-4))
	_ = f.SetCellValue(layout.BalanceSheet, "C2", "09:30")
	_ = f.SetCellValue(layout.BalanceSheet, "D2", "09:30")
	_ = f.SetCellValue(layout.BalanceSheet, "A3", "BANCO ALFA")
	_ = f.SetCellValue(layout.BalanceSheet, "C3", 61200.40)
	_ = f.SetCellValue(layout.BalanceSheet, "D3", 58900.10)
	_ = f.SetCellValue(layout.BalanceSheet, "A4", "BANCO BETA")
	_ = f.SetCellValue(layout.BalanceSheet, "C4", 23800.15)
	_ = f.SetCellValue(layout.BalanceSheet, "D4", 21550.00)
	_ = f.SetCellValue(layout.BalanceSheet, "B6", "TOTAL GERAL")
	_ = f.SetCellValue(layout.BalanceSheet, "C6", 85000.55)
	_ = f.SetCellValue(layout.BalanceSheet, "D6", 80450.10)

	headerRow := layout.HeaderRow + 1

	if _, err := f.NewSheet(layout.ReceivablesSheet); err != nil {
		return err
	}
	_ = f.SetCellValue(layout.ReceivablesSheet, "A1", "CONTAS A RECEBER - PRODUTO")
	_ = f.SetCellValue(layout.ReceivablesSheet, fmt.Sprintf("A%d", headerRow), layout.Receivables.OrderID)
	_ = f.SetCellValue(layout.ReceivablesSheet, fmt.Sprintf("B%d", headerRow), layout.Receivables.Counterparty)
	_ = f.SetCellValue(layout.ReceivablesSheet, fmt.Sprintf("C%d", headerRow), layout.Receivables.DueDate)
	_ = f.SetCellValue(layout.ReceivablesSheet, fmt.Sprintf("D%d", headerRow), layout.Receivables.Amount)
	receivables := []struct {
		order  string
		client string
		offset int
		amount interface{}
	}{
		{"P-1001", "ACME COMERCIO LTDA", 1, 4500.00},
		{"P-1002", "BETA DISTRIBUIDORA", 2, "R$ 7.890,50"},
		{"P-1003", "GAMA ATACADO", 4, 1250.75},
		{"P-1004", "ACME COMERCIO LTDA", 6, 980.00},
	}
	for i, r := range receivables {
		row := headerRow + 1 + i
		_ = f.SetCellValue(layout.ReceivablesSheet, fmt.Sprintf("A%d", row), r.order)
		_ = f.SetCellValue(layout.ReceivablesSheet, fmt.Sprintf("B%d", row), r.client)
		_ = f.SetCellValue(layout.ReceivablesSheet, fmt.Sprintf("C%d", row), day(r.offset))
		_ = f.SetCellValue(layout.ReceivablesSheet, fmt.Sprintf("D%d", row), r.amount)
	}
	footer := headerRow + 1 + len(receivables)
	_ = f.SetCellValue(layout.ReceivablesSheet, fmt.Sprintf("B%d", footer), "TOTAL")
	_ = f.SetCellValue(layout.ReceivablesSheet, fmt.Sprintf("D%d", footer), 14621.25)

	if _, err := f.NewSheet(layout.PayablesSheet); err != nil {
		return err
	}
	_ = f.SetCellValue(layout.PayablesSheet, "A1", "CONTAS A PAGAR - PRODUTO")
	_ = f.SetCellValue(layout.PayablesSheet, fmt.Sprintf("A%d", headerRow), layout.Payables.OrderID)
	_ = f.SetCellValue(layout.PayablesSheet, fmt.Sprintf("B%d", headerRow), layout.Payables.Counterparty)
	_ = f.SetCellValue(layout.PayablesSheet, fmt.Sprintf("C%d", headerRow), layout.Payables.DueDate)
	_ = f.SetCellValue(layout.PayablesSheet, fmt.Sprintf("D%d", headerRow), layout.Payables.Amount)
	payables := []struct {
		order    string
		supplier string
		offset   int
		amount   interface{}
	}{
		{"C-2001", "DELTA INDUSTRIA SA", 2, 3200.00},
		{"C-2002", "EPSILON INSUMOS", 3, "R$ 2.345,67"},
		{"C-2003", "ZETA EMBALAGENS", 6, 875.30},
	}
	for i, p := range payables {
		row := headerRow + 1 + i
		_ = f.SetCellValue(layout.PayablesSheet, fmt.Sprintf("A%d", row), p.order)
		_ = f.SetCellValue(layout.PayablesSheet, fmt.Sprintf("B%d", row), p.supplier)
		_ = f.SetCellValue(layout.PayablesSheet, fmt.Sprintf("C%d", row), day(p.offset))
		_ = f.SetCellValue(layout.PayablesSheet, fmt.Sprintf("D%d", row), p.amount)
	}

	if _, err := f.NewSheet(layout.ExpensesSheet); err != nil {
		return err
	}
	_ = f.SetCellValue(layout.ExpensesSheet, "A1", "SAÍDAS GERAIS")
	_ = f.SetCellValue(layout.ExpensesSheet, fmt.Sprintf("A%d", headerRow), layout.Expenses.DueDate)
	_ = f.SetCellValue(layout.ExpensesSheet, fmt.Sprintf("B%d", headerRow), layout.Expenses.Amount)
	expenses := []struct {
		offset int
		amount float64
	}{
		{1, 350.00},
		{1, 420.90},
		{3, 780.00},
		{5, 95.50},
	}
	for i, e := range expenses {
		row := headerRow + 1 + i
		_ = f.SetCellValue(layout.ExpensesSheet, fmt.Sprintf("A%d", row), day(e.offset))
		_ = f.SetCellValue(layout.ExpensesSheet, fmt.Sprintf("B%d", row), e.amount)
	}

	if err := f.SaveAs(output); err != nil {
		return err
	}
	log.Printf("seed workbook written to %s", output)
	return nil
}
