package excel

import (
	"context"
	"fmt"
	"strings"

	cashflow "cashflow-report/internal/cashflow/domain"
	"cashflow-report/internal/config"
)

// Receivables reads the incoming-payment region. The dropped count tells
// how many data rows were discarded for an unparsable due date or amount.
func (r *Reader) Receivables(ctx context.Context) ([]cashflow.Transaction, int, error) {
	return r.extractTabular(r.layout.ReceivablesSheet, r.layout.Receivables, cashflow.CategoryReceivable)
}

// ProductPayables reads the outgoing product-payment region.
func (r *Reader) ProductPayables(ctx context.Context) ([]cashflow.Transaction, int, error) {
	return r.extractTabular(r.layout.PayablesSheet, r.layout.Payables, cashflow.CategoryPayableProduct)
}

// extractTabular walks a fixed-offset region in appearance order. Rows
// without an order id are padding or footer totals and are skipped without
// counting; rows with an order id but invalid date or amount are dropped.
func (r *Reader) extractTabular(sheet string, columns config.TabularColumns, category cashflow.Category) ([]cashflow.Transaction, int, error) {
	rows, err := r.rows(sheet)
	if err != nil {
		return nil, 0, err
	}
	if len(rows) <= r.layout.HeaderRow {
		return nil, 0, fmt.Errorf("sheet %q header row %d: %w", sheet, r.layout.HeaderRow, cashflow.ErrColumnNotFound)
	}
	header := rows[r.layout.HeaderRow]

	orderCol, ok := findColumn(header, columns.OrderID)
	if !ok {
		return nil, 0, fmt.Errorf("sheet %q column %q: %w", sheet, columns.OrderID, cashflow.ErrColumnNotFound)
	}
	counterpartyCol, ok := findColumn(header, columns.Counterparty)
	if !ok {
		return nil, 0, fmt.Errorf("sheet %q column %q: %w", sheet, columns.Counterparty, cashflow.ErrColumnNotFound)
	}
	dueCol, ok := findColumn(header, columns.DueDate)
	if !ok {
		return nil, 0, fmt.Errorf("sheet %q column %q: %w", sheet, columns.DueDate, cashflow.ErrColumnNotFound)
	}
	amountCol, ok := findColumn(header, columns.Amount)
	if !ok {
		return nil, 0, fmt.Errorf("sheet %q column %q: %w", sheet, columns.Amount, cashflow.ErrColumnNotFound)
	}

	var txs []cashflow.Transaction
	dropped := 0
	for rowIdx := r.layout.HeaderRow + 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		orderID := strings.TrimSpace(cellAt(row, orderCol))
		if orderID == "" {
			continue
		}
		date, dateOK := parseDate(cellAt(row, dueCol))
		amount, amountOK := parseNumber(cellAt(row, amountCol))
		if !dateOK || !amountOK {
			dropped++
			r.logger.Warn().
				Str("sheet", sheet).
				Int("row", rowIdx+1).
				Str("order_id", orderID).
				Msg("dropped row with invalid due date or amount")
			continue
		}
		txs = append(txs, cashflow.Transaction{
			Date:         date,
			Amount:       amount.Abs(),
			Category:     category,
			OrderID:      orderID,
			Counterparty: strings.TrimSpace(cellAt(row, counterpartyCol)),
		})
	}

	r.logger.Info().
		Str("sheet", sheet).
		Int("rows", len(txs)).
		Int("dropped", dropped).
		Msg("transactions extracted")
	return txs, dropped, nil
}

// GeneralExpenses reads the non-product expense region and groups it by
// due date, one summed transaction per day.
func (r *Reader) GeneralExpenses(ctx context.Context) ([]cashflow.Transaction, int, error) {
	sheet := r.layout.ExpensesSheet
	rows, err := r.rows(sheet)
	if err != nil {
		return nil, 0, err
	}
	if len(rows) <= r.layout.HeaderRow {
		return nil, 0, fmt.Errorf("sheet %q header row %d: %w", sheet, r.layout.HeaderRow, cashflow.ErrColumnNotFound)
	}
	header := rows[r.layout.HeaderRow]

	dueCol, ok := findColumn(header, r.layout.Expenses.DueDate)
	if !ok {
		return nil, 0, fmt.Errorf("sheet %q column %q: %w", sheet, r.layout.Expenses.DueDate, cashflow.ErrColumnNotFound)
	}
	amountCol, ok := findColumn(header, r.layout.Expenses.Amount)
	if !ok {
		return nil, 0, fmt.Errorf("sheet %q column %q: %w", sheet, r.layout.Expenses.Amount, cashflow.ErrColumnNotFound)
	}

	var expenses []cashflow.Transaction
	dropped := 0
	for rowIdx := r.layout.HeaderRow + 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		dueRaw := strings.TrimSpace(cellAt(row, dueCol))
		amountRaw := strings.TrimSpace(cellAt(row, amountCol))
		if dueRaw == "" && amountRaw == "" {
			continue
		}
		date, dateOK := parseDate(dueRaw)
		amount, amountOK := parseNumber(amountRaw)
		if !dateOK || !amountOK {
			dropped++
			r.logger.Warn().
				Str("sheet", sheet).
				Int("row", rowIdx+1).
				Msg("dropped expense row with invalid due date or amount")
			continue
		}
		expenses = append(expenses, cashflow.Transaction{
			Date:         date,
			Amount:       amount.Abs(),
			Category:     cashflow.CategoryPayableGeneral,
			Counterparty: r.layout.ExpensesLabel,
		})
	}
	grouped := cashflow.GroupByDate(expenses)

	r.logger.Info().
		Str("sheet", sheet).
		Int("rows", len(expenses)).
		Int("days", len(grouped)).
		Int("dropped", dropped).
		Msg("general expenses extracted")
	return grouped, dropped, nil
}
