package excel

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	cashflow "cashflow-report/internal/cashflow/domain"
)

// BalanceHistory reads the wide-format balance sheet: dates on the header
// row, one balance column per date, one row per bank account. Rows marked
// TOTAL never join the per-account summation; when a total row carries a
// parsable value for a date it is taken as the authoritative balance.
func (r *Reader) BalanceHistory(ctx context.Context) ([]cashflow.BalanceRecord, error) {
	rows, err := r.rows(r.layout.BalanceSheet)
	if err != nil {
		return nil, err
	}
	if len(rows) <= r.layout.BalanceDateRow {
		return nil, fmt.Errorf("sheet %q: %w", r.layout.BalanceSheet, cashflow.ErrNoBalanceDates)
	}
	header := rows[r.layout.BalanceDateRow]

	var totalRows, accountRows []int
	for rowIdx := r.layout.BalanceFirstDataRow; rowIdx < len(rows); rowIdx++ {
		if isTotalRow(rows[rowIdx]) {
			totalRows = append(totalRows, rowIdx)
		} else {
			accountRows = append(accountRows, rowIdx)
		}
	}

	byDate := make(map[time.Time]decimal.Decimal)
	for col := r.layout.BalanceFirstDateCol; col < len(header); col++ {
		date, ok := parseDate(header[col])
		if !ok {
			continue
		}
		balance, found := balanceFromTotals(rows, totalRows, col)
		if !found {
			balance = sumAccounts(rows, accountRows, col)
		}
		byDate[date] = balance
	}
	if len(byDate) == 0 {
		return nil, fmt.Errorf("sheet %q: %w", r.layout.BalanceSheet, cashflow.ErrNoBalanceDates)
	}

	records := make([]cashflow.BalanceRecord, 0, len(byDate))
	for date, balance := range byDate {
		records = append(records, cashflow.BalanceRecord{Date: date, Balance: balance})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Date.Before(records[j].Date) })

	r.logger.Info().
		Str("sheet", r.layout.BalanceSheet).
		Int("dates", len(records)).
		Str("from", records[0].Date.Format("2006-01-02")).
		Str("to", records[len(records)-1].Date.Format("2006-01-02")).
		Msg("balance history extracted")
	return records, nil
}

// isTotalRow checks the first two cells for a TOTAL marker.
func isTotalRow(row []string) bool {
	for _, cell := range []string{cellAt(row, 0), cellAt(row, 1)} {
		if strings.Contains(strings.ToUpper(cell), "TOTAL") {
			return true
		}
	}
	return false
}

func balanceFromTotals(rows [][]string, totalRows []int, col int) (decimal.Decimal, bool) {
	for _, rowIdx := range totalRows {
		if value, ok := parseNumber(cellAt(rows[rowIdx], col)); ok {
			return value, true
		}
	}
	return decimal.Decimal{}, false
}

func sumAccounts(rows [][]string, accountRows []int, col int) decimal.Decimal {
	var sum decimal.Decimal
	for _, rowIdx := range accountRows {
		if value, ok := parseNumber(cellAt(rows[rowIdx], col)); ok {
			sum = sum.Add(value)
		}
	}
	return sum
}
