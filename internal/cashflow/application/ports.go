package application

import (
	"context"

	cashflow "cashflow-report/internal/cashflow/domain"
)

// StatementSource extracts the projection inputs from the statement
// workbook. The pipeline depends on this interface, not on a concrete
// reader.
//
//go:generate mockgen -destination=mocks/mock_ports.go -source=ports.go
type StatementSource interface {
	BalanceHistory(ctx context.Context) ([]cashflow.BalanceRecord, error)
	Receivables(ctx context.Context) ([]cashflow.Transaction, int, error)
	ProductPayables(ctx context.Context) ([]cashflow.Transaction, int, error)
	GeneralExpenses(ctx context.Context) ([]cashflow.Transaction, int, error)
}

// SpreadsheetBuilder renders the report workbook.
type SpreadsheetBuilder interface {
	BuildWorkbook(report cashflow.DailyReport, timeline []cashflow.TimelineEntry, balances []cashflow.BalanceRecord) ([]byte, error)
}

// DocumentRenderer renders the paper report, returning the markup and the
// paginated document.
type DocumentRenderer interface {
	RenderDocument(report cashflow.DailyReport, timeline []cashflow.TimelineEntry) ([]byte, []byte, error)
}
