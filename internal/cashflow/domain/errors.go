package cashflow

import "errors"

var (
	// ErrSheetNotFound is returned when a required workbook sheet is missing.
	ErrSheetNotFound = errors.New("cashflow: sheet not found")
	// ErrColumnNotFound is returned when a required column title is missing.
	ErrColumnNotFound = errors.New("cashflow: column not found")
	// ErrNoBalanceDates is returned when the balance header holds no parsable date.
	ErrNoBalanceDates = errors.New("cashflow: no parsable date in balance header")
	// ErrNoBalanceHistory is returned when the balance series is empty.
	ErrNoBalanceHistory = errors.New("cashflow: empty balance history")
)
