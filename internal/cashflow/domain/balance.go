package cashflow

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceRecord is one historical bank balance captured on a date.
type BalanceRecord struct {
	Date    time.Time
	Balance decimal.Decimal
}

// LatestBalance returns the most recent record of the series.
func LatestBalance(records []BalanceRecord) (BalanceRecord, error) {
	if len(records) == 0 {
		return BalanceRecord{}, ErrNoBalanceHistory
	}
	latest := records[0]
	for _, record := range records[1:] {
		if record.Date.After(latest.Date) {
			latest = record
		}
	}
	return latest, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
