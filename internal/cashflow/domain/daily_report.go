package cashflow

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyReportRow is one projected day of the cash-flow report.
type DailyReportRow struct {
	Date           time.Time
	OpeningBalance decimal.Decimal
	InflowCount    int
	InflowsTotal   decimal.Decimal
	OutflowCount   int
	OutflowsTotal  decimal.Decimal
	NetMovement    decimal.Decimal
	ClosingBalance decimal.Decimal
}

// HasMovement reports whether anything was due on the day.
func (r DailyReportRow) HasMovement() bool {
	return r.InflowCount > 0 || r.OutflowCount > 0
}

// DailyReport is the projected balance walk from the most recent known
// bank balance through the last transaction date.
type DailyReport struct {
	StartDate    time.Time
	StartBalance decimal.Decimal
	Rows         []DailyReportRow
}

// Empty reports whether the projection produced no days. An empty report
// is a valid outcome: nothing is due on or after the most recent balance
// date.
func (r DailyReport) Empty() bool { return len(r.Rows) == 0 }

// EndDate returns the last projected day, or the start date when empty.
func (r DailyReport) EndDate() time.Time {
	if r.Empty() {
		return r.StartDate
	}
	return r.Rows[len(r.Rows)-1].Date
}

// FinalBalance returns the last projected closing balance, or the start
// balance when the report is empty.
func (r DailyReport) FinalBalance() decimal.Decimal {
	if r.Empty() {
		return r.StartBalance
	}
	return r.Rows[len(r.Rows)-1].ClosingBalance
}

type dayMovement struct {
	inflowCount  int
	inflows      decimal.Decimal
	outflowCount int
	outflows     decimal.Decimal
}

// BuildDailyReport projects the balance forward one calendar day at a time,
// one row per day from the most recent balance date through the last
// transaction date, including days without movement. The start balance is
// taken as of the start of its day, so transactions due on the start date
// count in the first row. Entries dated before the start date are ignored.
func BuildDailyReport(balances []BalanceRecord, timeline []TimelineEntry) (DailyReport, error) {
	latest, err := LatestBalance(balances)
	if err != nil {
		return DailyReport{}, err
	}
	start := truncateToDay(latest.Date)
	report := DailyReport{StartDate: start, StartBalance: latest.Balance}

	movements := make(map[time.Time]dayMovement)
	end := start
	for _, entry := range timeline {
		day := truncateToDay(entry.Date)
		if day.Before(start) {
			continue
		}
		movement := movements[day]
		if entry.Direction == DirectionInflow {
			movement.inflowCount++
			movement.inflows = movement.inflows.Add(entry.Amount)
		} else {
			movement.outflowCount++
			movement.outflows = movement.outflows.Add(entry.Amount)
		}
		movements[day] = movement
		if day.After(end) {
			end = day
		}
	}
	if len(movements) == 0 {
		return report, nil
	}

	opening := latest.Balance
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		movement := movements[day]
		net := movement.inflows.Sub(movement.outflows)
		closing := opening.Add(net)
		report.Rows = append(report.Rows, DailyReportRow{
			Date:           day,
			OpeningBalance: opening,
			InflowCount:    movement.inflowCount,
			InflowsTotal:   movement.inflows,
			OutflowCount:   movement.outflowCount,
			OutflowsTotal:  movement.outflows,
			NetMovement:    net,
			ClosingBalance: closing,
		})
		opening = closing
	}
	return report, nil
}
