package cashflow

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectionSummary condenses a daily report for logging and for the
// document header.
type ProjectionSummary struct {
	StartDate         time.Time
	EndDate           time.Time
	Days              int
	DaysWithMovement  int
	DaysWithInflows   int
	DaysWithOutflows  int
	OpeningBalance    decimal.Decimal
	FinalBalance      decimal.Decimal
	Variation         decimal.Decimal
	InflowCount       int
	InflowsTotal      decimal.Decimal
	OutflowCount      int
	OutflowsTotal     decimal.Decimal
	LargestInflow     decimal.Decimal
	LargestInflowDay  time.Time
	LargestOutflow    decimal.Decimal
	LargestOutflowDay time.Time
	LowestBalance     decimal.Decimal
	LowestBalanceDay  time.Time
	HighestBalance    decimal.Decimal
	HighestBalanceDay time.Time
}

// Summarize computes the projection summary of a report. For an empty
// report only the period start and balances are meaningful.
func Summarize(report DailyReport) ProjectionSummary {
	summary := ProjectionSummary{
		StartDate:      report.StartDate,
		EndDate:        report.EndDate(),
		Days:           len(report.Rows),
		OpeningBalance: report.StartBalance,
		FinalBalance:   report.FinalBalance(),
	}
	summary.Variation = summary.FinalBalance.Sub(summary.OpeningBalance)
	if report.Empty() {
		return summary
	}

	summary.LowestBalance = report.Rows[0].ClosingBalance
	summary.LowestBalanceDay = report.Rows[0].Date
	summary.HighestBalance = report.Rows[0].ClosingBalance
	summary.HighestBalanceDay = report.Rows[0].Date
	for _, row := range report.Rows {
		if row.HasMovement() {
			summary.DaysWithMovement++
		}
		if row.InflowCount > 0 {
			summary.DaysWithInflows++
		}
		if row.OutflowCount > 0 {
			summary.DaysWithOutflows++
		}
		summary.InflowCount += row.InflowCount
		summary.InflowsTotal = summary.InflowsTotal.Add(row.InflowsTotal)
		summary.OutflowCount += row.OutflowCount
		summary.OutflowsTotal = summary.OutflowsTotal.Add(row.OutflowsTotal)
		if row.InflowsTotal.GreaterThan(summary.LargestInflow) {
			summary.LargestInflow = row.InflowsTotal
			summary.LargestInflowDay = row.Date
		}
		if row.OutflowsTotal.GreaterThan(summary.LargestOutflow) {
			summary.LargestOutflow = row.OutflowsTotal
			summary.LargestOutflowDay = row.Date
		}
		if row.ClosingBalance.LessThan(summary.LowestBalance) {
			summary.LowestBalance = row.ClosingBalance
			summary.LowestBalanceDay = row.Date
		}
		if row.ClosingBalance.GreaterThan(summary.HighestBalance) {
			summary.HighestBalance = row.ClosingBalance
			summary.HighestBalanceDay = row.Date
		}
	}
	return summary
}
