package cashflow

import (
	"errors"
	"testing"
	"time"
)

func TestBuildDailyReportScenario(t *testing.T) {
	balances := []BalanceRecord{{Date: date(2024, 6, 1), Balance: dec("10000")}}
	timeline := BuildTimeline(
		[]Transaction{{Date: date(2024, 6, 1), Amount: dec("500"), Category: CategoryReceivable}},
		[]Transaction{{Date: date(2024, 6, 3), Amount: dec("200"), Category: CategoryPayableProduct}},
		nil,
	)

	report, err := BuildDailyReport(balances, timeline)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Rows) != 3 {
		t.Fatalf("rows: got %d, want 3", len(report.Rows))
	}

	wantClosings := []string{"10500", "10500", "10300"}
	for i, want := range wantClosings {
		if !report.Rows[i].ClosingBalance.Equal(dec(want)) {
			t.Errorf("row %d closing: got %s, want %s", i, report.Rows[i].ClosingBalance, want)
		}
	}
	first := report.Rows[0]
	if !first.OpeningBalance.Equal(dec("10000")) {
		t.Errorf("first opening: got %s, want 10000", first.OpeningBalance)
	}
	if !first.InflowsTotal.Equal(dec("500")) || !first.OutflowsTotal.IsZero() {
		t.Errorf("first row movement: in %s out %s", first.InflowsTotal, first.OutflowsTotal)
	}
	last := report.Rows[2]
	if !last.OutflowsTotal.Equal(dec("200")) {
		t.Errorf("last row outflows: got %s, want 200", last.OutflowsTotal)
	}
	if !report.FinalBalance().Equal(dec("10300")) {
		t.Errorf("final balance: got %s, want 10300", report.FinalBalance())
	}
}

func TestBuildDailyReportInvariants(t *testing.T) {
	balances := []BalanceRecord{
		{Date: date(2024, 5, 28), Balance: dec("9000")},
		{Date: date(2024, 6, 1), Balance: dec("10000")},
	}
	timeline := BuildTimeline(
		[]Transaction{
			{Date: date(2024, 5, 30), Amount: dec("999"), Category: CategoryReceivable},
			{Date: date(2024, 6, 1), Amount: dec("500"), Category: CategoryReceivable},
			{Date: time.Date(2024, 6, 5, 15, 30, 0, 0, time.UTC), Amount: dec("100"), Category: CategoryReceivable},
			{Date: date(2024, 6, 5), Amount: dec("50"), Category: CategoryReceivable},
		},
		[]Transaction{{Date: date(2024, 6, 3), Amount: dec("200"), Category: CategoryPayableProduct}},
		[]Transaction{{Date: date(2024, 6, 2), Amount: dec("75"), Category: CategoryPayableGeneral}},
	)

	report, err := BuildDailyReport(balances, timeline)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if !report.StartDate.Equal(date(2024, 6, 1)) {
		t.Fatalf("start date: got %s, want most recent balance date", report.StartDate)
	}
	if len(report.Rows) != 5 {
		t.Fatalf("rows: got %d, want 5 contiguous days", len(report.Rows))
	}

	for i, row := range report.Rows {
		wantDay := report.StartDate.AddDate(0, 0, i)
		if !row.Date.Equal(wantDay) {
			t.Errorf("row %d date: got %s, want %s", i, row.Date, wantDay)
		}
		wantClosing := row.OpeningBalance.Add(row.InflowsTotal).Sub(row.OutflowsTotal)
		if !row.ClosingBalance.Equal(wantClosing) {
			t.Errorf("row %d closing: got %s, want %s", i, row.ClosingBalance, wantClosing)
		}
		if !row.NetMovement.Equal(row.InflowsTotal.Sub(row.OutflowsTotal)) {
			t.Errorf("row %d net movement inconsistent", i)
		}
		if i > 0 && !row.OpeningBalance.Equal(report.Rows[i-1].ClosingBalance) {
			t.Errorf("row %d opening does not chain from previous closing", i)
		}
	}

	inflows := dec("0")
	outflows := dec("0")
	for _, row := range report.Rows {
		inflows = inflows.Add(row.InflowsTotal)
		outflows = outflows.Add(row.OutflowsTotal)
	}
	if !inflows.Equal(dec("650")) {
		t.Errorf("total inflows: got %s, want 650 (entry before start ignored)", inflows)
	}
	if !outflows.Equal(dec("275")) {
		t.Errorf("total outflows: got %s, want 275", outflows)
	}
}

func TestBuildDailyReportEmptyTimeline(t *testing.T) {
	balances := []BalanceRecord{{Date: date(2024, 6, 1), Balance: dec("10000")}}

	report, err := BuildDailyReport(balances, nil)
	if err != nil {
		t.Fatalf("an empty projection is not a failure: %v", err)
	}
	if !report.Empty() {
		t.Fatal("report should be empty")
	}
	if !report.FinalBalance().Equal(dec("10000")) {
		t.Errorf("final balance: got %s, want the start balance", report.FinalBalance())
	}
	if !report.EndDate().Equal(report.StartDate) {
		t.Errorf("end date: got %s, want start date", report.EndDate())
	}
}

func TestBuildDailyReportOnlyStaleEntries(t *testing.T) {
	balances := []BalanceRecord{{Date: date(2024, 6, 1), Balance: dec("10000")}}
	timeline := BuildTimeline(
		[]Transaction{{Date: date(2024, 5, 20), Amount: dec("500"), Category: CategoryReceivable}},
		nil,
		nil,
	)

	report, err := BuildDailyReport(balances, timeline)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if !report.Empty() {
		t.Fatal("entries before the start date must not produce rows")
	}
}

func TestBuildDailyReportNoBalances(t *testing.T) {
	_, err := BuildDailyReport(nil, nil)
	if !errors.Is(err, ErrNoBalanceHistory) {
		t.Fatalf("got %v, want ErrNoBalanceHistory", err)
	}
}

func TestLatestBalance(t *testing.T) {
	records := []BalanceRecord{
		{Date: date(2024, 6, 1), Balance: dec("10000")},
		{Date: date(2024, 5, 28), Balance: dec("9000")},
		{Date: date(2024, 5, 30), Balance: dec("9500")},
	}

	latest, err := LatestBalance(records)
	if err != nil {
		t.Fatalf("latest balance: %v", err)
	}
	if !latest.Date.Equal(date(2024, 6, 1)) {
		t.Errorf("date: got %s, want 2024-06-01", latest.Date)
	}
	if !latest.Balance.Equal(dec("10000")) {
		t.Errorf("balance: got %s, want 10000", latest.Balance)
	}
}
