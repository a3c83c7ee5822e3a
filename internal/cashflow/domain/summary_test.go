package cashflow

import "testing"

func TestSummarize(t *testing.T) {
	balances := []BalanceRecord{{Date: date(2024, 6, 1), Balance: dec("10000")}}
	timeline := BuildTimeline(
		[]Transaction{
			{Date: date(2024, 6, 1), Amount: dec("500"), Category: CategoryReceivable},
			{Date: date(2024, 6, 4), Amount: dec("1200"), Category: CategoryReceivable},
		},
		[]Transaction{{Date: date(2024, 6, 3), Amount: dec("200"), Category: CategoryPayableProduct}},
		[]Transaction{{Date: date(2024, 6, 3), Amount: dec("100"), Category: CategoryPayableGeneral}},
	)
	report, err := BuildDailyReport(balances, timeline)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}

	summary := Summarize(report)

	if summary.Days != 4 {
		t.Errorf("days: got %d, want 4", summary.Days)
	}
	if summary.DaysWithMovement != 3 {
		t.Errorf("days with movement: got %d, want 3", summary.DaysWithMovement)
	}
	if summary.DaysWithInflows != 2 || summary.DaysWithOutflows != 1 {
		t.Errorf("movement days: got %d in / %d out, want 2/1", summary.DaysWithInflows, summary.DaysWithOutflows)
	}
	if summary.InflowCount != 2 || !summary.InflowsTotal.Equal(dec("1700")) {
		t.Errorf("inflows: got %d/%s, want 2/1700", summary.InflowCount, summary.InflowsTotal)
	}
	if summary.OutflowCount != 2 || !summary.OutflowsTotal.Equal(dec("300")) {
		t.Errorf("outflows: got %d/%s, want 2/300", summary.OutflowCount, summary.OutflowsTotal)
	}
	if !summary.Variation.Equal(dec("1400")) {
		t.Errorf("variation: got %s, want 1400", summary.Variation)
	}
	if !summary.LargestInflowDay.Equal(date(2024, 6, 4)) {
		t.Errorf("largest inflow day: got %s, want 2024-06-04", summary.LargestInflowDay)
	}
	if !summary.LargestOutflow.Equal(dec("300")) {
		t.Errorf("largest outflow: got %s, want 300", summary.LargestOutflow)
	}
	if !summary.LowestBalance.Equal(dec("10200")) || !summary.LowestBalanceDay.Equal(date(2024, 6, 3)) {
		t.Errorf("lowest balance: got %s on %s", summary.LowestBalance, summary.LowestBalanceDay)
	}
	if !summary.HighestBalance.Equal(dec("11400")) || !summary.HighestBalanceDay.Equal(date(2024, 6, 4)) {
		t.Errorf("highest balance: got %s on %s", summary.HighestBalance, summary.HighestBalanceDay)
	}
}

func TestSummarizeEmptyReport(t *testing.T) {
	report := DailyReport{StartDate: date(2024, 6, 1), StartBalance: dec("10000")}

	summary := Summarize(report)

	if summary.Days != 0 || summary.DaysWithMovement != 0 {
		t.Errorf("counts: got %d/%d, want 0/0", summary.Days, summary.DaysWithMovement)
	}
	if !summary.FinalBalance.Equal(dec("10000")) {
		t.Errorf("final balance: got %s, want start balance", summary.FinalBalance)
	}
	if !summary.Variation.IsZero() {
		t.Errorf("variation: got %s, want 0", summary.Variation)
	}
}
