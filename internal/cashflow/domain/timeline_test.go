package cashflow

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestBuildTimelineSortsByDate(t *testing.T) {
	receivables := []Transaction{
		{Date: date(2024, 6, 5), Amount: dec("100"), Category: CategoryReceivable, OrderID: "late"},
		{Date: date(2024, 6, 1), Amount: dec("200"), Category: CategoryReceivable, OrderID: "early"},
	}
	payables := []Transaction{
		{Date: date(2024, 6, 3), Amount: dec("50"), Category: CategoryPayableProduct, OrderID: "mid"},
	}

	timeline := BuildTimeline(receivables, payables, nil)

	if len(timeline) != 3 {
		t.Fatalf("entries: got %d, want 3", len(timeline))
	}
	wantOrder := []string{"early", "mid", "late"}
	for i, want := range wantOrder {
		if timeline[i].OrderID != want {
			t.Errorf("entry %d: got %s, want %s", i, timeline[i].OrderID, want)
		}
	}
}

func TestBuildTimelineSameDateKeepsCategoryThenAppearanceOrder(t *testing.T) {
	day := date(2024, 6, 1)
	receivables := []Transaction{
		{Date: day, Amount: dec("1"), Category: CategoryReceivable, OrderID: "r1"},
		{Date: day, Amount: dec("2"), Category: CategoryReceivable, OrderID: "r2"},
	}
	payables := []Transaction{
		{Date: day, Amount: dec("3"), Category: CategoryPayableProduct, OrderID: "p1"},
	}
	expenses := []Transaction{
		{Date: day, Amount: dec("4"), Category: CategoryPayableGeneral, OrderID: "g1"},
	}

	timeline := BuildTimeline(receivables, payables, expenses)

	wantOrder := []string{"r1", "r2", "p1", "g1"}
	for i, want := range wantOrder {
		if timeline[i].OrderID != want {
			t.Fatalf("entry %d: got %s, want %s", i, timeline[i].OrderID, want)
		}
	}
}

func TestBuildTimelineTagsDirection(t *testing.T) {
	timeline := BuildTimeline(
		[]Transaction{{Date: date(2024, 6, 1), Amount: dec("1"), Category: CategoryReceivable}},
		[]Transaction{{Date: date(2024, 6, 1), Amount: dec("2"), Category: CategoryPayableProduct}},
		[]Transaction{{Date: date(2024, 6, 1), Amount: dec("3"), Category: CategoryPayableGeneral}},
	)

	wantDirections := []Direction{DirectionInflow, DirectionOutflow, DirectionOutflow}
	for i, want := range wantDirections {
		if timeline[i].Direction != want {
			t.Errorf("entry %d: got %s, want %s", i, timeline[i].Direction, want)
		}
	}
}

func TestBuildTimelineKeepsSameDateDuplicates(t *testing.T) {
	day := date(2024, 6, 2)
	receivables := []Transaction{
		{Date: day, Amount: dec("100"), Category: CategoryReceivable, OrderID: "a"},
		{Date: day, Amount: dec("100"), Category: CategoryReceivable, OrderID: "b"},
	}

	timeline := BuildTimeline(receivables, nil, nil)

	if len(timeline) != 2 {
		t.Fatalf("entries: got %d, want 2 (no deduplication)", len(timeline))
	}
}

func TestGroupByDateSumsPerDay(t *testing.T) {
	txs := []Transaction{
		{Date: date(2024, 6, 3), Amount: dec("30"), Category: CategoryPayableGeneral, Counterparty: "SAÍDAS GERAIS"},
		{Date: date(2024, 6, 1), Amount: dec("10.50"), Category: CategoryPayableGeneral, Counterparty: "SAÍDAS GERAIS"},
		{Date: time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC), Amount: dec("4.50"), Category: CategoryPayableGeneral, Counterparty: "SAÍDAS GERAIS"},
	}

	grouped := GroupByDate(txs)

	if len(grouped) != 2 {
		t.Fatalf("groups: got %d, want 2", len(grouped))
	}
	if !grouped[0].Date.Equal(date(2024, 6, 1)) {
		t.Errorf("first group date: got %s", grouped[0].Date)
	}
	if !grouped[0].Amount.Equal(dec("15")) {
		t.Errorf("first group amount: got %s, want 15", grouped[0].Amount)
	}
	if !grouped[1].Amount.Equal(dec("30")) {
		t.Errorf("second group amount: got %s, want 30", grouped[1].Amount)
	}
	if grouped[0].Counterparty != "SAÍDAS GERAIS" {
		t.Errorf("counterparty not kept: got %q", grouped[0].Counterparty)
	}
}

func TestGroupByDateEmpty(t *testing.T) {
	if got := GroupByDate(nil); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}

func TestCategoryDirection(t *testing.T) {
	if CategoryReceivable.Direction() != DirectionInflow {
		t.Error("receivable should be an inflow")
	}
	if CategoryPayableProduct.Direction() != DirectionOutflow {
		t.Error("product payable should be an outflow")
	}
	if CategoryPayableGeneral.Direction() != DirectionOutflow {
		t.Error("general payable should be an outflow")
	}
	if !CategoryReceivable.IsValid() {
		t.Error("receivable should be valid")
	}
	if Category("other").IsValid() {
		t.Error("unknown category should be invalid")
	}
}
