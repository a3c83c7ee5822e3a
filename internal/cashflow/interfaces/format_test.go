package interfaces

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	cashflow "cashflow-report/internal/cashflow/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		value string
		want  string
	}{
		{"0", "R$ 0,00"},
		{"0.5", "R$ 0,50"},
		{"123", "R$ 123,00"},
		{"1234.56", "R$ 1.234,56"},
		{"1000000", "R$ 1.000.000,00"},
		{"999.999", "R$ 1.000,00"},
		{"-1234.5", "R$ -1.234,50"},
	}
	for _, tc := range cases {
		if got := formatCurrency(dec(tc.value)); got != tc.want {
			t.Errorf("formatCurrency(%s) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestEntryDescription(t *testing.T) {
	cases := []struct {
		name  string
		entry cashflow.TimelineEntry
		want  string
	}{
		{
			name: "counterparty and order id",
			entry: cashflow.TimelineEntry{Transaction: cashflow.Transaction{
				OrderID: "P-1", Counterparty: "ACME",
			}},
			want: "ACME | P-1",
		},
		{
			name: "counterparty only",
			entry: cashflow.TimelineEntry{Transaction: cashflow.Transaction{
				Counterparty: "SAÍDAS GERAIS",
			}},
			want: "SAÍDAS GERAIS",
		},
		{
			name: "order id only",
			entry: cashflow.TimelineEntry{Transaction: cashflow.Transaction{
				OrderID: "P-9",
			}},
			want: "P-9",
		},
		{name: "neither", entry: cashflow.TimelineEntry{}, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := entryDescription(tc.entry); got != tc.want {
				t.Errorf("entryDescription() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCategoryLabel(t *testing.T) {
	cases := []struct {
		category cashflow.Category
		want     string
	}{
		{cashflow.CategoryReceivable, "CR - Produto"},
		{cashflow.CategoryPayableProduct, "CP - Produto"},
		{cashflow.CategoryPayableGeneral, "CP - Saídas Gerais"},
	}
	for _, tc := range cases {
		if got := categoryLabel(tc.category); got != tc.want {
			t.Errorf("categoryLabel(%s) = %q, want %q", tc.category, got, tc.want)
		}
	}
}

func TestDirectionLabel(t *testing.T) {
	if got := directionLabel(cashflow.DirectionInflow); got != "ENTRADA" {
		t.Errorf("inflow label = %q", got)
	}
	if got := directionLabel(cashflow.DirectionOutflow); got != "SAÍDA" {
		t.Errorf("outflow label = %q", got)
	}
}

func TestWeekdayName(t *testing.T) {
	if got := weekdayName(date(2024, time.June, 1)); got != "Saturday" {
		t.Errorf("weekdayName(2024-06-01) = %q, want Saturday", got)
	}
}
