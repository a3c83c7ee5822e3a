package interfaces

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	cashflow "cashflow-report/internal/cashflow/domain"
)

const (
	dateLayout     = "02/01/2006"
	dateTimeLayout = "02/01/2006 15:04"
)

// formatCurrency renders an amount with Brazilian separators: R$ 1.234,56.
func formatCurrency(value decimal.Decimal) string {
	fixed := value.Abs().StringFixed(2)
	intPart := fixed[:len(fixed)-3]
	decPart := fixed[len(fixed)-2:]

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	sign := ""
	if value.IsNegative() {
		sign = "-"
	}
	return "R$ " + sign + grouped.String() + "," + decPart
}

// amount converts a decimal to the float written into workbook cells,
// rounded to cents.
func amount(value decimal.Decimal) float64 {
	return value.Round(2).InexactFloat64()
}

// formatDate renders a day as dd/mm/yyyy.
func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// formatDateTime renders a generation timestamp as dd/mm/yyyy hh:mm.
func formatDateTime(t time.Time) string {
	return t.Format(dateTimeLayout)
}

// weekdayName returns the English weekday used by the report artifacts.
func weekdayName(t time.Time) string {
	return t.Weekday().String()
}

// categoryLabel maps a category to its artifact label.
func categoryLabel(category cashflow.Category) string {
	switch category {
	case cashflow.CategoryReceivable:
		return "CR - Produto"
	case cashflow.CategoryPayableProduct:
		return "CP - Produto"
	case cashflow.CategoryPayableGeneral:
		return "CP - Saídas Gerais"
	}
	return string(category)
}

// directionLabel maps a direction to its artifact label.
func directionLabel(direction cashflow.Direction) string {
	if direction == cashflow.DirectionInflow {
		return "ENTRADA"
	}
	return "SAÍDA"
}

// entryDescription builds the display line of a timeline entry, the
// counterparty followed by the order id when present.
func entryDescription(entry cashflow.TimelineEntry) string {
	description := entry.Counterparty
	if entry.OrderID != "" {
		if description != "" {
			description += " | "
		}
		description += entry.OrderID
	}
	return description
}
