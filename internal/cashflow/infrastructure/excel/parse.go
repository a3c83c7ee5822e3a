package excel

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var dateLayouts = []string{"02/01/2006", "2/1/2006", "02/01/06", "2006-01-02"}

// parseDate interprets a raw cell value as a calendar day. Cells hold
// either day/month/year text or an Excel serial number.
func parseDate(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return day(t), true
		}
	}
	if serial, err := strconv.ParseFloat(value, 64); err == nil && serial > 0 {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return day(t), true
		}
	}
	return time.Time{}, false
}

// parseNumber interprets a raw cell value as a signed decimal amount.
// Accepts plain numerics and Brazilian formatted values like "R$ 1.234,56".
func parseNumber(raw string) (decimal.Decimal, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return decimal.Decimal{}, false
	}
	value = strings.TrimSpace(strings.TrimPrefix(value, "R$"))
	if strings.Contains(value, ",") {
		value = strings.ReplaceAll(value, ".", "")
		value = strings.ReplaceAll(value, ",", ".")
	}
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return parsed, true
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// cellAt reads a cell from a possibly ragged row. excelize trims trailing
// empty cells, so rows can be shorter than the header.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// findColumn locates a column title on the header row.
func findColumn(header []string, title string) (int, bool) {
	for idx, cell := range header {
		if strings.EqualFold(strings.TrimSpace(cell), title) {
			return idx, true
		}
	}
	return 0, false
}
