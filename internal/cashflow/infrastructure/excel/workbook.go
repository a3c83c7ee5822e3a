package excel

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	cashflow "cashflow-report/internal/cashflow/domain"
	"cashflow-report/internal/config"
)

// Reader extracts the financial regions of the input workbook.
type Reader struct {
	file   *excelize.File
	layout config.Workbook
	logger zerolog.Logger
}

// NewReader opens the workbook at path.
func NewReader(path string, layout config.Workbook, logger zerolog.Logger) (*Reader, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	return &Reader{file: file, layout: layout, logger: logger}, nil
}

// Close releases the underlying workbook.
func (r *Reader) Close() error {
	return r.file.Close()
}

// rows returns the raw cell grid of a sheet. Raw values keep dates as
// serials or the typed-in text instead of display formatting.
func (r *Reader) rows(sheet string) ([][]string, error) {
	idx, err := r.file.GetSheetIndex(sheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	if idx == -1 {
		return nil, fmt.Errorf("sheet %q: %w", sheet, cashflow.ErrSheetNotFound)
	}
	rows, err := r.file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}
