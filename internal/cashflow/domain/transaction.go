package cashflow

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	CategoryReceivable     Category = "receivable"
	CategoryPayableProduct Category = "payable_product"
	CategoryPayableGeneral Category = "payable_general"
)

// Category classifies the source region a transaction was extracted from.
type Category string

// IsValid reports whether the category is one of the known values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryReceivable, CategoryPayableProduct, CategoryPayableGeneral:
		return true
	}
	return false
}

// Direction returns the cash-flow direction implied by the category.
func (c Category) Direction() Direction {
	if c == CategoryReceivable {
		return DirectionInflow
	}
	return DirectionOutflow
}

// rank fixes the order of same-date entries on the timeline.
func (c Category) rank() int {
	switch c {
	case CategoryReceivable:
		return 0
	case CategoryPayableProduct:
		return 1
	case CategoryPayableGeneral:
		return 2
	}
	return 3
}

const (
	DirectionInflow  Direction = "inflow"
	DirectionOutflow Direction = "outflow"
)

// Direction tells whether a transaction adds to or subtracts from the balance.
type Direction string

// Transaction is one extracted money movement. The amount is stored
// unsigned; the direction is implied by the category.
type Transaction struct {
	Date         time.Time
	Amount       decimal.Decimal
	Category     Category
	OrderID      string
	Counterparty string
}
