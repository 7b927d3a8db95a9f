package logic

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type LineItem struct {
	Product  *Product
	Quantity int
}

func (i LineItem) Subtotal() decimal.Decimal {
	return i.Product.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func (i LineItem) String() string {
	return fmt.Sprintf("LineItem(%s, quantity=%d)", i.Product, i.Quantity)
}
