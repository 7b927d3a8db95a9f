package logic

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. The cart reads it but never changes it.
type Product struct {
	Name      string
	UnitPrice decimal.Decimal
	Stock     int
}

func NewProduct(name string, unitPrice decimal.Decimal, stock int) *Product {
	return &Product{Name: name, UnitPrice: unitPrice, Stock: stock}
}

func (p *Product) String() string {
	return fmt.Sprintf("Product(%s, price=%s, stock=%d)", p.Name, p.UnitPrice.StringFixed(2), p.Stock)
}
