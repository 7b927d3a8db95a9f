package session

import (
	"github.com/shopspring/decimal"

	"shopcart/logic"
)

// Command mutates the cart held by a Session.
type Command interface {
	commandName() string
}

type AddItem struct {
	Product  *logic.Product
	Quantity int
}

// RemoveItem removes Quantity units; a zero Quantity removes one unit.
type RemoveItem struct {
	Product  *logic.Product
	Quantity int
}

type UpdateQuantity struct {
	Product     *logic.Product
	NewQuantity int
}

type ClearCart struct{}

func (AddItem) commandName() string { return "add_item" }
func (RemoveItem) commandName() string { return "remove_item" }
func (UpdateQuantity) commandName() string { return "update_quantity" }
func (ClearCart) commandName() string { return "clear_cart" }

// Quote computes an amount from the cart without changing it.
type Quote interface {
	quoteName() string
}

type TotalQuote struct{}

type DiscountQuote struct {
	Percentage decimal.Decimal
}

type ConditionalDiscountQuote struct {
	Percentage decimal.Decimal
	Minimum    decimal.Decimal
}

type TaxQuote struct {
	Percentage decimal.Decimal
}

type CouponQuote struct {
	DiscountPercentage decimal.Decimal
	MaxDiscount        decimal.Decimal
}

func (TotalQuote) quoteName() string { return "total" }
func (DiscountQuote) quoteName() string { return "discount" }
func (ConditionalDiscountQuote) quoteName() string { return "conditional_discount" }
func (TaxQuote) quoteName() string { return "tax" }
func (CouponQuote) quoteName() string { return "coupon" }
