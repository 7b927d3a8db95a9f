package logic

import "github.com/shopspring/decimal"

// ApplyCoupon returns the total after a percentage discount capped at
// maxDiscount. discountPct has no upper bound.
func (c *Cart) ApplyCoupon(discountPct, maxDiscount decimal.Decimal) (decimal.Decimal, error) {
	if err := RequireNonNegativeAmount(discountPct, maxDiscount); err != nil {
		return decimal.Zero, err
	}

	total := c.Total()
	applied := decimal.Min(percentOf(total, discountPct), maxDiscount)
	return total.Sub(applied), nil
}
