package logic

import "github.com/shopspring/decimal"

// Total is the sum of every line item's subtotal.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// ApplyDiscount returns the total reduced by pct percent.
func (c *Cart) ApplyDiscount(pct decimal.Decimal) (decimal.Decimal, error) {
	if err := RequirePercentage(pct); err != nil {
		return decimal.Zero, err
	}
	return discounted(c.Total(), pct), nil
}

// ApplyConditionalDiscount discounts the total only when it reaches minimum.
// pct is validated even when the minimum is not met.
func (c *Cart) ApplyConditionalDiscount(pct, minimum decimal.Decimal) (decimal.Decimal, error) {
	if err := RequirePercentage(pct); err != nil {
		return decimal.Zero, err
	}
	total := c.Total()
	if total.GreaterThanOrEqual(minimum) {
		return discounted(total, pct), nil
	}
	return total, nil
}

// CalculateTax returns the tax owed on the total at pct percent.
func (c *Cart) CalculateTax(pct decimal.Decimal) (decimal.Decimal, error) {
	if err := RequirePercentage(pct); err != nil {
		return decimal.Zero, err
	}
	return percentOf(c.Total(), pct), nil
}

func percentOf(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(hundred)
}

func discounted(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Sub(percentOf(amount, pct))
}
