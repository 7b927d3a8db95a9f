package logic

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// RequirePositive checks that a quantity is greater than zero.
func RequirePositive(value int, errMsg string) *CommandError {
	if value <= 0 {
		return NewInvalidArgument(ReasonInvalidQuantity, errMsg)
	}
	return nil
}

// RequireNonNegative checks that a quantity is zero or greater.
func RequireNonNegative(value int, errMsg string) *CommandError {
	if value < 0 {
		return NewInvalidArgument(ReasonNegativeQuantity, errMsg)
	}
	return nil
}

// RequirePercentage checks that pct lies in [0, 100].
func RequirePercentage(pct decimal.Decimal) *CommandError {
	if pct.IsNegative() || pct.GreaterThan(hundred) {
		return NewInvalidArgumentf(ReasonInvalidPercentage, "%s: got %s", ErrMsgPercentageRange, pct)
	}
	return nil
}

// RequireNonNegativeAmount checks that every amount is zero or greater.
func RequireNonNegativeAmount(amounts ...decimal.Decimal) *CommandError {
	for _, a := range amounts {
		if a.IsNegative() {
			return NewInvalidArgument(ReasonNegativeDiscountParameters, ErrMsgDiscountNonNegative)
		}
	}
	return nil
}
