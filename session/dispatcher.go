package session

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func (s *Session) dispatchCommand(cmd Command) error {
	switch c := cmd.(type) {
	case AddItem:
		if c.Product == nil {
			return errProductRequired
		}
		s.logger.Info("adding item", zap.String("product", c.Product.Name), zap.Int("quantity", c.Quantity))
		return s.cart.Add(c.Product, c.Quantity)

	case RemoveItem:
		if c.Product == nil {
			return errProductRequired
		}
		qty := c.Quantity
		if qty == 0 {
			qty = 1
		}
		s.logger.Info("removing item", zap.String("product", c.Product.Name), zap.Int("quantity", qty))
		return s.cart.Remove(c.Product, qty)

	case UpdateQuantity:
		if c.Product == nil {
			return errProductRequired
		}
		s.logger.Info("updating quantity", zap.String("product", c.Product.Name), zap.Int("new_quantity", c.NewQuantity))
		return s.cart.UpdateQuantity(c.Product, c.NewQuantity)

	case ClearCart:
		s.logger.Info("clearing cart")
		s.cart.Clear()
		return nil

	default:
		return errUnknownCommand
	}
}

func (s *Session) dispatchQuote(q Quote) (decimal.Decimal, error) {
	switch c := q.(type) {
	case TotalQuote:
		return s.cart.Total(), nil

	case DiscountQuote:
		s.logger.Debug("quoting discount", zap.Stringer("percentage", c.Percentage))
		return s.cart.ApplyDiscount(c.Percentage)

	case ConditionalDiscountQuote:
		s.logger.Debug("quoting conditional discount",
			zap.Stringer("percentage", c.Percentage), zap.Stringer("minimum", c.Minimum))
		return s.cart.ApplyConditionalDiscount(c.Percentage, c.Minimum)

	case TaxQuote:
		s.logger.Debug("quoting tax", zap.Stringer("percentage", c.Percentage))
		return s.cart.CalculateTax(c.Percentage)

	case CouponQuote:
		s.logger.Debug("quoting coupon",
			zap.Stringer("percentage", c.DiscountPercentage), zap.Stringer("max_discount", c.MaxDiscount))
		return s.cart.ApplyCoupon(c.DiscountPercentage, c.MaxDiscount)

	default:
		return decimal.Zero, errUnknownCommand
	}
}
