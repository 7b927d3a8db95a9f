package logic

// Remove takes quantity units of product out of the cart. Removing exactly
// the quantity held drops the line item.
func (c *Cart) Remove(product *Product, quantity int) error {
	if err := RequirePositive(quantity, ErrMsgQuantityPositive); err != nil {
		return err
	}

	item, ok := c.find(product)
	if !ok {
		return NewFailedPreconditionf(ReasonProductNotFound, "%s: %q", ErrMsgItemNotInCart, product.Name)
	}

	switch {
	case item.Quantity > quantity:
		item.Quantity -= quantity
	case item.Quantity == quantity:
		c.drop(product.Name)
	default:
		return NewFailedPreconditionf(ReasonExcessRemoval,
			"%s: %q has %d, asked to remove %d", ErrMsgExcessRemoval, product.Name, item.Quantity, quantity)
	}
	return nil
}

// RemoveOne removes a single unit of product.
func (c *Cart) RemoveOne(product *Product) error {
	return c.Remove(product, 1)
}
