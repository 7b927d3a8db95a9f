package logic

// UpdateQuantity sets the quantity of an existing line item. Zero removes it.
// Stock is not re-checked here, unlike Add.
func (c *Cart) UpdateQuantity(product *Product, newQuantity int) error {
	if err := RequireNonNegative(newQuantity, ErrMsgQuantityNegative); err != nil {
		return err
	}

	item, ok := c.find(product)
	if !ok {
		return NewFailedPreconditionf(ReasonProductNotFound, "%s: %q", ErrMsgItemNotInCart, product.Name)
	}

	if newQuantity == 0 {
		c.drop(product.Name)
		return nil
	}
	item.Quantity = newQuantity
	return nil
}
