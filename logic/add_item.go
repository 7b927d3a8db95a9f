package logic

// Add puts quantity units of product in the cart, merging with an existing
// line item of the same name. The merged quantity may not exceed the stock
// of the product passed in.
func (c *Cart) Add(product *Product, quantity int) error {
	if err := RequirePositive(quantity, ErrMsgQuantityPositive); err != nil {
		return err
	}

	if item, ok := c.find(product); ok {
		newQty := item.Quantity + quantity
		if newQty > product.Stock {
			return NewFailedPreconditionf(ReasonInsufficientStock,
				"%s for %q: requested %d, available %d", ErrMsgInsufficientStock, product.Name, newQty, product.Stock)
		}
		item.Quantity = newQty
		return nil
	}

	if quantity > product.Stock {
		return NewFailedPreconditionf(ReasonInsufficientStock,
			"%s for %q: requested %d, available %d", ErrMsgInsufficientStock, product.Name, quantity, product.Stock)
	}

	if c.index == nil {
		c.index = make(map[string]*LineItem)
	}
	item := &LineItem{Product: product, Quantity: quantity}
	c.items = append(c.items, item)
	c.index[product.Name] = item
	return nil
}
