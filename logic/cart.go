package logic

// Cart holds one line item per distinct product name, in insertion order.
// It is not safe for concurrent use; see session.Session for a guarded cart.
type Cart struct {
	items []*LineItem
	index map[string]*LineItem // product name -> item
}

func NewCart() *Cart {
	return &Cart{
		index: make(map[string]*LineItem),
	}
}

func (c *Cart) find(product *Product) (*LineItem, bool) {
	item, ok := c.index[product.Name]
	return item, ok
}

func (c *Cart) drop(name string) {
	delete(c.index, name)
	for i, item := range c.items {
		if item.Product.Name == name {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}
