package logic

import (
	"cmp"
	"slices"
	"strings"
)

const (
	SortByPrice = "price"
	SortByName  = "name"
)

// CountItems sums the quantities of all line items.
func (c *Cart) CountItems() int {
	n := 0
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

// Items returns a copy of the line items in insertion order. Products are
// still shared with the caller.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	for i, item := range c.items {
		out[i] = *item
	}
	return out
}

// ItemsSorted returns the line items ordered by criterion ("price" or "name",
// case-insensitive). Any other criterion yields insertion order.
func (c *Cart) ItemsSorted(criterion string) []LineItem {
	out := c.Items()
	switch strings.ToLower(criterion) {
	case SortByPrice:
		slices.SortStableFunc(out, func(a, b LineItem) int {
			return a.Product.UnitPrice.Cmp(b.Product.UnitPrice)
		})
	case SortByName:
		slices.SortStableFunc(out, func(a, b LineItem) int {
			return cmp.Compare(a.Product.Name, b.Product.Name)
		})
	}
	return out
}
