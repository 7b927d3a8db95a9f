package logic

func (c *Cart) Clear() {
	c.items = nil
	c.index = make(map[string]*LineItem)
}
